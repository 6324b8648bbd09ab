package bookingfx

import (
	"go.uber.org/fx"

	"edugo/internal/api/controllers"
	"edugo/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideContactService, provideBookingController)

func provideBookingService(mail services.IMailService) services.BookingServiceInterface {
	return services.NewBookingService(mail)
}

func provideContactService(mail services.IMailService) services.ContactServiceInterface {
	return services.NewContactService(mail)
}

func provideBookingController(
	bookingService services.BookingServiceInterface,
	contactService services.ContactServiceInterface,
) *controllers.BookingController {
	return controllers.NewBookingController(bookingService, contactService)
}
