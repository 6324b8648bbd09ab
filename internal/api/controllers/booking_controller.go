package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edugo/internal/models/request_models"
	"edugo/internal/services"
	"edugo/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	contactService services.ContactServiceInterface
}

func NewBookingController(
	bookingService services.BookingServiceInterface,
	contactService services.ContactServiceInterface,
) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		contactService: contactService,
	}
}

func (b *BookingController) SubmitBooking(c *gin.Context) {
	var req request_models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, phone and messenger ID are required")
		return
	}

	resp, err := b.bookingService.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Booking submitted successfully")
}

func (b *BookingController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and message are required")
		return
	}

	resp, err := b.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Message sent successfully")
}
