package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edugo/internal/models/request_models"
	"edugo/internal/models/response_models"
	"edugo/pkg/utils"
)

type ContactMessage struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

type ContactDeliverer interface {
	DeliverContact(ctx context.Context, msg ContactMessage) error
}

type ContactServiceInterface interface {
	SubmitContact(ctx context.Context, req request_models.ContactRequest) (response_models.BookingResponse, error)
}

type ContactService struct {
	deliverer ContactDeliverer
}

func NewContactService(deliverer ContactDeliverer) ContactServiceInterface {
	return &ContactService{deliverer: deliverer}
}

func (s *ContactService) SubmitContact(ctx context.Context, req request_models.ContactRequest) (response_models.BookingResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return response_models.BookingResponse{}, utils.ErrInvalidInput
	}

	msg := ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}

	if err := s.deliverer.DeliverContact(ctx, msg); err != nil {
		return response_models.BookingResponse{}, fmt.Errorf("%w: %v", utils.ErrDeliveryFailed, err)
	}

	return response_models.BookingResponse{
		Status:      "submitted",
		SubmittedAt: utils.FormatRFC3339TW(msg.SubmittedAt),
	}, nil
}
