package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"edugo/internal/models/request_models"
	"edugo/internal/models/response_models"
	"edugo/pkg/utils"
)

// BookingPayload is assembled once per confirmed submission, handed to the
// delivery collaborator and not retained afterward.
type BookingPayload struct {
	Name         string
	Phone        string
	MessengerID  string
	Email        string
	AgeGroup     string
	BudgetBucket string
	Remarks      string
	QuizAnswers  map[string]string
	SubmittedAt  time.Time
}

// BookingDeliverer is the external delivery collaborator (mail/CRM).
// It resolves on success or rejects on failure; no partial-success states.
type BookingDeliverer interface {
	DeliverBooking(ctx context.Context, payload BookingPayload) error
}

type BookingServiceInterface interface {
	SubmitBooking(ctx context.Context, req request_models.BookingRequest) (response_models.BookingResponse, error)
}

type BookingService struct {
	deliverer BookingDeliverer

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewBookingService(deliverer BookingDeliverer) BookingServiceInterface {
	return &BookingService{
		deliverer: deliverer,
		inflight:  make(map[string]struct{}),
	}
}

// SubmitBooking validates the form, assembles exactly one payload and
// invokes the deliverer exactly once. While a submission for the same token
// is outstanding, repeats are rejected. On failure the guard is released so
// the visitor can resubmit; nothing is retried automatically.
func (s *BookingService) SubmitBooking(ctx context.Context, req request_models.BookingRequest) (response_models.BookingResponse, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.MessengerID) == "" {
		return response_models.BookingResponse{}, utils.ErrInvalidInput
	}

	key := req.SubmissionToken
	if key == "" {
		key = req.Phone
	}

	s.mu.Lock()
	if _, busy := s.inflight[key]; busy {
		s.mu.Unlock()
		return response_models.BookingResponse{}, utils.ErrSubmissionInFlight
	}
	s.inflight[key] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, key)
		s.mu.Unlock()
	}()

	payload := BookingPayload{
		Name:         req.Name,
		Phone:        req.Phone,
		MessengerID:  req.MessengerID,
		Email:        req.Email,
		AgeGroup:     req.AgeGroup,
		BudgetBucket: req.BudgetBucket,
		Remarks:      req.Remarks,
		QuizAnswers:  req.QuizAnswers,
		SubmittedAt:  time.Now(),
	}

	if err := s.deliverer.DeliverBooking(ctx, payload); err != nil {
		return response_models.BookingResponse{}, fmt.Errorf("%w: %v", utils.ErrDeliveryFailed, err)
	}

	return response_models.BookingResponse{
		Status:      "submitted",
		SubmittedAt: utils.FormatRFC3339TW(payload.SubmittedAt),
	}, nil
}
