package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edugo/internal/models/request_models"
	"edugo/pkg/utils"
)

type fakeDeliverer struct {
	mu       sync.Mutex
	bookings []BookingPayload
	contacts []ContactMessage
	err      error
	entered  chan struct{} // when set, closed on first DeliverBooking entry
	block    chan struct{} // when set, DeliverBooking waits until closed
}

func (f *fakeDeliverer) DeliverBooking(ctx context.Context, payload BookingPayload) error {
	if f.entered != nil {
		close(f.entered)
		f.entered = nil
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, payload)
	return nil
}

func (f *fakeDeliverer) DeliverContact(ctx context.Context, msg ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.contacts = append(f.contacts, msg)
	return nil
}

func validBookingRequest() request_models.BookingRequest {
	return request_models.BookingRequest{
		Name:            "王小明",
		Phone:           "0912345678",
		MessengerID:     "line-xiaoming",
		Email:           "ming@example.com",
		AgeGroup:        "13-18 歲",
		BudgetBucket:    request_models.Bucket100kTo200k,
		SubmissionToken: "tok-1",
	}
}

func TestSubmitBookingSuccess(t *testing.T) {
	deliverer := &fakeDeliverer{}
	s := NewBookingService(deliverer)

	resp, err := s.SubmitBooking(context.Background(), validBookingRequest())

	require.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	assert.NotEmpty(t, resp.SubmittedAt)
	require.Len(t, deliverer.bookings, 1, "exactly one payload is delivered")
	assert.Equal(t, "王小明", deliverer.bookings[0].Name)
	assert.False(t, deliverer.bookings[0].SubmittedAt.IsZero())
}

func TestSubmitBookingMissingRequiredFields(t *testing.T) {
	deliverer := &fakeDeliverer{}
	s := NewBookingService(deliverer)

	req := validBookingRequest()
	req.MessengerID = "  "

	_, err := s.SubmitBooking(context.Background(), req)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Empty(t, deliverer.bookings, "nothing is delivered for an invalid form")
}

func TestSubmitBookingDeliveryFailure(t *testing.T) {
	deliverer := &fakeDeliverer{err: errors.New("smtp down")}
	s := NewBookingService(deliverer)

	_, err := s.SubmitBooking(context.Background(), validBookingRequest())
	require.ErrorIs(t, err, utils.ErrDeliveryFailed)
	assert.Empty(t, deliverer.bookings)

	// the form stays editable: the same submission can be retried
	deliverer.err = nil
	resp, err := s.SubmitBooking(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	assert.Len(t, deliverer.bookings, 1)
}

func TestSubmitBookingDuplicateWhileInFlight(t *testing.T) {
	deliverer := &fakeDeliverer{
		entered: make(chan struct{}),
		block:   make(chan struct{}),
	}
	s := NewBookingService(deliverer)

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.SubmitBooking(context.Background(), validBookingRequest())
		firstDone <- err
	}()

	// wait until the first submission is inside the deliverer
	<-deliverer.entered

	_, dupErr := s.SubmitBooking(context.Background(), validBookingRequest())
	assert.ErrorIs(t, dupErr, utils.ErrSubmissionInFlight)

	close(deliverer.block)
	require.NoError(t, <-firstDone)
	assert.Len(t, deliverer.bookings, 1, "the duplicate never reached the deliverer")
}

func TestSubmitBookingCarriesQuizSnapshot(t *testing.T) {
	deliverer := &fakeDeliverer{}
	s := NewBookingService(deliverer)

	req := validBookingRequest()
	req.QuizAnswers = map[string]string{"duration": "long-term", "age": "senior-high"}

	_, err := s.SubmitBooking(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, deliverer.bookings, 1)
	assert.Equal(t, "long-term", deliverer.bookings[0].QuizAnswers["duration"])
}

func TestSubmitContactSuccess(t *testing.T) {
	deliverer := &fakeDeliverer{}
	s := NewContactService(deliverer)

	resp, err := s.SubmitContact(context.Background(), request_models.ContactRequest{
		Name:    "陳媽媽",
		Message: "想了解親子微留學",
	})

	require.NoError(t, err)
	assert.Equal(t, "submitted", resp.Status)
	require.Len(t, deliverer.contacts, 1)
	assert.False(t, deliverer.contacts[0].SubmittedAt.IsZero())
}

func TestSubmitContactDeliveryFailure(t *testing.T) {
	deliverer := &fakeDeliverer{err: errors.New("smtp down")}
	s := NewContactService(deliverer)

	_, err := s.SubmitContact(context.Background(), request_models.ContactRequest{
		Name:    "陳媽媽",
		Message: "想了解親子微留學",
	})

	assert.ErrorIs(t, err, utils.ErrDeliveryFailed)
	assert.Empty(t, deliverer.contacts)
}
