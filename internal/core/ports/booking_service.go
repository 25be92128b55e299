package ports

import (
	"context"
	"time"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking.
// CustomerID is empty for guest bookings.
type CreateBookingInput struct {
	CustomerID string
	Name       string
	Email      string
	Phone      string
	ServiceID  string
	Date       time.Time
}

// SetStatusInput carries a status mutation request.
type SetStatusInput struct {
	ID     string
	Status string
	Date   *time.Time
}

// BookingService defines use-case operations on bookings.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// Cancel sets status=cancelled. Idempotent; a second call yields the
	// same end state.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	// SetStatus fails with domain.ErrInvalidStatus when input.Status is
	// outside the four-member set.
	SetStatus(ctx context.Context, input SetStatusInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	// AvailableSlots returns the open start times ("15:04") for a service
	// on the given day.
	AvailableSlots(ctx context.Context, day time.Time, serviceID string) ([]string, error)
}
