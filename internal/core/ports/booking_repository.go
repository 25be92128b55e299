package ports

import (
	"context"
	"time"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// StatusUpdate carries the fields of a booking status mutation. Date is
// optional; when non-nil the scheduled date is moved alongside the status.
type StatusUpdate struct {
	Status domain.BookingStatus
	Date   *time.Time
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns all bookings ordered by creation time descending.
	List(ctx context.Context) ([]*domain.Booking, error)
	// UpdateStatus applies upd and returns the post-update document
	// (read-after-write). Returns domain.ErrBookingNotFound when no
	// document matches id.
	UpdateStatus(ctx context.Context, id string, upd StatusUpdate) (*domain.Booking, error)
	// ListByDay returns the non-cancelled bookings for serviceID whose
	// scheduled date falls on the given calendar day (UTC).
	ListByDay(ctx context.Context, day time.Time, serviceID string) ([]*domain.Booking, error)
}
