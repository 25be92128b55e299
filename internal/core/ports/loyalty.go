package ports

import (
	"context"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// AccrualInput is the DTO handed from the booking flow to the loyalty pipeline.
type AccrualInput struct {
	BookingID  string
	CustomerID string
	Amount     float64
}

// LoyaltyRepository handles loyalty aggregates and the accrual audit trail.
type LoyaltyRepository interface {
	// ApplyAccrual atomically increments the customer's totals, creating
	// the record on first accrual.
	ApplyAccrual(ctx context.Context, customerID, name, email string, amount float64) error
	// List returns all records ordered by total spent descending, ties
	// broken by total bookings descending.
	List(ctx context.Context) ([]*domain.LoyaltyRecord, error)
	InsertEvent(ctx context.Context, event *domain.AccrualEvent) error
}

// LoyaltyService processes accrual events coming off the dispatcher.
type LoyaltyService interface {
	Process(ctx context.Context, input AccrualInput) error
	List(ctx context.Context) ([]*domain.LoyaltyRecord, error)
}
