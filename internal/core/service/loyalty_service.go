package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
	"github.com/maisonbelle/booking-api/internal/pkg/metrics"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, bookingID string) (bool, error)
	Mark(ctx context.Context, bookingID string) error
}

type loyaltyService struct {
	loyalty   ports.LoyaltyRepository
	customers ports.CustomerRepository
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewLoyaltyService returns a LoyaltyService implementation.
func NewLoyaltyService(
	loyalty ports.LoyaltyRepository,
	customers ports.CustomerRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.LoyaltyService {
	return &loyaltyService{
		loyalty:   loyalty,
		customers: customers,
		dedup:     dedup,
		log:       log,
	}
}

// Process applies a single loyalty accrual: dedup, resolve the customer,
// increment the aggregate, and record the audit event.
func (s *loyaltyService) Process(ctx context.Context, in ports.AccrualInput) error {
	timer := time.Now()

	// 1. Idempotency check. A booking accrues at most once, no matter how
	// many times it is re-confirmed.
	isDup, err := s.dedup.IsDuplicate(ctx, in.BookingID)
	if err != nil {
		s.log.Warn().Err(err).Str("booking_id", in.BookingID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.AccrualsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("booking_id", in.BookingID).Msg("duplicate accrual skipped")
		return nil
	}
	metrics.AccrualsDedupTotal.WithLabelValues("miss").Inc()

	// 2. Resolve the customer for the denormalised identity fields.
	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		metrics.AccrualErrorsTotal.WithLabelValues("customer_not_found").Inc()
		return fmt.Errorf("process accrual: %w", err)
	}

	// 3. Atomically bump the aggregate. Failure leaves the booking unmarked
	// so a replayed confirm can still accrue.
	if err := s.loyalty.ApplyAccrual(ctx, customer.ID, customer.Name, customer.Email, in.Amount); err != nil {
		metrics.AccrualErrorsTotal.WithLabelValues("apply_failed").Inc()
		return fmt.Errorf("process accrual: apply: %w", err)
	}

	// 4. Mark as processed only after the write landed.
	if markErr := s.dedup.Mark(ctx, in.BookingID); markErr != nil {
		s.log.Warn().Err(markErr).Str("booking_id", in.BookingID).Msg("failed to set dedup key")
	}

	// 5. Audit trail (non-fatal on failure).
	event := &domain.AccrualEvent{
		BookingID:  in.BookingID,
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.loyalty.InsertEvent(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("booking_id", in.BookingID).Msg("failed to insert accrual event")
	}

	metrics.AccrualsProcessedTotal.Inc()
	metrics.AccrualDuration.Observe(time.Since(timer).Seconds())

	s.log.Info().
		Str("booking_id", in.BookingID).
		Str("customer_id", in.CustomerID).
		Float64("amount", in.Amount).
		Msg("loyalty accrual applied")

	return nil
}

func (s *loyaltyService) List(ctx context.Context) ([]*domain.LoyaltyRecord, error) {
	return s.loyalty.List(ctx)
}
