package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
	"github.com/maisonbelle/booking-api/internal/pkg/metrics"
)

// Salon working hours. Slots are generated between open and close, stepped by
// the service duration.
const (
	openingHour = 9
	closingHour = 18
)

// AccrualQueue is the interface the booking flow uses to hand confirmed
// bookings to the loyalty pipeline.
type AccrualQueue interface {
	Enqueue(input ports.AccrualInput)
}

type BookingService struct {
	bookings ports.BookingRepository
	catalog  ports.ServiceRepository
	accruals AccrualQueue
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, catalog ports.ServiceRepository, accruals AccrualQueue, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, catalog: catalog, accruals: accruals, logger: logger}
}

// Create registers a new pending booking, snapshotting the service name and
// price so later catalog edits do not rewrite history.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	svc, err := s.catalog.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:  generateReference(),
		CustomerID: input.CustomerID,
		Contact: domain.Contact{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
		},
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.Price,
		Date:        input.Date.UTC(),
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", input.ServiceID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(svc.Name).Inc()
	s.logger.Info().Str("reference", created.Reference).Str("service", svc.Name).Msg("booking created")
	return created, nil
}

// Cancel sets status=cancelled unconditionally. Idempotent.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	return s.SetStatus(ctx, ports.SetStatusInput{ID: id, Status: string(domain.StatusCancelled)})
}

// SetStatus validates the status value, applies it (and the new date when
// given), and returns the updated booking. A transition to confirmed hands the
// booking to the loyalty pipeline.
func (s *BookingService) SetStatus(ctx context.Context, input ports.SetStatusInput) (*domain.Booking, error) {
	status := domain.BookingStatus(input.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.bookings.UpdateStatus(ctx, input.ID, ports.StatusUpdate{Status: status, Date: input.Date})
	if err != nil {
		return nil, err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("booking_id", updated.ID).Str("status", string(status)).Msg("booking status updated")

	if status == domain.StatusConfirmed && updated.CustomerID != "" {
		s.accruals.Enqueue(ports.AccrualInput{
			BookingID:  updated.ID,
			CustomerID: updated.CustomerID,
			Amount:     updated.Price,
		})
	}

	return updated, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx)
}

// AvailableSlots derives the open start times for a service on a given day:
// every slot between opening and closing stepped by the service duration,
// minus the start times of that day's non-cancelled bookings.
func (s *BookingService) AvailableSlots(ctx context.Context, day time.Time, serviceID string) ([]string, error) {
	svc, err := s.catalog.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookings.ListByDay(ctx, day, serviceID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Date.UTC().Format("15:04")] = struct{}{}
	}

	step := time.Duration(svc.DurationMinutes) * time.Minute
	if step <= 0 {
		step = 30 * time.Minute
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), openingHour, 0, 0, 0, time.UTC)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), closingHour, 0, 0, 0, time.UTC)

	var slots []string
	for t := dayStart; t.Add(step).Before(dayEnd) || t.Add(step).Equal(dayEnd); t = t.Add(step) {
		slot := t.Format("15:04")
		if _, ok := taken[slot]; ok {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// generateReference returns a booking reference in the format BK-XXXXXXXX.
func generateReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("BK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BK-%08X", b)
}
