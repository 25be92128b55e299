package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	clone := *b
	clone.ID = fmt.Sprintf("bk_%d", r.nextID)
	r.bookings[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, upd ports.StatusUpdate) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = upd.Status
	if upd.Date != nil {
		b.Date = *upd.Date
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) ListByDay(_ context.Context, day time.Time, serviceID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID || b.Status == domain.StatusCancelled {
			continue
		}
		if b.Date.UTC().Format("2006-01-02") != day.UTC().Format("2006-01-02") {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

type stubServiceRepo struct {
	services map[string]*domain.Service
}

func newStubServiceRepo(services ...*domain.Service) *stubServiceRepo {
	r := &stubServiceRepo{services: make(map[string]*domain.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	clone := *s
	if clone.ID == "" {
		clone.ID = "svc_" + strings.ToLower(s.Name)
	}
	r.services[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(r.services))
	for _, s := range r.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubServiceRepo) Update(_ context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	s.Name = input.Name
	s.Price = input.Price
	s.DurationMinutes = input.DurationMinutes
	clone := *s
	return &clone, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

type stubAccrualQueue struct {
	enqueued []ports.AccrualInput
}

func (q *stubAccrualQueue) Enqueue(input ports.AccrualInput) {
	q.enqueued = append(q.enqueued, input)
}

func haircut() *domain.Service {
	return &domain.Service{ID: "svc_haircut", Name: "Haircut", Price: 35, DurationMinutes: 60}
}

func newTestBookingService(services ...*domain.Service) (*BookingService, *stubBookingRepo, *stubAccrualQueue) {
	repo := newStubBookingRepo()
	queue := &stubAccrualQueue{}
	svc := NewBookingService(repo, newStubServiceRepo(services...), queue, zerolog.Nop())
	return svc, repo, queue
}

func TestBookingService_Create_SnapshotsService(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "555-0101",
		ServiceID: "svc_haircut",
		Date:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
	if booking.ServiceName != "Haircut" || booking.Price != 35 {
		t.Fatalf("expected service snapshot, got %q/%v", booking.ServiceName, booking.Price)
	}
	if !strings.HasPrefix(booking.Reference, "BK-") {
		t.Fatalf("unexpected reference format: %s", booking.Reference)
	}
}

func TestBookingService_Create_UnknownService(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "alice@example.com", Phone: "555-0101",
		ServiceID: "svc_missing", Date: time.Now(),
	})
	if err != domain.ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBookingService_SetStatus_AllValidValues(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "cancelled", "postponed"} {
		svc, repo, _ := newTestBookingService(haircut())
		created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
			Name: "Alice", Email: "a@example.com", Phone: "1",
			ServiceID: "svc_haircut", Date: time.Now().UTC(),
		})

		updated, err := svc.SetStatus(context.Background(), ports.SetStatusInput{ID: created.ID, Status: status})
		if err != nil {
			t.Fatalf("SetStatus(%s) returned error: %v", status, err)
		}
		if string(updated.Status) != status {
			t.Fatalf("expected status %s, got %s", status, updated.Status)
		}
		if string(repo.bookings[created.ID].Status) != status {
			t.Fatalf("persisted record not updated for %s", status)
		}
	}
}

func TestBookingService_SetStatus_InvalidValue(t *testing.T) {
	svc, repo, _ := newTestBookingService(haircut())
	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut", Date: time.Now().UTC(),
	})

	_, err := svc.SetStatus(context.Background(), ports.SetStatusInput{ID: created.ID, Status: "bogus"})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if repo.bookings[created.ID].Status != domain.StatusPending {
		t.Fatalf("record changed despite invalid status")
	}
}

func TestBookingService_SetStatus_MovesDate(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())
	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut", Date: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
	})

	newDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.SetStatus(context.Background(), ports.SetStatusInput{
		ID: created.ID, Status: "confirmed", Date: &newDate,
	})
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if !updated.Date.Equal(newDate) {
		t.Fatalf("expected date %v, got %v", newDate, updated.Date)
	}
}

func TestBookingService_SetStatus_NotFound(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())

	_, err := svc.SetStatus(context.Background(), ports.SetStatusInput{ID: "bk_missing", Status: "confirmed"})
	if err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())
	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut", Date: time.Now().UTC(),
	})

	first, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	second, err := svc.Cancel(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second cancel failed: %v", err)
	}
	if first.Status != domain.StatusCancelled || second.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelled both times, got %s then %s", first.Status, second.Status)
	}
}

func TestBookingService_Confirm_EnqueuesAccrual(t *testing.T) {
	svc, _, queue := newTestBookingService(haircut())
	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		CustomerID: "cust_1",
		Name:       "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut", Date: time.Now().UTC(),
	})

	if _, err := svc.SetStatus(context.Background(), ports.SetStatusInput{ID: created.ID, Status: "confirmed"}); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	if len(queue.enqueued) != 1 {
		t.Fatalf("expected 1 accrual enqueued, got %d", len(queue.enqueued))
	}
	accrual := queue.enqueued[0]
	if accrual.CustomerID != "cust_1" || accrual.Amount != 35 {
		t.Fatalf("unexpected accrual: %+v", accrual)
	}
}

func TestBookingService_Confirm_GuestBookingNoAccrual(t *testing.T) {
	svc, _, queue := newTestBookingService(haircut())
	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Walk In", Email: "walkin@example.com", Phone: "1",
		ServiceID: "svc_haircut", Date: time.Now().UTC(),
	})

	if _, err := svc.SetStatus(context.Background(), ports.SetStatusInput{ID: created.ID, Status: "confirmed"}); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if len(queue.enqueued) != 0 {
		t.Fatalf("guest booking should not accrue loyalty")
	}
}

func TestBookingService_AvailableSlots_ExcludesBooked(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut",
		Date:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	slots, err := svc.AvailableSlots(context.Background(), day, "svc_haircut")
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}

	for _, slot := range slots {
		if slot == "10:00" {
			t.Fatalf("booked slot still offered: %v", slots)
		}
	}
	// 09:00-18:00 with 60-minute slots yields 9 openings, one taken.
	if len(slots) != 8 {
		t.Fatalf("expected 8 open slots, got %d (%v)", len(slots), slots)
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "17:00" {
		t.Fatalf("unexpected slot boundaries: %v", slots)
	}
}

func TestBookingService_AvailableSlots_PerServiceCalendar(t *testing.T) {
	manicure := &domain.Service{ID: "svc_manicure", Name: "Manicure", Price: 20, DurationMinutes: 60}
	svc, _, _ := newTestBookingService(haircut(), manicure)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_manicure",
		Date:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	slots, err := svc.AvailableSlots(context.Background(), day, "svc_haircut")
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	found := false
	for _, slot := range slots {
		if slot == "10:00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("a booking for another service must not block this one's calendar: %v", slots)
	}
}

func TestBookingService_AvailableSlots_CancelledBookingFreesSlot(t *testing.T) {
	svc, _, _ := newTestBookingService(haircut())
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	created, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		Name: "Alice", Email: "a@example.com", Phone: "1",
		ServiceID: "svc_haircut",
		Date:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if _, err := svc.Cancel(context.Background(), created.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	slots, err := svc.AvailableSlots(context.Background(), day, "svc_haircut")
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	found := false
	for _, slot := range slots {
		if slot == "10:00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("cancelled booking should free its slot: %v", slots)
	}
}
