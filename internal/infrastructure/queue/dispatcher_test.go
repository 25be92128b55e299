package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
)

type recordingLoyaltyService struct {
	mu        sync.Mutex
	processed []ports.AccrualInput
	done      chan struct{}
	want      int
}

func newRecordingLoyaltyService(want int) *recordingLoyaltyService {
	return &recordingLoyaltyService{done: make(chan struct{}), want: want}
}

func (s *recordingLoyaltyService) Process(_ context.Context, input ports.AccrualInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed = append(s.processed, input)
	if len(s.processed) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingLoyaltyService) List(_ context.Context) ([]*domain.LoyaltyRecord, error) {
	return nil, nil
}

func (s *recordingLoyaltyService) wait(t *testing.T) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d accruals", s.want)
	}
}

func TestDispatcher_ProcessesEnqueued(t *testing.T) {
	svc := newRecordingLoyaltyService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AccrualInput{BookingID: "bkg_1", CustomerID: "cust_a", Amount: 30})
	d.Enqueue(ports.AccrualInput{BookingID: "bkg_2", CustomerID: "cust_b", Amount: 45})
	d.Enqueue(ports.AccrualInput{BookingID: "bkg_3", CustomerID: "cust_c", Amount: 20})

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	seen := map[string]bool{}
	for _, p := range svc.processed {
		seen[p.BookingID] = true
	}
	for _, id := range []string{"bkg_1", "bkg_2", "bkg_3"} {
		if !seen[id] {
			t.Fatalf("accrual %s not processed", id)
		}
	}
}

func TestDispatcher_SameCustomerKeepsOrder(t *testing.T) {
	const n = 20
	svc := newRecordingLoyaltyService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.AccrualInput{BookingID: "bkg_" + string(rune('a'+i)), CustomerID: "cust_same", Amount: float64(i)})
	}

	svc.wait(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i, p := range svc.processed {
		if p.Amount != float64(i) {
			t.Fatalf("ordering violated at index %d: got amount %v", i, p.Amount)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingLoyaltyService(1), zerolog.Nop())

	first := d.shardIndex("cust_42")
	for i := 0; i < 100; i++ {
		if got := d.shardIndex("cust_42"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingLoyaltyService(1), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
