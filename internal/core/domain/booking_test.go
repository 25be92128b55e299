package domain

import "testing"

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusPostponed} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}

	for _, s := range []BookingStatus{"", "archived", "PENDING", "done"} {
		if s.Valid() {
			t.Fatalf("%q should not be valid", s)
		}
	}
}
