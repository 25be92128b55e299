package redis

import (
	"testing"
	"time"
)

func TestAccrualDedup_KeyFormat(t *testing.T) {
	d := NewAccrualDedup(nil)

	got := d.key("bkg_42")
	want := "loyalty:accrual:bkg_42"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

func TestAccrualTTLOutlivesRedeliveryWindow(t *testing.T) {
	if accrualTTL < 7*24*time.Hour {
		t.Fatalf("accrual marker TTL too short for redelivery protection: %v", accrualTTL)
	}
}
