package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSubmitBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bookings" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Fatalf("expected bearer token, got %q", got)
		}

		var req BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ServiceID != "svc_1" || req.Slot != "10:00" {
			t.Fatalf("unexpected payload: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":        "bkg_1",
			"reference": "BK-0A1B2C3D",
			"status":    "pending",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	booking, err := c.SubmitBooking(context.Background(), BookingRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Phone:     "5551234",
		ServiceID: "svc_1",
		Date:      "2026-09-04",
		Slot:      "10:00",
	}, "tok123")
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}
	if booking.Reference != "BK-0A1B2C3D" || booking.Status != "pending" {
		t.Fatalf("unexpected booking: %+v", booking)
	}
}

func TestSubmitBooking_NoTokenOmitsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Fatalf("authorization header must be absent for guest bookings")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"bkg_2","status":"pending"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.SubmitBooking(context.Background(), BookingRequest{}, ""); err != nil {
		t.Fatalf("submit booking: %v", err)
	}
}

func TestSubmitBooking_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"service not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.SubmitBooking(context.Background(), BookingRequest{}, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "service not found") {
		t.Fatalf("server message not surfaced: %v", err)
	}
}

func TestGetServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"svc_1","name":"Haircut","price":35,"duration_minutes":60}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	services, err := c.GetServices(context.Background())
	if err != nil {
		t.Fatalf("get services: %v", err)
	}
	if len(services) != 1 || services[0].Name != "Haircut" {
		t.Fatalf("unexpected services: %+v", services)
	}
}

func TestGetAvailableSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/availability" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("date") != "2026-09-04" || q.Get("service_id") != "svc_1" {
			t.Fatalf("unexpected query: %v", q)
		}
		_, _ = w.Write([]byte(`{"date":"2026-09-04","service_id":"svc_1","slots":["09:00","11:00"]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	slots, err := c.GetAvailableSlots(context.Background(), "2026-09-04", "svc_1")
	if err != nil {
		t.Fatalf("get slots: %v", err)
	}
	if len(slots) != 2 || slots[0] != "09:00" {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func TestGetAvailableSlots_StatusWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetAvailableSlots(context.Background(), "2026-09-04", "svc_1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "504") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}
