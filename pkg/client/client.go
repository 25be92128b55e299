// Package client is a small typed client for the booking API, mirroring the
// calls the booking UI makes: submit a booking, list services, and fetch
// available slots.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// Client calls the booking API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL (e.g. "https://booking.example.com").
// When httpClient is nil a default client with a request timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BookingRequest is the payload for SubmitBooking.
type BookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"` // "2006-01-02"
	Slot      string `json:"slot"` // "15:04"
}

// Booking is the API's booking view.
type Booking struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	CustomerID  string    `json:"customer_id,omitempty"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Service is a catalog entry.
type Service struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

type slotsPayload struct {
	Slots []string `json:"slots"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// SubmitBooking creates a booking, attaching the bearer token when non-empty.
// On a non-2xx response the server's error message is returned.
func (c *Client) SubmitBooking(ctx context.Context, data BookingRequest, token string) (*Booking, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var booking Booking
	if err := c.do(req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetServices lists the public catalog in creation order.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/services", nil)
	if err != nil {
		return nil, err
	}

	var services []Service
	if err := c.do(req, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetAvailableSlots returns the open start times for a service on a day.
func (c *Client) GetAvailableSlots(ctx context.Context, date, serviceID string) ([]string, error) {
	q := url.Values{}
	q.Set("date", date)
	q.Set("service_id", serviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/availability?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var payload slotsPayload
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Slots, nil
}

// do executes the request, surfacing the server's error envelope on non-2xx.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var ep errorPayload
		if err := json.NewDecoder(res.Body).Decode(&ep); err == nil && ep.Error != "" {
			return fmt.Errorf("booking api: %s", ep.Error)
		}
		return fmt.Errorf("booking api: unexpected status %d", res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
