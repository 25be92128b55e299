package domain

import "time"

// LoyaltyRecord aggregates a customer's spend and booking count. The customer
// name and email are denormalised so the admin listing needs no join.
type LoyaltyRecord struct {
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalSpent    float64   `json:"total_spent"`
	TotalBookings int       `json:"total_bookings"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AccrualEvent records a single loyalty accrual applied for a confirmed booking.
type AccrualEvent struct {
	BookingID  string
	CustomerID string
	Amount     float64
	RecordedAt time.Time
}
