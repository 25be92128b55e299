package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusPostponed BookingStatus = "postponed"
)

// bookingStatuses is the closed set of values a booking may hold. Any status
// may move to any other; the system enforces membership, not a transition graph.
var bookingStatuses = map[BookingStatus]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusCancelled: {},
	StatusPostponed: {},
}

// Valid reports whether s is one of the four enumerated booking statuses.
func (s BookingStatus) Valid() bool {
	_, ok := bookingStatuses[s]
	return ok
}

// Contact holds the person a booking was made for. Guest bookings carry only
// this block; bookings made by a signed-in customer also carry CustomerID.
type Contact struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Booking is the core aggregate of the system.
type Booking struct {
	ID          string        `json:"id"`
	Reference   string        `json:"reference"`
	CustomerID  string        `json:"customer_id,omitempty"`
	Contact     Contact       `json:"contact"`
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Price       float64       `json:"price"`
	Date        time.Time     `json:"date"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
