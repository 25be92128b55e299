package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

type customerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type customerLoginResponse struct {
	Token    string          `json:"token"`
	Customer customerProfile `json:"customer"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
}

type meResponse struct {
	Admin string `json:"admin"`
}

// --- Bookings ---

type createBookingRequest struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Date      string `json:"date"       validate:"required,datetime=2006-01-02"`
	Slot      string `json:"slot"       validate:"required,datetime=15:04"`
}

type setStatusRequest struct {
	// Date optionally moves the scheduled date alongside the status,
	// either "2006-01-02" or RFC 3339.
	Date string `json:"date,omitempty"`
}

type contactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// bookingResponse is the transport-owned booking view. Intentionally separate
// from the domain type so the JSON contract is not coupled to internal changes.
type bookingResponse struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	CustomerID  string          `json:"customer_id,omitempty"`
	Contact     contactResponse `json:"contact"`
	ServiceID   string          `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Price       float64         `json:"price"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

type slotsResponse struct {
	Date      string   `json:"date"`
	ServiceID string   `json:"service_id"`
	Slots     []string `json:"slots"`
}

// --- Catalog ---

type serviceRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
}

type serviceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// --- Loyalty ---

type loyaltyRecordResponse struct {
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalSpent    float64   `json:"total_spent"`
	TotalBookings int       `json:"total_bookings"`
	UpdatedAt     time.Time `json:"updated_at"`
}
