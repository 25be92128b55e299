package domain

import "time"

// Account types embedded in token claims. Admin-gated routes require
// AccountAdmin; customer tokens carry AccountCustomer.
const (
	AccountAdmin    = "admin"
	AccountCustomer = "customer"
)

// Customer is a registered salon customer.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminUser is a dashboard operator account.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
