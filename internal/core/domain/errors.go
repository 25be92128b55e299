package domain

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
