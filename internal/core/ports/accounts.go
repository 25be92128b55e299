package ports

import (
	"context"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// CustomerRepository defines persistence for customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

// AdminRepository defines persistence for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

// RegisterCustomerInput carries the fields of a customer registration.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthService issues and validates credentials for both account types.
// Login failures for unknown email and wrong password are indistinguishable
// (both return domain.ErrInvalidCredentials) to resist account enumeration.
type AuthService interface {
	AdminLogin(ctx context.Context, email, password string) (string, error)
	CustomerLogin(ctx context.Context, email, password string) (string, *domain.Customer, error)
	RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error)
	// EnsureAdmin creates the admin account when no account with the given
	// email exists. Used for bootstrap at startup.
	EnsureAdmin(ctx context.Context, email, password string) error
}
