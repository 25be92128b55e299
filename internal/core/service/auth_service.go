package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
)

// AuthService implements login and registration for both account types.
type AuthService struct {
	admins    ports.AdminRepository
	customers ports.CustomerRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(admins ports.AdminRepository, customers ports.CustomerRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{admins: admins, customers: customers, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email is reported exactly like a wrong password.
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.signToken(admin.ID, admin.Email, domain.AccountAdmin)
}

func (s *AuthService) CustomerLogin(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(customer.ID, customer.Email, domain.AccountCustomer)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *AuthService) RegisterCustomer(ctx context.Context, input ports.RegisterCustomerInput) (*domain.Customer, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return s.customers.Create(ctx, customer)
}

// EnsureAdmin seeds the admin account at startup. Existing accounts are left
// untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.admins.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.AccountAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}

func (s *AuthService) signToken(id, email, accountType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"type":  accountType,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
