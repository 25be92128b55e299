package ports

import (
	"context"

	"github.com/maisonbelle/booking-api/internal/core/domain"
)

// ServiceInput carries the mutable fields of a catalog service.
type ServiceInput struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	// List returns all services ordered by creation time ascending.
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService defines use-case operations on the service catalog.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, input ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
