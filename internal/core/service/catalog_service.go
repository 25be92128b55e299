package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maisonbelle/booking-api/internal/core/domain"
	"github.com/maisonbelle/booking-api/internal/core/ports"
)

// CatalogService manages the public service catalog.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Create(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	created, err := s.repo.Create(ctx, &domain.Service{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("catalog service created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("catalog service deleted")
	return nil
}
