package service

import (
	"context"
	"fmt"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, c *domain.Client) error {
	if c.Name == "" {
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	return s.clientRepo.Update(ctx, c)
}

func (s *clientService) DeleteClients(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no ids given: %w", domain.ErrValidation)
	}
	return s.clientRepo.DeleteMany(ctx, ids)
}
