package service

import (
	"context"
	"fmt"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	documents     DocumentService
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, documents DocumentService) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, documents: documents}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, e *domain.Equipment, docs []DocumentInput) (*domain.Equipment, error) {
	if e.GondolaNumber == "" {
		return nil, fmt.Errorf("gondola_number is required: %w", domain.ErrValidation)
	}
	if e.Status == "" {
		e.Status = domain.EquipmentStatusAvailable
	}
	if !domain.ValidEquipmentStatus(e.Status) {
		return nil, fmt.Errorf("unknown equipment status %q: %w", e.Status, domain.ErrValidation)
	}

	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		if _, err := s.documents.AttachDocuments(ctx, DocumentParent{EquipmentID: &e.ID}, docs); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.DocumentDetail, error) {
	e, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	docs, err := s.documents.ListDocuments(ctx, &id)
	if err != nil {
		return nil, nil, err
	}
	return e, docs, nil
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, e *domain.Equipment, docs []DocumentInput) error {
	if e.GondolaNumber == "" {
		return fmt.Errorf("gondola_number is required: %w", domain.ErrValidation)
	}
	if !domain.ValidEquipmentStatus(e.Status) {
		return fmt.Errorf("unknown equipment status %q: %w", e.Status, domain.ErrValidation)
	}
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return err
	}
	if len(docs) > 0 {
		if _, err := s.documents.AttachDocuments(ctx, DocumentParent{EquipmentID: &e.ID}, docs); err != nil {
			return err
		}
	}
	return nil
}
