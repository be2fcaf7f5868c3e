package service

import (
	"context"
	"fmt"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type logbookService struct {
	inspectionRepo repository.InspectionRepository
	shiftRepo      repository.ShiftRepository
}

func NewLogbookService(inspectionRepo repository.InspectionRepository, shiftRepo repository.ShiftRepository) LogbookService {
	return &logbookService{inspectionRepo: inspectionRepo, shiftRepo: shiftRepo}
}

func (s *logbookService) RecordInspection(ctx context.Context, i *domain.Inspection) (*domain.Inspection, error) {
	if i.RentalID == 0 || i.EquipmentID == 0 {
		return nil, fmt.Errorf("rental_id and equipment_id are required: %w", domain.ErrValidation)
	}
	if i.InspectionDate.IsZero() || i.InspectionType == "" || i.InspectorName == "" {
		return nil, fmt.Errorf("inspection_date, inspection_type and inspector_name are required: %w", domain.ErrValidation)
	}
	if err := s.inspectionRepo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *logbookService) ListInspections(ctx context.Context) ([]domain.InspectionDetail, error) {
	return s.inspectionRepo.List(ctx)
}

func (s *logbookService) RecordShift(ctx context.Context, sh *domain.Shift) (*domain.Shift, error) {
	if sh.RentalID == 0 || sh.EquipmentID == 0 {
		return nil, fmt.Errorf("rental_id and equipment_id are required: %w", domain.ErrValidation)
	}
	if sh.ShiftDate.IsZero() {
		return nil, fmt.Errorf("shift_date is required: %w", domain.ErrValidation)
	}
	if err := s.shiftRepo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *logbookService) ListShifts(ctx context.Context) ([]domain.ShiftDetail, error) {
	return s.shiftRepo.List(ctx)
}
