package service

import (
	"context"
	"fmt"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	docRepo       repository.DocumentRepository
	documents     DocumentService
}

func NewRentalService(rentalRepo repository.RentalRepository, equipmentRepo repository.EquipmentRepository, docRepo repository.DocumentRepository, documents DocumentService) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		docRepo:       docRepo,
		documents:     documents,
	}
}

// CreateRental starts a rental on an available equipment unit. The insert
// and the equipment deployment happen in one transaction; a partial unique
// index on active rentals backstops the availability check under
// concurrency.
func (s *rentalService) CreateRental(ctx context.Context, r *domain.Rental, docs []DocumentInput) (*domain.Rental, error) {
	if r.EquipmentID == 0 || r.ClientID == 0 {
		return nil, fmt.Errorf("equipment_id and client_id are required: %w", domain.ErrValidation)
	}
	if r.StartDate.IsZero() {
		return nil, fmt.Errorf("start_date is required: %w", domain.ErrValidation)
	}

	e, err := s.equipmentRepo.GetByID(ctx, r.EquipmentID)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.EquipmentStatusAvailable {
		return nil, fmt.Errorf("equipment %s is %s, not available: %w", e.GondolaNumber, e.Status, domain.ErrValidation)
	}

	r.Status = domain.RentalStatusActive
	if err := s.rentalRepo.CreateWithDeployment(ctx, r); err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		if _, err := s.documents.AttachDocuments(ctx, DocumentParent{RentalID: &r.ID}, docs); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.RentalDetail, error) {
	detail, err := s.rentalRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.docRepo.ListForRentalIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Status = s.documents.Classify(docs[i].ExpiryDate)
	}
	detail.Documents = docs
	return detail, nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.RentalDetail, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return rentals, nil
	}

	ids := make([]int64, 0, len(rentals))
	for i := range rentals {
		ids = append(ids, rentals[i].ID)
	}
	docs, err := s.docRepo.ListForRentalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRental := make(map[int64][]domain.Document, len(rentals))
	for _, d := range docs {
		if d.RentalID == nil {
			continue
		}
		d.Status = s.documents.Classify(d.ExpiryDate)
		byRental[*d.RentalID] = append(byRental[*d.RentalID], d)
	}
	for i := range rentals {
		rentals[i].Documents = byRental[rentals[i].ID]
	}
	return rentals, nil
}

func (s *rentalService) DeleteRentals(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no ids given: %w", domain.ErrValidation)
	}
	return s.rentalRepo.DeleteMany(ctx, ids)
}
