package service

import (
	"context"
	"fmt"
	"time"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/logger"
	"gondola-rental-backend/internal/repository"
)

type deliveryOrderService struct {
	doRepo     repository.DeliveryOrderRepository
	rentalRepo repository.RentalRepository
	docRepo    repository.DocumentRepository
	documents  DocumentService
}

func NewDeliveryOrderService(doRepo repository.DeliveryOrderRepository, rentalRepo repository.RentalRepository, docRepo repository.DocumentRepository, documents DocumentService) DeliveryOrderService {
	return &deliveryOrderService{doRepo: doRepo, rentalRepo: rentalRepo, docRepo: docRepo, documents: documents}
}

// CreateDeliveryOrder records a dispatch event and applies its status side
// effects to the rental and equipment in one transaction. An offhire
// completes the rental and frees the equipment; a deployment marks the
// equipment deployed; rental continuations and shifts change nothing.
func (s *deliveryOrderService) CreateDeliveryOrder(ctx context.Context, in DeliveryOrderInput) (*domain.DeliveryOrder, error) {
	if in.RentalID == 0 || in.DONumber == "" || in.DODate.IsZero() {
		return nil, fmt.Errorf("rental_id, do_number and do_date are required: %w", domain.ErrValidation)
	}
	if !domain.ValidDOType(in.DOType) {
		return nil, fmt.Errorf("unknown do_type %q: %w", in.DOType, domain.ErrValidation)
	}

	do := &domain.DeliveryOrder{
		RentalID:    in.RentalID,
		DONumber:    in.DONumber,
		DODate:      in.DODate,
		DOType:      in.DOType,
		Notes:       in.Notes,
		DocumentIDs: in.DocumentIDs,
	}
	tr := domain.TransitionFor(in.DOType)
	if err := s.doRepo.CreateWithTransition(ctx, do, tr, in.EndDate); err != nil {
		return nil, err
	}
	if !tr.IsNoop() {
		logger.Info("delivery order applied status transition",
			"do_number", do.DONumber, "do_type", do.DOType, "rental_id", do.RentalID)
	}

	// Uploaded files are stored only after the insert succeeded, so a
	// rejected do_number leaves no document rows or blobs behind.
	if len(in.Files) > 0 {
		attached, err := s.storeAttachments(ctx, in.RentalID, in.DODate, in.Files)
		if err != nil {
			return nil, err
		}
		do.DocumentIDs = append(do.DocumentIDs, attached...)
		if err := s.doRepo.Update(ctx, do); err != nil {
			return nil, err
		}
	}
	return do, nil
}

func (s *deliveryOrderService) GetDeliveryOrder(ctx context.Context, id int64) (*domain.DeliveryOrderDetail, error) {
	detail, err := s.doRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadDocuments(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *deliveryOrderService) ListDeliveryOrders(ctx context.Context) ([]domain.DeliveryOrderDetail, error) {
	orders, err := s.doRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if err := s.loadDocuments(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// UpdateDeliveryOrder edits the mutable fields of a delivery order. The
// do_type is immutable and the original status transition is never
// re-applied; rental corrections ride along explicitly.
func (s *deliveryOrderService) UpdateDeliveryOrder(ctx context.Context, id int64, in DeliveryOrderUpdate) error {
	detail, err := s.doRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	do := detail.DeliveryOrder

	if !in.DODate.IsZero() {
		do.DODate = in.DODate
	}
	do.Notes = in.Notes
	docIDs := in.DocumentIDs
	if len(in.Files) > 0 {
		attached, err := s.storeAttachments(ctx, do.RentalID, do.DODate, in.Files)
		if err != nil {
			return err
		}
		docIDs = append(docIDs, attached...)
	}
	if docIDs != nil {
		do.DocumentIDs = docIDs
	}

	if err := s.doRepo.Update(ctx, &do); err != nil {
		return err
	}
	if in.SiteLocation != nil {
		if err := s.rentalRepo.UpdateSiteLocation(ctx, do.RentalID, *in.SiteLocation); err != nil {
			return err
		}
	}
	if in.EndDate != nil {
		if err := s.rentalRepo.UpdateEndDate(ctx, do.RentalID, *in.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// storeAttachments saves uploaded files as documents linked to the rental
// the delivery order belongs to.
func (s *deliveryOrderService) storeAttachments(ctx context.Context, rentalID int64, issued time.Time, files []FileUpload) ([]int64, error) {
	inputs := make([]DocumentInput, 0, len(files))
	for i := range files {
		f := files[i]
		inputs = append(inputs, DocumentInput{
			DocumentType: "delivery_order",
			IssueDate:    issued,
			File:         &f,
		})
	}
	return s.documents.AttachDocuments(ctx, DocumentParent{RentalID: &rentalID}, inputs)
}

func (s *deliveryOrderService) loadDocuments(ctx context.Context, detail *domain.DeliveryOrderDetail) error {
	if len(detail.DocumentIDs) == 0 {
		return nil
	}
	docs, err := s.docRepo.ListByIDs(ctx, detail.DocumentIDs)
	if err != nil {
		return err
	}
	for i := range docs {
		docs[i].Status = s.documents.Classify(docs[i].ExpiryDate)
	}
	detail.Documents = docs
	return nil
}
