package service

import (
	"context"
	"fmt"
	"time"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/logger"
	"gondola-rental-backend/internal/repository"
	"gondola-rental-backend/internal/storage"
)

type documentService struct {
	docRepo repository.DocumentRepository
	blobs   storage.BlobStore
	now     func() time.Time
}

func NewDocumentService(docRepo repository.DocumentRepository, blobs storage.BlobStore) DocumentService {
	return &documentService{docRepo: docRepo, blobs: blobs, now: time.Now}
}

func (s *documentService) Classify(expiry *time.Time) domain.DocumentStatus {
	return domain.ClassifyExpiry(expiry, s.now())
}

func (s *documentService) CreateDocument(ctx context.Context, d *domain.Document, file *FileUpload) (*domain.Document, error) {
	if d.DocumentType == "" {
		return nil, fmt.Errorf("document_type is required: %w", domain.ErrValidation)
	}
	if d.IssueDate.IsZero() {
		d.IssueDate = s.now()
	}

	// Payload goes to the blob store first so a storage failure never
	// leaves metadata pointing at nothing.
	if file != nil {
		ref, err := s.blobs.Store(ctx, file.Data, file.Name, file.MimeType)
		if err != nil {
			return nil, err
		}
		d.FileName = ref.FileName
		d.MimeType = ref.MimeType
		d.StorageKey = ref.Key
	}

	if err := s.docRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	d.Status = s.Classify(d.ExpiryDate)
	return d, nil
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	d, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Status = s.Classify(d.ExpiryDate)
	return d, nil
}

func (s *documentService) GetDocumentFile(ctx context.Context, id int64) ([]byte, string, string, error) {
	d, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", "", err
	}
	if d.StorageKey == "" {
		return nil, "", "", domain.ErrNotFound
	}
	data, err := s.blobs.Retrieve(ctx, storage.Ref{Key: d.StorageKey, FileName: d.FileName, MimeType: d.MimeType})
	if err != nil {
		return nil, "", "", err
	}
	return data, d.FileName, d.MimeType, nil
}

func (s *documentService) ListDocuments(ctx context.Context, equipmentID *int64) ([]domain.DocumentDetail, error) {
	var (
		documents []domain.DocumentDetail
		err       error
	)
	if equipmentID != nil {
		documents, err = s.docRepo.ListForEquipment(ctx, *equipmentID)
	} else {
		documents, err = s.docRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	for i := range documents {
		documents[i].Status = s.Classify(documents[i].ExpiryDate)
	}
	return documents, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id int64, in DocumentInput) error {
	if in.DocumentType == "" {
		return fmt.Errorf("document_type is required: %w", domain.ErrValidation)
	}
	d, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.applyUpdate(ctx, d, in)
}

// applyUpdate rewrites metadata and swaps the payload only when a new file
// was supplied.
func (s *documentService) applyUpdate(ctx context.Context, d *domain.Document, in DocumentInput) error {
	d.DocumentType = in.DocumentType
	if !in.IssueDate.IsZero() {
		d.IssueDate = in.IssueDate
	}
	d.ExpiryDate = in.ExpiryDate
	d.Notes = in.Notes

	var stale string
	if in.File != nil {
		ref, err := s.blobs.Store(ctx, in.File.Data, in.File.Name, in.File.MimeType)
		if err != nil {
			return err
		}
		stale = d.StorageKey
		d.FileName = ref.FileName
		d.MimeType = ref.MimeType
		d.StorageKey = ref.Key
	}

	if err := s.docRepo.Update(ctx, d); err != nil {
		return err
	}
	if stale != "" {
		if err := s.blobs.Delete(ctx, storage.Ref{Key: stale}); err != nil {
			logger.Warn("failed to delete replaced document payload", "document_id", d.ID, "key", stale, "error", err)
		}
	}
	return nil
}

// AttachDocuments processes the document tuples submitted on an equipment
// or rental edit form and returns the IDs of the documents it touched or
// created. Tuples marked deleted are skipped without touching the stored
// row: documents are kept as an audit trail.
func (s *documentService) AttachDocuments(ctx context.Context, parent DocumentParent, docs []DocumentInput) ([]int64, error) {
	var ids []int64
	for _, in := range docs {
		if in.Deleted {
			logger.Debug("skipping document tuple marked deleted", "existing_id", in.ExistingID)
			continue
		}

		if in.ExistingID != nil {
			d, err := s.docRepo.GetByID(ctx, *in.ExistingID)
			if err != nil {
				return ids, err
			}
			if !belongsTo(d, parent) {
				return ids, fmt.Errorf("document %d does not belong to this record: %w", d.ID, domain.ErrNotFound)
			}
			if err := s.applyUpdate(ctx, d, in); err != nil {
				return ids, err
			}
			ids = append(ids, d.ID)
			continue
		}

		d := &domain.Document{
			EquipmentID:  parent.EquipmentID,
			RentalID:     parent.RentalID,
			DocumentType: in.DocumentType,
			IssueDate:    in.IssueDate,
			ExpiryDate:   in.ExpiryDate,
			Notes:        in.Notes,
		}
		created, err := s.CreateDocument(ctx, d, in.File)
		if err != nil {
			return ids, err
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func belongsTo(d *domain.Document, parent DocumentParent) bool {
	if parent.EquipmentID != nil {
		return d.EquipmentID != nil && *d.EquipmentID == *parent.EquipmentID
	}
	if parent.RentalID != nil {
		return d.RentalID != nil && *d.RentalID == *parent.RentalID
	}
	return false
}
