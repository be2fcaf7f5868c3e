package service

import (
	"context"
	"time"

	"gondola-rental-backend/internal/domain"
)

// FileUpload carries one uploaded file through the boundary.
type FileUpload struct {
	Name     string
	MimeType string
	Data     []byte
}

// DocumentInput is one document tuple submitted on a create/edit form.
// An ExistingID targets an in-place update; Deleted marks the tuple as
// removed on the form (the stored document is left untouched).
type DocumentInput struct {
	ExistingID   *int64
	Deleted      bool
	DocumentType string
	IssueDate    time.Time
	ExpiryDate   *time.Time
	Notes        string
	File         *FileUpload
}

// DocumentParent scopes an attach operation to the entity being edited.
// Exactly one of the two fields is set.
type DocumentParent struct {
	EquipmentID *int64
	RentalID    *int64
}

// DeliveryOrderInput is the payload for creating a delivery order.
type DeliveryOrderInput struct {
	RentalID    int64
	DONumber    string
	DODate      time.Time
	DOType      domain.DOType
	Notes       string
	DocumentIDs []int64
	EndDate     *time.Time
	Files       []FileUpload
}

// DeliveryOrderUpdate is the payload for editing a delivery order. The
// do_type is immutable and the status transition is not re-applied.
type DeliveryOrderUpdate struct {
	DODate       time.Time
	Notes        string
	DocumentIDs  []int64
	Files        []FileUpload
	SiteLocation *string
	EndDate      *time.Time
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, e *domain.Equipment, docs []DocumentInput) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, []domain.DocumentDetail, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	UpdateEquipment(ctx context.Context, e *domain.Equipment, docs []DocumentInput) error
}

type ClientService interface {
	CreateClient(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, c *domain.Client) error
	DeleteClients(ctx context.Context, ids []int64) (int64, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, r *domain.Rental, docs []DocumentInput) (*domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.RentalDetail, error)
	ListRentals(ctx context.Context) ([]domain.RentalDetail, error)
	DeleteRentals(ctx context.Context, ids []int64) (int64, error)
}

type DeliveryOrderService interface {
	CreateDeliveryOrder(ctx context.Context, in DeliveryOrderInput) (*domain.DeliveryOrder, error)
	GetDeliveryOrder(ctx context.Context, id int64) (*domain.DeliveryOrderDetail, error)
	ListDeliveryOrders(ctx context.Context) ([]domain.DeliveryOrderDetail, error)
	UpdateDeliveryOrder(ctx context.Context, id int64, in DeliveryOrderUpdate) error
}

type DocumentService interface {
	Classify(expiry *time.Time) domain.DocumentStatus
	CreateDocument(ctx context.Context, d *domain.Document, file *FileUpload) (*domain.Document, error)
	GetDocument(ctx context.Context, id int64) (*domain.Document, error)
	// GetDocumentFile returns payload, file name and mime type.
	GetDocumentFile(ctx context.Context, id int64) ([]byte, string, string, error)
	ListDocuments(ctx context.Context, equipmentID *int64) ([]domain.DocumentDetail, error)
	UpdateDocument(ctx context.Context, id int64, in DocumentInput) error
	AttachDocuments(ctx context.Context, parent DocumentParent, docs []DocumentInput) ([]int64, error)
}

type LogbookService interface {
	RecordInspection(ctx context.Context, i *domain.Inspection) (*domain.Inspection, error)
	ListInspections(ctx context.Context) ([]domain.InspectionDetail, error)
	RecordShift(ctx context.Context, s *domain.Shift) (*domain.Shift, error)
	ListShifts(ctx context.Context) ([]domain.ShiftDetail, error)
}

type EmailService interface {
	SendExpiryReminder(ctx context.Context, to string, expiring, expired []domain.DocumentDetail) error
}
