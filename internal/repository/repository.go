package repository

import (
	"context"
	"time"

	"gondola-rental-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type RentalRepository interface {
	// CreateWithDeployment inserts the rental and flips its equipment to
	// deployed at the site location in a single transaction.
	CreateWithDeployment(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetDetail(ctx context.Context, id int64) (*domain.RentalDetail, error)
	List(ctx context.Context) ([]domain.RentalDetail, error)
	Update(ctx context.Context, r *domain.Rental) error
	UpdateSiteLocation(ctx context.Context, id int64, siteLocation string) error
	UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type DeliveryOrderRepository interface {
	// CreateWithTransition inserts the delivery order and applies the status
	// transition to the referenced rental and its equipment in a single
	// transaction. A missing rental makes the transition a silent skip.
	CreateWithTransition(ctx context.Context, do *domain.DeliveryOrder, tr domain.StatusTransition, endDateOverride *time.Time) error
	GetByID(ctx context.Context, id int64) (*domain.DeliveryOrderDetail, error)
	List(ctx context.Context) ([]domain.DeliveryOrderDetail, error)
	Update(ctx context.Context, do *domain.DeliveryOrder) error
}

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id int64) (*domain.Document, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Document, error)
	ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.DocumentDetail, error)
	ListForRentalIDs(ctx context.Context, rentalIDs []int64) ([]domain.Document, error)
	ListAll(ctx context.Context) ([]domain.DocumentDetail, error)
	Update(ctx context.Context, d *domain.Document) error
}

type InspectionRepository interface {
	Create(ctx context.Context, i *domain.Inspection) error
	List(ctx context.Context) ([]domain.InspectionDetail, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, s *domain.Shift) error
	List(ctx context.Context) ([]domain.ShiftDetail, error)
}
