package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/storage"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithDeployment(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetDetail(ctx context.Context, id int64) (*domain.RentalDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.RentalDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateSiteLocation(ctx context.Context, id int64, siteLocation string) error {
	args := m.Called(ctx, id, siteLocation)
	return args.Error(0)
}
func (m *MockRentalRepo) UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error {
	args := m.Called(ctx, id, endDate)
	return args.Error(0)
}
func (m *MockRentalRepo) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockDeliveryOrderRepo
type MockDeliveryOrderRepo struct {
	mock.Mock
}

func (m *MockDeliveryOrderRepo) CreateWithTransition(ctx context.Context, do *domain.DeliveryOrder, tr domain.StatusTransition, endDateOverride *time.Time) error {
	args := m.Called(ctx, do, tr, endDateOverride)
	return args.Error(0)
}
func (m *MockDeliveryOrderRepo) GetByID(ctx context.Context, id int64) (*domain.DeliveryOrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrderDetail), args.Error(1)
}
func (m *MockDeliveryOrderRepo) List(ctx context.Context) ([]domain.DeliveryOrderDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DeliveryOrderDetail), args.Error(1)
}
func (m *MockDeliveryOrderRepo) Update(ctx context.Context, do *domain.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

// MockDocumentRepo
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Document, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.DocumentDetail, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.DocumentDetail), args.Error(1)
}
func (m *MockDocumentRepo) ListForRentalIDs(ctx context.Context, rentalIDs []int64) ([]domain.Document, error) {
	args := m.Called(ctx, rentalIDs)
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListAll(ctx context.Context) ([]domain.DocumentDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DocumentDetail), args.Error(1)
}
func (m *MockDocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockBlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Store(ctx context.Context, payload []byte, fileName, mimeType string) (storage.Ref, error) {
	args := m.Called(ctx, payload, fileName, mimeType)
	return args.Get(0).(storage.Ref), args.Error(1)
}
func (m *MockBlobStore) Retrieve(ctx context.Context, ref storage.Ref) ([]byte, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockBlobStore) Delete(ctx context.Context, ref storage.Ref) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func storageRef(key, fileName, mimeType string) storage.Ref {
	return storage.Ref{Key: key, FileName: fileName, MimeType: mimeType}
}
