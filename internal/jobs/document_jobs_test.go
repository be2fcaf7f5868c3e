package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gondola-rental-backend/internal/config"
	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/jobs"
	"gondola-rental-backend/internal/service"
)

// MockDocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Classify(expiry *time.Time) domain.DocumentStatus {
	args := m.Called(expiry)
	return args.Get(0).(domain.DocumentStatus)
}
func (m *MockDocumentService) CreateDocument(ctx context.Context, d *domain.Document, file *service.FileUpload) (*domain.Document, error) {
	args := m.Called(ctx, d, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentService) GetDocumentFile(ctx context.Context, id int64) ([]byte, string, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).([]byte), args.String(1), args.String(2), args.Error(3)
}
func (m *MockDocumentService) ListDocuments(ctx context.Context, equipmentID *int64) ([]domain.DocumentDetail, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).([]domain.DocumentDetail), args.Error(1)
}
func (m *MockDocumentService) UpdateDocument(ctx context.Context, id int64, in service.DocumentInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}
func (m *MockDocumentService) AttachDocuments(ctx context.Context, parent service.DocumentParent, docs []service.DocumentInput) ([]int64, error) {
	args := m.Called(ctx, parent, docs)
	return args.Get(0).([]int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendExpiryReminder(ctx context.Context, to string, expiring, expired []domain.DocumentDetail) error {
	args := m.Called(ctx, to, expiring, expired)
	return args.Error(0)
}

func TestScanDocumentExpiry(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.ReportRecipient = "ops@example.com"

	t.Run("Sends Reminder With Expiring And Expired", func(t *testing.T) {
		docSvc := new(MockDocumentService)
		emailSvc := new(MockEmailService)

		expiring := domain.DocumentDetail{Document: domain.Document{ID: 1, Status: domain.DocumentStatusExpiring}}
		expired := domain.DocumentDetail{Document: domain.Document{ID: 2, Status: domain.DocumentStatusExpired}}
		valid := domain.DocumentDetail{Document: domain.Document{ID: 3, Status: domain.DocumentStatusValid}}
		docSvc.On("ListDocuments", mock.Anything, (*int64)(nil)).
			Return([]domain.DocumentDetail{expiring, expired, valid}, nil)
		emailSvc.On("SendExpiryReminder", mock.Anything, "ops@example.com",
			[]domain.DocumentDetail{expiring}, []domain.DocumentDetail{expired}).Return(nil)

		runner := jobs.NewJobRunner(&jobs.Services{Document: docSvc, Email: emailSvc}, cfg)
		runner.ScanDocumentExpiry()

		emailSvc.AssertExpectations(t)
	})

	t.Run("No Action Needed Sends Nothing", func(t *testing.T) {
		docSvc := new(MockDocumentService)
		emailSvc := new(MockEmailService)
		docSvc.On("ListDocuments", mock.Anything, (*int64)(nil)).
			Return([]domain.DocumentDetail{{Document: domain.Document{ID: 3, Status: domain.DocumentStatusValid}}}, nil)

		runner := jobs.NewJobRunner(&jobs.Services{Document: docSvc, Email: emailSvc}, cfg)
		runner.ScanDocumentExpiry()

		emailSvc.AssertNotCalled(t, "SendExpiryReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Recovers From Panic", func(t *testing.T) {
		docSvc := new(MockDocumentService)
		emailSvc := new(MockEmailService)
		docSvc.On("ListDocuments", mock.Anything, (*int64)(nil)).
			Panic("repository unavailable")

		runner := jobs.NewJobRunner(&jobs.Services{Document: docSvc, Email: emailSvc}, cfg)
		assert.NotPanics(t, func() { runner.ScanDocumentExpiry() })
	})
}
