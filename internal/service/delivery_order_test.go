package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

func newDeliveryOrderService() (service.DeliveryOrderService, *MockDeliveryOrderRepo, *MockRentalRepo, *MockDocumentRepo, *MockBlobStore) {
	doRepo := new(MockDeliveryOrderRepo)
	rentalRepo := new(MockRentalRepo)
	docRepo := new(MockDocumentRepo)
	blobs := new(MockBlobStore)
	docSvc := service.NewDocumentService(docRepo, blobs)
	svc := service.NewDeliveryOrderService(doRepo, rentalRepo, docRepo, docSvc)
	return svc, doRepo, rentalRepo, docRepo, blobs
}

func TestDeliveryOrderService_CreateDeliveryOrder(t *testing.T) {
	ctx := context.Background()
	doDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	base := service.DeliveryOrderInput{
		RentalID: 9,
		DONumber: "DO-2026-001",
		DODate:   doDate,
	}

	t.Run("Offhire Applies Completion Transition", func(t *testing.T) {
		svc, doRepo, _, _, _ := newDeliveryOrderService()
		doRepo.On("CreateWithTransition", ctx, mock.AnythingOfType("*domain.DeliveryOrder"), mock.AnythingOfType("domain.StatusTransition"), (*time.Time)(nil)).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.DeliveryOrder).ID = 1
				tr := args.Get(2).(domain.StatusTransition)
				assert.Equal(t, domain.EquipmentStatusAvailable, *tr.EquipmentStatus)
				assert.Equal(t, domain.RentalStatusCompleted, *tr.RentalStatus)
				assert.True(t, tr.RentalEndsOnDODate)
			}).Return(nil)

		in := base
		in.DOType = domain.DOTypeOffhire
		created, err := svc.CreateDeliveryOrder(ctx, in)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		doRepo.AssertExpectations(t)
	})

	t.Run("Shifting Is A Noop Transition", func(t *testing.T) {
		svc, doRepo, _, _, _ := newDeliveryOrderService()
		doRepo.On("CreateWithTransition", ctx, mock.AnythingOfType("*domain.DeliveryOrder"), mock.AnythingOfType("domain.StatusTransition"), (*time.Time)(nil)).
			Run(func(args mock.Arguments) {
				assert.True(t, args.Get(2).(domain.StatusTransition).IsNoop())
			}).Return(nil)

		in := base
		in.DOType = domain.DOTypeShifting
		_, err := svc.CreateDeliveryOrder(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("Unknown DO Type Rejected", func(t *testing.T) {
		svc, doRepo, _, _, _ := newDeliveryOrderService()
		in := base
		in.DOType = "teardown"
		_, err := svc.CreateDeliveryOrder(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
		doRepo.AssertNotCalled(t, "CreateWithTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing DO Number Rejected", func(t *testing.T) {
		svc, _, _, _, _ := newDeliveryOrderService()
		in := base
		in.DONumber = ""
		in.DOType = domain.DOTypeDeployment
		_, err := svc.CreateDeliveryOrder(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Duplicate DO Number Propagates", func(t *testing.T) {
		svc, doRepo, _, _, _ := newDeliveryOrderService()
		doRepo.On("CreateWithTransition", ctx, mock.Anything, mock.Anything, (*time.Time)(nil)).
			Return(fmt.Errorf("delivery_orders_do_number_key: %w", domain.ErrDuplicate))

		in := base
		in.DOType = domain.DOTypeDeployment
		_, err := svc.CreateDeliveryOrder(ctx, in)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("Uploaded Files Become Rental Documents", func(t *testing.T) {
		svc, doRepo, _, docRepo, blobs := newDeliveryOrderService()
		doRepo.On("CreateWithTransition", ctx, mock.AnythingOfType("*domain.DeliveryOrder"), mock.Anything, (*time.Time)(nil)).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.DeliveryOrder).ID = 5
			}).Return(nil)
		blobs.On("Store", ctx, []byte("scan"), "do.pdf", "application/pdf").
			Return(storageRef("k1", "do.pdf", "application/pdf"), nil)
		docRepo.On("Create", ctx, mock.AnythingOfType("*domain.Document")).Run(func(args mock.Arguments) {
			d := args.Get(1).(*domain.Document)
			assert.NotNil(t, d.RentalID)
			assert.Equal(t, int64(9), *d.RentalID)
			d.ID = 77
		}).Return(nil)
		doRepo.On("Update", ctx, mock.AnythingOfType("*domain.DeliveryOrder")).Run(func(args mock.Arguments) {
			assert.Equal(t, []int64{77}, args.Get(1).(*domain.DeliveryOrder).DocumentIDs)
		}).Return(nil)

		in := base
		in.DOType = domain.DOTypeRental
		in.Files = []service.FileUpload{{Name: "do.pdf", MimeType: "application/pdf", Data: []byte("scan")}}
		created, err := svc.CreateDeliveryOrder(ctx, in)
		assert.NoError(t, err)
		assert.Equal(t, []int64{77}, created.DocumentIDs)
		doRepo.AssertExpectations(t)
	})

	t.Run("Rejected DO Number Stores No Attachments", func(t *testing.T) {
		svc, doRepo, _, docRepo, blobs := newDeliveryOrderService()
		doRepo.On("CreateWithTransition", ctx, mock.Anything, mock.Anything, (*time.Time)(nil)).
			Return(fmt.Errorf("delivery_orders_do_number_key: %w", domain.ErrDuplicate))

		in := base
		in.DOType = domain.DOTypeRental
		in.Files = []service.FileUpload{{Name: "do.pdf", MimeType: "application/pdf", Data: []byte("scan")}}
		_, err := svc.CreateDeliveryOrder(ctx, in)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		blobs.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDeliveryOrderService_UpdateDeliveryOrder(t *testing.T) {
	ctx := context.Background()
	svc, doRepo, rentalRepo, _, _ := newDeliveryOrderService()

	existing := &domain.DeliveryOrderDetail{
		DeliveryOrder: domain.DeliveryOrder{
			ID:       4,
			RentalID: 9,
			DONumber: "DO-2026-004",
			DODate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			DOType:   domain.DOTypeOffhire,
		},
	}
	doRepo.On("GetByID", ctx, int64(4)).Return(existing, nil)
	doRepo.On("Update", ctx, mock.AnythingOfType("*domain.DeliveryOrder")).Run(func(args mock.Arguments) {
		do := args.Get(1).(*domain.DeliveryOrder)
		assert.Equal(t, "corrected", do.Notes)
		assert.Equal(t, domain.DOTypeOffhire, do.DOType)
	}).Return(nil)

	site := "Tower B"
	end := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	rentalRepo.On("UpdateSiteLocation", ctx, int64(9), site).Return(nil)
	rentalRepo.On("UpdateEndDate", ctx, int64(9), end).Return(nil)

	err := svc.UpdateDeliveryOrder(ctx, 4, service.DeliveryOrderUpdate{
		Notes:        "corrected",
		SiteLocation: &site,
		EndDate:      &end,
	})
	assert.NoError(t, err)
	doRepo.AssertExpectations(t)
	rentalRepo.AssertExpectations(t)
}
