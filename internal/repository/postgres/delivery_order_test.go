package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gondola-rental-backend/internal/domain"
)

func TestDeliveryOrderRepository_CreateWithTransition(t *testing.T) {
	ctx := context.Background()
	doDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Offhire Completes Rental And Frees Equipment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WithArgs(int64(9), "DO-2026-001", doDate, "offhire", "", nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectExec(`UPDATE rentals SET status=\$1, end_date=\$2`).
			WithArgs("completed", doDate, sqlmock.AnyArg(), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE equipment e SET status=\$1`).
			WithArgs("available", sqlmock.AnyArg(), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 9, DONumber: "DO-2026-001", DODate: doDate, DOType: domain.DOTypeOffhire}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeOffhire), nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), do.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Rental Skips Sync Without Failing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectExec(`UPDATE rentals SET status=\$1, end_date=\$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE equipment e SET status=\$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 404, DONumber: "DO-2026-002", DODate: doDate, DOType: domain.DOTypeOffhire}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeOffhire), nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Noop Transition Only Inserts", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectCommit()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 9, DONumber: "DO-2026-003", DODate: doDate, DOType: domain.DOTypeShifting}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeShifting), nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Explicit End Date Applied For Non Offhire", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
		mock.ExpectExec(`UPDATE rentals SET end_date=\$1`).
			WithArgs(end, sqlmock.AnyArg(), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE equipment e SET status=\$1`).
			WithArgs("deployed", sqlmock.AnyArg(), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 9, DONumber: "DO-2026-004", DODate: doDate, DOType: domain.DOTypeDeployment}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeDeployment), &end)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nonexistent Rental Maps To ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WillReturnError(&pq.Error{Code: "23503", Constraint: "delivery_orders_rental_id_fkey"})
		mock.ExpectRollback()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 404, DONumber: "DO-2026-404", DODate: doDate, DOType: domain.DOTypeDeployment}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeDeployment), nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "delivery_orders_rental_id_fkey")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate DO Number Maps To ErrDuplicate", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO delivery_orders`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "delivery_orders_do_number_key"})
		mock.ExpectRollback()

		repo := NewDeliveryOrderRepository(db)
		do := &domain.DeliveryOrder{RentalID: 9, DONumber: "DO-2026-001", DODate: doDate, DOType: domain.DOTypeDeployment}
		err = repo.CreateWithTransition(ctx, do, domain.TransitionFor(domain.DOTypeDeployment), nil)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		assert.Contains(t, err.Error(), "delivery_orders_do_number_key")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeliveryOrderRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	doDate := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	created := time.Now()
	rows := sqlmock.NewRows([]string{"id", "rental_id", "do_number", "do_date", "do_type", "notes", "documents", "created_on",
		"site_location", "name", "gondola_number"}).
		AddRow(int64(1), int64(9), "DO-2026-001", doDate, "offhire", "", []byte(`[3,4]`), created,
			"Tower A", "Acme Builders", "GND-007")
	mock.ExpectQuery(`SELECT d.id, d.rental_id`).WithArgs(int64(1)).WillReturnRows(rows)

	repo := NewDeliveryOrderRepository(db)
	got, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "DO-2026-001", got.DONumber)
	assert.Equal(t, []int64{3, 4}, got.DocumentIDs)
	assert.Equal(t, "GND-007", got.GondolaNumber)
}

func TestDeliveryOrderRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE delivery_orders SET do_date=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewDeliveryOrderRepository(db)
	err = repo.Update(context.Background(), &domain.DeliveryOrder{ID: 404})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
