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

func TestEquipmentRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO equipment`).
			WithArgs("GND-007", "MSN-1", "suspended", "available", "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		repo := NewEquipmentRepository(db)
		e := &domain.Equipment{
			GondolaNumber:     "GND-007",
			MotorSerialNumber: "MSN-1",
			EquipmentType:     "suspended",
			Status:            domain.EquipmentStatusAvailable,
		}
		err = repo.Create(context.Background(), e)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), e.ID)
	})

	t.Run("Duplicate Gondola Number", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO equipment`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "equipment_gondola_number_key"})

		repo := NewEquipmentRepository(db)
		err = repo.Create(context.Background(), &domain.Equipment{GondolaNumber: "GND-007"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestEquipmentRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, gondola_number`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gondola_number", "motor_serial_number", "equipment_type", "status", "current_location", "notes", "created_on", "updated_on"}).
			AddRow(int64(7), "GND-007", "MSN-1", "suspended", "deployed", "Tower A", "", now, now))
	mock.ExpectQuery(`SELECT id, gondola_number`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewEquipmentRepository(db)
	e, err := repo.GetByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.EquipmentStatusDeployed, e.Status)
	assert.Equal(t, "Tower A", e.CurrentLocation)

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEquipmentRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE equipment SET gondola_number=\$1`).
		WithArgs("GND-007", "MSN-1", "suspended", "maintenance", "Yard", "motor overhaul", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE equipment SET gondola_number=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEquipmentRepository(db)
	assert.NoError(t, repo.Update(context.Background(), &domain.Equipment{
		ID:                7,
		GondolaNumber:     "GND-007",
		MotorSerialNumber: "MSN-1",
		EquipmentType:     "suspended",
		Status:            domain.EquipmentStatusMaintenance,
		CurrentLocation:   "Yard",
		Notes:             "motor overhaul",
	}))
	assert.ErrorIs(t, repo.Update(context.Background(), &domain.Equipment{ID: 404, GondolaNumber: "GND-404"}), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
