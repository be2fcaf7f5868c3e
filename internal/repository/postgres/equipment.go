package postgres

import (
	"context"
	"database/sql"
	"time"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (gondola_number, motor_serial_number, equipment_type, status, current_location, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, e.GondolaNumber, e.MotorSerialNumber, e.EquipmentType, e.Status, e.CurrentLocation, e.Notes, now, now).Scan(&e.ID)
	return mapError(err)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT id, gondola_number, motor_serial_number, equipment_type, status, current_location, notes, created_on, updated_on
	          FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.GondolaNumber, &e.MotorSerialNumber, &e.EquipmentType, &e.Status, &e.CurrentLocation, &e.Notes, &e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT id, gondola_number, motor_serial_number, equipment_type, status, current_location, notes, created_on, updated_on
	          FROM equipment ORDER BY gondola_number`

	var equipment []domain.Equipment
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		equipment = equipment[:0]
		for rows.Next() {
			var e domain.Equipment
			if err := rows.Scan(&e.ID, &e.GondolaNumber, &e.MotorSerialNumber, &e.EquipmentType, &e.Status, &e.CurrentLocation, &e.Notes, &e.CreatedOn, &e.UpdatedOn); err != nil {
				return err
			}
			equipment = append(equipment, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET gondola_number=$1, motor_serial_number=$2, equipment_type=$3, status=$4, current_location=$5, notes=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, e.GondolaNumber, e.MotorSerialNumber, e.EquipmentType, e.Status, e.CurrentLocation, e.Notes, time.Now(), e.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
