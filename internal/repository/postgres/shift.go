package postgres

import (
	"context"
	"database/sql"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type shiftRepository struct {
	db *sql.DB
}

func NewShiftRepository(db *sql.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	query := `INSERT INTO shifts (rental_id, equipment_id, shift_date, bay, elevation, block, floor, cos_issued, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, s.RentalID, s.EquipmentID, s.ShiftDate, s.Bay, s.Elevation, s.Block, s.Floor, s.COSIssued, s.Notes).Scan(&s.ID)
	return mapError(err)
}

func (r *shiftRepository) List(ctx context.Context) ([]domain.ShiftDetail, error) {
	query := `SELECT s.id, s.rental_id, s.equipment_id, s.shift_date, s.bay, s.elevation, s.block, s.floor, s.cos_issued, s.notes,
	                 e.gondola_number, r.site_location
	          FROM shifts s
	          JOIN equipment e ON s.equipment_id = e.id
	          JOIN rentals r ON s.rental_id = r.id
	          ORDER BY s.shift_date DESC`

	var shifts []domain.ShiftDetail
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		shifts = shifts[:0]
		for rows.Next() {
			var d domain.ShiftDetail
			if err := rows.Scan(&d.ID, &d.RentalID, &d.EquipmentID, &d.ShiftDate, &d.Bay, &d.Elevation, &d.Block, &d.Floor, &d.COSIssued, &d.Notes,
				&d.GondolaNumber, &d.SiteLocation); err != nil {
				return err
			}
			shifts = append(shifts, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return shifts, nil
}
