package postgres

import (
	"context"
	"database/sql"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type inspectionRepository struct {
	db *sql.DB
}

func NewInspectionRepository(db *sql.DB) repository.InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(ctx context.Context, i *domain.Inspection) error {
	query := `INSERT INTO inspections (rental_id, equipment_id, inspection_date, inspection_type, inspector_name, client_safety_officer, is_endorsed, is_chargeable, charge_amount_cents, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, i.RentalID, i.EquipmentID, i.InspectionDate, i.InspectionType, i.InspectorName, i.ClientSafetyOfficer, i.IsEndorsed, i.IsChargeable, i.ChargeAmountCents, i.Notes).Scan(&i.ID)
	return mapError(err)
}

func (r *inspectionRepository) List(ctx context.Context) ([]domain.InspectionDetail, error) {
	query := `SELECT i.id, i.rental_id, i.equipment_id, i.inspection_date, i.inspection_type, i.inspector_name, i.client_safety_officer, i.is_endorsed, i.is_chargeable, i.charge_amount_cents, i.notes,
	                 e.gondola_number, c.name, r.site_location
	          FROM inspections i
	          JOIN equipment e ON i.equipment_id = e.id
	          JOIN rentals r ON i.rental_id = r.id
	          JOIN clients c ON r.client_id = c.id
	          ORDER BY i.inspection_date DESC`

	var inspections []domain.InspectionDetail
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		inspections = inspections[:0]
		for rows.Next() {
			var d domain.InspectionDetail
			if err := rows.Scan(&d.ID, &d.RentalID, &d.EquipmentID, &d.InspectionDate, &d.InspectionType, &d.InspectorName, &d.ClientSafetyOfficer, &d.IsEndorsed, &d.IsChargeable, &d.ChargeAmountCents, &d.Notes,
				&d.GondolaNumber, &d.ClientName, &d.SiteLocation); err != nil {
				return err
			}
			inspections = append(inspections, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return inspections, nil
}
