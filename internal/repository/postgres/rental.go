package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `r.id, r.equipment_id, r.client_id, r.site_location, r.start_date, r.end_date, r.monthly_rate_cents, r.notes, r.status, r.created_on, r.updated_on`

func (r *rentalRepository) CreateWithDeployment(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO rentals (equipment_id, client_id, site_location, start_date, end_date, monthly_rate_cents, notes, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var endDate interface{}
	if rt.EndDate != nil {
		endDate = *rt.EndDate
	}
	if err := tx.QueryRowContext(ctx, query, rt.EquipmentID, rt.ClientID, rt.SiteLocation, rt.StartDate, endDate, rt.MonthlyRateCents, rt.Notes, rt.Status, now, now).Scan(&rt.ID); err != nil {
		return mapError(err)
	}

	deploy := `UPDATE equipment SET status=$1, current_location=$2, updated_on=$3 WHERE id=$4`
	if _, err := tx.ExecContext(ctx, deploy, domain.EquipmentStatusDeployed, rt.SiteLocation, now, rt.EquipmentID); err != nil {
		return mapError(err)
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals r WHERE r.id = $1`
	var endDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.EquipmentID, &rt.ClientID, &rt.SiteLocation, &rt.StartDate, &endDate, &rt.MonthlyRateCents, &rt.Notes, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	if endDate.Valid {
		t := endDate.Time
		rt.EndDate = &t
	}
	return rt, nil
}

func (r *rentalRepository) GetDetail(ctx context.Context, id int64) (*domain.RentalDetail, error) {
	d := &domain.RentalDetail{}
	query := `SELECT ` + rentalColumns + `, c.name, e.gondola_number, e.motor_serial_number
	          FROM rentals r
	          JOIN clients c ON r.client_id = c.id
	          JOIN equipment e ON r.equipment_id = e.id
	          WHERE r.id = $1`
	var endDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.EquipmentID, &d.ClientID, &d.SiteLocation, &d.StartDate, &endDate, &d.MonthlyRateCents, &d.Notes, &d.Status, &d.CreatedOn, &d.UpdatedOn,
		&d.ClientName, &d.GondolaNumber, &d.MotorSerialNumber)
	if err != nil {
		return nil, mapError(err)
	}
	if endDate.Valid {
		t := endDate.Time
		d.EndDate = &t
	}
	return d, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalDetail, error) {
	query := `SELECT ` + rentalColumns + `, c.name, e.gondola_number, e.motor_serial_number
	          FROM rentals r
	          JOIN clients c ON r.client_id = c.id
	          JOIN equipment e ON r.equipment_id = e.id
	          ORDER BY CASE WHEN r.status = 'active' THEN 1 ELSE 2 END, r.start_date DESC`

	var rentals []domain.RentalDetail
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		rentals = rentals[:0]
		for rows.Next() {
			var d domain.RentalDetail
			var endDate sql.NullTime
			if err := rows.Scan(&d.ID, &d.EquipmentID, &d.ClientID, &d.SiteLocation, &d.StartDate, &endDate, &d.MonthlyRateCents, &d.Notes, &d.Status, &d.CreatedOn, &d.UpdatedOn,
				&d.ClientName, &d.GondolaNumber, &d.MotorSerialNumber); err != nil {
				return err
			}
			if endDate.Valid {
				t := endDate.Time
				d.EndDate = &t
			}
			rentals = append(rentals, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET site_location=$1, start_date=$2, end_date=$3, monthly_rate_cents=$4, notes=$5, status=$6, updated_on=$7 WHERE id=$8`
	var endDate interface{}
	if rt.EndDate != nil {
		endDate = *rt.EndDate
	}
	res, err := r.db.ExecContext(ctx, query, rt.SiteLocation, rt.StartDate, endDate, rt.MonthlyRateCents, rt.Notes, rt.Status, time.Now(), rt.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) UpdateSiteLocation(ctx context.Context, id int64, siteLocation string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET site_location=$1, updated_on=$2 WHERE id=$3`, siteLocation, time.Now(), id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) UpdateEndDate(ctx context.Context, id int64, endDate time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET end_date=$1, updated_on=$2 WHERE id=$3`, endDate, time.Now(), id)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, mapError(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
