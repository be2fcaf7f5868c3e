package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/logger"
	"gondola-rental-backend/internal/repository"
)

type deliveryOrderRepository struct {
	db *sql.DB
}

func NewDeliveryOrderRepository(db *sql.DB) repository.DeliveryOrderRepository {
	return &deliveryOrderRepository{db: db}
}

func (r *deliveryOrderRepository) CreateWithTransition(ctx context.Context, do *domain.DeliveryOrder, tr domain.StatusTransition, endDateOverride *time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var docs interface{}
	if len(do.DocumentIDs) > 0 {
		b, err := json.Marshal(do.DocumentIDs)
		if err != nil {
			return err
		}
		docs = b
	}

	query := `INSERT INTO delivery_orders (rental_id, do_number, do_date, do_type, notes, documents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, do.RentalID, do.DONumber, do.DODate, do.DOType, do.Notes, docs, time.Now()).Scan(&do.ID); err != nil {
		return mapError(err)
	}

	if endDateOverride != nil && !tr.RentalEndsOnDODate {
		if _, err := tx.ExecContext(ctx, `UPDATE rentals SET end_date=$1, updated_on=$2 WHERE id=$3`, *endDateOverride, time.Now(), do.RentalID); err != nil {
			return mapError(err)
		}
	}

	if tr.RentalStatus != nil {
		var (
			res sql.Result
			err error
		)
		if tr.RentalEndsOnDODate {
			res, err = tx.ExecContext(ctx, `UPDATE rentals SET status=$1, end_date=$2, updated_on=$3 WHERE id=$4`, *tr.RentalStatus, do.DODate, time.Now(), do.RentalID)
		} else {
			res, err = tx.ExecContext(ctx, `UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3`, *tr.RentalStatus, time.Now(), do.RentalID)
		}
		if err != nil {
			return mapError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// Rental row is gone; skip the sync rather than fail the DO.
			logger.Warn("status sync skipped: rental not found", "rental_id", do.RentalID, "do_number", do.DONumber)
		}
	}

	if tr.EquipmentStatus != nil {
		res, err := tx.ExecContext(ctx, `UPDATE equipment e SET status=$1, updated_on=$2 FROM rentals r WHERE r.id=$3 AND e.id=r.equipment_id`,
			*tr.EquipmentStatus, time.Now(), do.RentalID)
		if err != nil {
			return mapError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			logger.Warn("status sync skipped: equipment not found via rental", "rental_id", do.RentalID, "do_number", do.DONumber)
		}
	}

	return tx.Commit()
}

const deliveryOrderDetailQuery = `SELECT d.id, d.rental_id, d.do_number, d.do_date, d.do_type, d.notes, d.documents, d.created_on,
	       r.site_location, c.name, e.gondola_number
	FROM delivery_orders d
	JOIN rentals r ON d.rental_id = r.id
	JOIN clients c ON r.client_id = c.id
	JOIN equipment e ON r.equipment_id = e.id`

func (r *deliveryOrderRepository) GetByID(ctx context.Context, id int64) (*domain.DeliveryOrderDetail, error) {
	d := &domain.DeliveryOrderDetail{}
	var docs []byte
	err := r.db.QueryRowContext(ctx, deliveryOrderDetailQuery+` WHERE d.id = $1`, id).Scan(
		&d.ID, &d.RentalID, &d.DONumber, &d.DODate, &d.DOType, &d.Notes, &docs, &d.CreatedOn,
		&d.SiteLocation, &d.ClientName, &d.GondolaNumber)
	if err != nil {
		return nil, mapError(err)
	}
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &d.DocumentIDs); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (r *deliveryOrderRepository) List(ctx context.Context) ([]domain.DeliveryOrderDetail, error) {
	query := deliveryOrderDetailQuery + ` ORDER BY d.do_date DESC`

	var orders []domain.DeliveryOrderDetail
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			var d domain.DeliveryOrderDetail
			var docs []byte
			if err := rows.Scan(&d.ID, &d.RentalID, &d.DONumber, &d.DODate, &d.DOType, &d.Notes, &docs, &d.CreatedOn,
				&d.SiteLocation, &d.ClientName, &d.GondolaNumber); err != nil {
				return err
			}
			if len(docs) > 0 {
				if err := json.Unmarshal(docs, &d.DocumentIDs); err != nil {
					return err
				}
			}
			orders = append(orders, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update rewrites the editable fields only. The do_type is immutable after
// creation and the status transition is never re-evaluated here.
func (r *deliveryOrderRepository) Update(ctx context.Context, do *domain.DeliveryOrder) error {
	var docs interface{}
	if len(do.DocumentIDs) > 0 {
		b, err := json.Marshal(do.DocumentIDs)
		if err != nil {
			return err
		}
		docs = b
	}
	query := `UPDATE delivery_orders SET do_date=$1, notes=$2, documents=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, do.DODate, do.Notes, docs, do.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
