package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `d.id, d.equipment_id, d.rental_id, d.document_type, d.issue_date, d.expiry_date, d.notes, d.file_name, d.mime_type, d.storage_key, d.created_on`

func scanDocument(d *domain.Document, scan func(dest ...interface{}) error) error {
	var equipmentID, rentalID sql.NullInt64
	var expiry sql.NullTime
	if err := scan(&d.ID, &equipmentID, &rentalID, &d.DocumentType, &d.IssueDate, &expiry, &d.Notes, &d.FileName, &d.MimeType, &d.StorageKey, &d.CreatedOn); err != nil {
		return err
	}
	if equipmentID.Valid {
		d.EquipmentID = &equipmentID.Int64
	}
	if rentalID.Valid {
		d.RentalID = &rentalID.Int64
	}
	if expiry.Valid {
		t := expiry.Time
		d.ExpiryDate = &t
	}
	return nil
}

func (r *documentRepository) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (equipment_id, rental_id, document_type, issue_date, expiry_date, notes, file_name, mime_type, storage_key, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var expiry interface{}
	if d.ExpiryDate != nil {
		expiry = *d.ExpiryDate
	}
	err := r.db.QueryRowContext(ctx, query, d.EquipmentID, d.RentalID, d.DocumentType, d.IssueDate, expiry, d.Notes, d.FileName, d.MimeType, d.StorageKey, time.Now()).Scan(&d.ID)
	return mapError(err)
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	d := &domain.Document{}
	query := `SELECT ` + documentColumns + ` FROM documents d WHERE d.id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	if err := scanDocument(d, row.Scan); err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *documentRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + documentColumns + ` FROM documents d WHERE d.id = ANY($1)`
	return r.queryDocuments(ctx, query, pq.Array(ids))
}

func (r *documentRepository) ListForRentalIDs(ctx context.Context, rentalIDs []int64) ([]domain.Document, error) {
	if len(rentalIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + documentColumns + ` FROM documents d WHERE d.rental_id = ANY($1)`
	return r.queryDocuments(ctx, query, pq.Array(rentalIDs))
}

func (r *documentRepository) queryDocuments(ctx context.Context, query string, args ...interface{}) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := scanDocument(&d, rows.Scan); err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (r *documentRepository) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.DocumentDetail, error) {
	query := `SELECT ` + documentColumns + `, e.gondola_number
	          FROM documents d
	          JOIN equipment e ON d.equipment_id = e.id
	          WHERE d.equipment_id = $1
	          ORDER BY d.document_type, d.expiry_date DESC`
	return r.queryDocumentDetails(ctx, query, equipmentID)
}

func (r *documentRepository) ListAll(ctx context.Context) ([]domain.DocumentDetail, error) {
	query := `SELECT ` + documentColumns + `, COALESCE(e.gondola_number, '')
	          FROM documents d
	          LEFT JOIN equipment e ON d.equipment_id = e.id
	          ORDER BY d.document_type, d.expiry_date DESC`
	return r.queryDocumentDetails(ctx, query)
}

func (r *documentRepository) queryDocumentDetails(ctx context.Context, query string, args ...interface{}) ([]domain.DocumentDetail, error) {
	var documents []domain.DocumentDetail
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		documents = documents[:0]
		for rows.Next() {
			var d domain.DocumentDetail
			var equipmentID, rentalID sql.NullInt64
			var expiry sql.NullTime
			if err := rows.Scan(&d.ID, &equipmentID, &rentalID, &d.DocumentType, &d.IssueDate, &expiry, &d.Notes, &d.FileName, &d.MimeType, &d.StorageKey, &d.CreatedOn, &d.GondolaNumber); err != nil {
				return err
			}
			if equipmentID.Valid {
				d.EquipmentID = &equipmentID.Int64
			}
			if rentalID.Valid {
				d.RentalID = &rentalID.Int64
			}
			if expiry.Valid {
				t := expiry.Time
				d.ExpiryDate = &t
			}
			documents = append(documents, d)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) Update(ctx context.Context, d *domain.Document) error {
	query := `UPDATE documents SET document_type=$1, issue_date=$2, expiry_date=$3, notes=$4, file_name=$5, mime_type=$6, storage_key=$7 WHERE id=$8`
	var expiry interface{}
	if d.ExpiryDate != nil {
		expiry = *d.ExpiryDate
	}
	res, err := r.db.ExecContext(ctx, query, d.DocumentType, d.IssueDate, expiry, d.Notes, d.FileName, d.MimeType, d.StorageKey, d.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
