package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, contact_person, email, phone, address)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Name, c.ContactPerson, c.Email, c.Phone, c.Address).Scan(&c.ID)
	return mapError(err)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, contact_person, email, phone, address FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &c.Address)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, name, contact_person, email, phone, address FROM clients ORDER BY name`

	var clients []domain.Client
	err := withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		clients = clients[:0]
		for rows.Next() {
			var c domain.Client
			if err := rows.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &c.Address); err != nil {
				return err
			}
			clients = append(clients, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, contact_person=$2, email=$3, phone=$4, address=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.ContactPerson, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return mapError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, mapError(err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
