package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gondola-rental-backend/internal/domain"
)

// DatabaseStore keeps blobs in a bytea table keyed by UUID.
type DatabaseStore struct {
	db *sql.DB
}

func NewDatabaseStore(db *sql.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Store(ctx context.Context, payload []byte, fileName, mimeType string) (Ref, error) {
	key := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `INSERT INTO document_files (key, data) VALUES ($1, $2)`, key, payload)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return Ref{Key: key, FileName: fileName, MimeType: mimeType}, nil
}

func (s *DatabaseStore) Retrieve(ctx context.Context, ref Ref) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM document_files WHERE key = $1`, ref.Key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func (s *DatabaseStore) Delete(ctx context.Context, ref Ref) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM document_files WHERE key = $1`, ref.Key)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
