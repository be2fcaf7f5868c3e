package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/sethvargo/go-retry"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.ClientRepository
	repository.RentalRepository
	repository.DeliveryOrderRepository
	repository.DocumentRepository
	repository.InspectionRepository
	repository.ShiftRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		EquipmentRepository:     NewEquipmentRepository(db),
		ClientRepository:        NewClientRepository(db),
		RentalRepository:        NewRentalRepository(db),
		DeliveryOrderRepository: NewDeliveryOrderRepository(db),
		DocumentRepository:      NewDocumentRepository(db),
		InspectionRepository:    NewInspectionRepository(db),
		ShiftRepository:         NewShiftRepository(db),
	}
}

// mapError translates driver errors into the domain error taxonomy. The
// unique-violation mapping is the authoritative duplicate signal; there is
// no pre-check SELECT anywhere. A foreign-key violation means the caller
// referenced a row that does not exist, so it maps to not-found.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", pqErr.Constraint, domain.ErrDuplicate)
		case "23503":
			return fmt.Errorf("%s: %w", pqErr.Constraint, domain.ErrNotFound)
		}
	}
	return err
}

// withRetry runs op up to three times with exponential backoff when the
// backend reports a transient condition. Anything else fails immediately.
func withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "53300", "57P03", "08006", "08000":
			return true
		}
	}
	return strings.Contains(err.Error(), "rate limit")
}
