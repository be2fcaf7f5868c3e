package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"gondola-rental-backend/internal/domain"
)

// FilesystemStore keeps blobs as loose files under an uploads directory,
// one file per storage key.
type FilesystemStore struct {
	uploadsDir string
}

func NewFilesystemStore(uploadsDir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &FilesystemStore{uploadsDir: uploadsDir}, nil
}

func (s *FilesystemStore) Store(ctx context.Context, payload []byte, fileName, mimeType string) (Ref, error) {
	key := uuid.New().String()
	if err := os.WriteFile(s.path(key), payload, 0644); err != nil {
		return Ref{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return Ref{Key: key, FileName: fileName, MimeType: mimeType}, nil
}

func (s *FilesystemStore) Retrieve(ctx context.Context, ref Ref) ([]byte, error) {
	data, err := os.ReadFile(s.path(ref.Key))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return data, nil
}

func (s *FilesystemStore) Delete(ctx context.Context, ref Ref) error {
	err := os.Remove(s.path(ref.Key))
	if os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

// path resolves a key inside the uploads directory. Keys are generated
// UUIDs, never caller input.
func (s *FilesystemStore) path(key string) string {
	return filepath.Join(s.uploadsDir, filepath.Base(key))
}
