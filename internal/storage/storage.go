package storage

import (
	"context"
	"database/sql"

	"gondola-rental-backend/internal/config"
)

// Ref identifies a stored blob together with the metadata needed to serve
// it back: downloads echo FileName in Content-Disposition and MimeType in
// Content-Type.
type Ref struct {
	Key      string `json:"key"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

// BlobStore abstracts where document payloads live. Historically the data
// sat either inline in the documents row or as loose files under an uploads
// directory; both strategies now live behind this interface with a single
// storage key recorded on the document row.
type BlobStore interface {
	Store(ctx context.Context, payload []byte, fileName, mimeType string) (Ref, error)
	Retrieve(ctx context.Context, ref Ref) ([]byte, error)
	Delete(ctx context.Context, ref Ref) error
}

// New selects a blob store implementation from configuration. The database
// store is the default: it keeps payloads transactional with the rest of
// the record.
func New(cfg config.StorageConfig, db *sql.DB) (BlobStore, error) {
	if cfg.Type == "filesystem" {
		return NewFilesystemStore(cfg.UploadDir)
	}
	return NewDatabaseStore(db), nil
}
