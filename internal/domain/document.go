package domain

import "time"

type DocumentStatus string

const (
	DocumentStatusValid    DocumentStatus = "valid"
	DocumentStatusExpiring DocumentStatus = "expiring"
	DocumentStatusExpired  DocumentStatus = "expired"
)

// ExpiringWindowDays is the lookahead used to flag documents nearing expiry
// for renewal action.
const ExpiringWindowDays = 30

type Document struct {
	ID           int64          `json:"id"`
	EquipmentID  *int64         `json:"equipment_id,omitempty"`
	RentalID     *int64         `json:"rental_id,omitempty"`
	DocumentType string         `json:"document_type"`
	IssueDate    time.Time      `json:"issue_date"`
	ExpiryDate   *time.Time     `json:"expiry_date,omitempty"`
	Notes        string         `json:"notes"`
	FileName     string         `json:"file_name"`
	MimeType     string         `json:"mime_type"`
	StorageKey   string         `json:"-"`
	Status       DocumentStatus `json:"status,omitempty"`
	CreatedOn    time.Time      `json:"created_on"`
}

// DocumentDetail carries the owning equipment label for list views.
type DocumentDetail struct {
	Document
	GondolaNumber string `json:"gondola_number,omitempty"`
}

// ClassifyExpiry derives a document's renewal status from its expiry date.
// Dates are compared at day granularity: a document expiring today is
// already in the expiring window, one expiring exactly ExpiringWindowDays
// from today is still valid.
func ClassifyExpiry(expiry *time.Time, today time.Time) DocumentStatus {
	if expiry == nil {
		return DocumentStatusValid
	}
	t := dateOnly(today)
	e := dateOnly(*expiry)
	days := int(e.Sub(t).Hours() / 24)
	switch {
	case days < 0:
		return DocumentStatusExpired
	case days < ExpiringWindowDays:
		return DocumentStatusExpiring
	default:
		return DocumentStatusValid
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
