package jobs

import (
	"context"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/logger"
)

// ScanDocumentExpiry sweeps every compliance document, classifies it against
// today's date and emails a reminder listing the expiring and expired ones.
func (jr *JobRunner) ScanDocumentExpiry() {
	jr.runWithRecovery("ScanDocumentExpiry", func() {
		ctx := context.Background()

		docs, err := jr.services.Document.ListDocuments(ctx, nil)
		if err != nil {
			logger.Error("Failed to list documents for expiry scan", "error", err)
			return
		}

		var expiring, expired []domain.DocumentDetail
		for _, d := range docs {
			switch d.Status {
			case domain.DocumentStatusExpiring:
				expiring = append(expiring, d)
			case domain.DocumentStatusExpired:
				expired = append(expired, d)
			}
		}

		logger.Info("Document expiry scan finished",
			"total", len(docs), "expiring", len(expiring), "expired", len(expired))

		if len(expiring) == 0 && len(expired) == 0 {
			return
		}
		recipient := jr.config.Scheduler.ReportRecipient
		if recipient == "" {
			logger.Warn("No report recipient configured, skipping expiry reminder email")
			return
		}
		if err := jr.services.Email.SendExpiryReminder(ctx, recipient, expiring, expired); err != nil {
			logger.Error("Failed to send expiry reminder email", "error", err)
		}
	})
}
