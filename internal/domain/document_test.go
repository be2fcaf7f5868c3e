package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpiry(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("NilExpiryIsValid", func(t *testing.T) {
		assert.Equal(t, DocumentStatusValid, ClassifyExpiry(nil, today))
	})

	t.Run("PastDateIsExpired", func(t *testing.T) {
		assert.Equal(t, DocumentStatusExpired, ClassifyExpiry(ptr(today.AddDate(0, 0, -1)), today))
		assert.Equal(t, DocumentStatusExpired, ClassifyExpiry(ptr(today.AddDate(-1, 0, 0)), today))
	})

	t.Run("TodayIsExpiring", func(t *testing.T) {
		assert.Equal(t, DocumentStatusExpiring, ClassifyExpiry(ptr(today), today))
	})

	t.Run("WithinWindowIsExpiring", func(t *testing.T) {
		assert.Equal(t, DocumentStatusExpiring, ClassifyExpiry(ptr(today.AddDate(0, 0, 10)), today))
		assert.Equal(t, DocumentStatusExpiring, ClassifyExpiry(ptr(today.AddDate(0, 0, 29)), today))
	})

	t.Run("WindowUpperBoundIsExclusive", func(t *testing.T) {
		assert.Equal(t, DocumentStatusValid, ClassifyExpiry(ptr(today.AddDate(0, 0, 30)), today))
		assert.Equal(t, DocumentStatusValid, ClassifyExpiry(ptr(today.AddDate(1, 0, 0)), today))
	})

	t.Run("TimeOfDayIsIgnored", func(t *testing.T) {
		// Expiry at 00:01 today still counts as expiring even when checked at 23:59.
		late := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
		early := time.Date(2024, 6, 15, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, DocumentStatusExpiring, ClassifyExpiry(&early, late))
	})
}

func TestClassifyExpiry_Exhaustive(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for days := -40; days <= 70; days++ {
		e := today.AddDate(0, 0, days)
		got := ClassifyExpiry(&e, today)
		switch {
		case days < 0:
			assert.Equal(t, DocumentStatusExpired, got, "days=%d", days)
		case days < ExpiringWindowDays:
			assert.Equal(t, DocumentStatusExpiring, got, "days=%d", days)
		default:
			assert.Equal(t, DocumentStatusValid, got, "days=%d", days)
		}
	}
}
