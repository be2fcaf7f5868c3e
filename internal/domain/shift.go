package domain

import "time"

// Shift is an append-only relocation record for a gondola within a site.
type Shift struct {
	ID          int64     `json:"id"`
	RentalID    int64     `json:"rental_id"`
	EquipmentID int64     `json:"equipment_id"`
	ShiftDate   time.Time `json:"shift_date"`
	Bay         string    `json:"bay"`
	Elevation   string    `json:"elevation"`
	Block       string    `json:"block"`
	Floor       string    `json:"floor"`
	COSIssued   bool      `json:"cos_issued"`
	Notes       string    `json:"notes"`
}

// ShiftDetail carries joined labels for list views.
type ShiftDetail struct {
	Shift
	GondolaNumber string `json:"gondola_number"`
	SiteLocation  string `json:"site_location"`
}
