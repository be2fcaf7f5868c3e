package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

type Rental struct {
	ID               int64        `json:"id"`
	EquipmentID      int64        `json:"equipment_id"`
	ClientID         int64        `json:"client_id"`
	SiteLocation     string       `json:"site_location"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	MonthlyRateCents int64        `json:"monthly_rate_cents"`
	Notes            string       `json:"notes"`
	Status           RentalStatus `json:"status"`
	CreatedOn        time.Time    `json:"created_on"`
	UpdatedOn        time.Time    `json:"updated_on"`
}

// RentalDetail is the joined row used by list and detail views.
type RentalDetail struct {
	Rental
	ClientName        string     `json:"client_name"`
	GondolaNumber     string     `json:"gondola_number"`
	MotorSerialNumber string     `json:"motor_serial_number"`
	Documents         []Document `json:"documents"`
}
