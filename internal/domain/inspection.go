package domain

import "time"

// Inspection is an append-only site inspection record. It has no effect on
// equipment or rental status.
type Inspection struct {
	ID                  int64     `json:"id"`
	RentalID            int64     `json:"rental_id"`
	EquipmentID         int64     `json:"equipment_id"`
	InspectionDate      time.Time `json:"inspection_date"`
	InspectionType      string    `json:"inspection_type"`
	InspectorName       string    `json:"inspector_name"`
	ClientSafetyOfficer string    `json:"client_safety_officer"`
	IsEndorsed          bool      `json:"is_endorsed"`
	IsChargeable        bool      `json:"is_chargeable"`
	ChargeAmountCents   int64     `json:"charge_amount_cents"`
	Notes               string    `json:"notes"`
}

// InspectionDetail carries joined labels for list views.
type InspectionDetail struct {
	Inspection
	GondolaNumber string `json:"gondola_number"`
	ClientName    string `json:"client_name"`
	SiteLocation  string `json:"site_location"`
}
