package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusDeployed    EquipmentStatus = "deployed"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

// ValidEquipmentStatus reports whether s is a known equipment status.
func ValidEquipmentStatus(s EquipmentStatus) bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusDeployed, EquipmentStatusMaintenance:
		return true
	}
	return false
}

type Equipment struct {
	ID                int64           `json:"id"`
	GondolaNumber     string          `json:"gondola_number"`
	MotorSerialNumber string          `json:"motor_serial_number"`
	EquipmentType     string          `json:"equipment_type"`
	Status            EquipmentStatus `json:"status"`
	CurrentLocation   string          `json:"current_location"`
	Notes             string          `json:"notes"`
	CreatedOn         time.Time       `json:"created_on"`
	UpdatedOn         time.Time       `json:"updated_on"`
}
