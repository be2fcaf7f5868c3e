package domain

import "time"

type DOType string

const (
	DOTypeDeployment DOType = "deployment"
	DOTypeRental     DOType = "rental"
	DOTypeShifting   DOType = "shifting"
	DOTypeOffhire    DOType = "offhire"
)

// ValidDOType reports whether t is one of the four dispatch event types.
func ValidDOType(t DOType) bool {
	switch t {
	case DOTypeDeployment, DOTypeRental, DOTypeShifting, DOTypeOffhire:
		return true
	}
	return false
}

type DeliveryOrder struct {
	ID          int64     `json:"id"`
	RentalID    int64     `json:"rental_id"`
	DONumber    string    `json:"do_number"`
	DODate      time.Time `json:"do_date"`
	DOType      DOType    `json:"do_type"`
	Notes       string    `json:"notes"`
	DocumentIDs []int64   `json:"documents"`
	CreatedOn   time.Time `json:"created_on"`
}

// DeliveryOrderDetail is the joined row used by list and detail views.
type DeliveryOrderDetail struct {
	DeliveryOrder
	SiteLocation  string     `json:"site_location"`
	ClientName    string     `json:"client_name"`
	GondolaNumber string     `json:"gondola_number"`
	Documents     []Document `json:"document_details,omitempty"`
}

// StatusTransition describes the side effects a delivery order has on the
// rental it references and on that rental's equipment. Nil fields mean no
// change.
type StatusTransition struct {
	EquipmentStatus *EquipmentStatus
	RentalStatus    *RentalStatus
	// RentalEndsOnDODate sets the rental end_date to the DO date.
	RentalEndsOnDODate bool
}

// IsNoop reports whether the transition changes nothing.
func (t StatusTransition) IsNoop() bool {
	return t.EquipmentStatus == nil && t.RentalStatus == nil && !t.RentalEndsOnDODate
}

// TransitionFor returns the status side effects for a delivery order type.
// A deployment puts equipment on site; an offhire ends the rental and frees
// the equipment; rental continuations and shifts change nothing.
func TransitionFor(doType DOType) StatusTransition {
	switch doType {
	case DOTypeDeployment:
		s := EquipmentStatusDeployed
		return StatusTransition{EquipmentStatus: &s}
	case DOTypeOffhire:
		es := EquipmentStatusAvailable
		rs := RentalStatusCompleted
		return StatusTransition{EquipmentStatus: &es, RentalStatus: &rs, RentalEndsOnDODate: true}
	default:
		return StatusTransition{}
	}
}
