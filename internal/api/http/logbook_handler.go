package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

type LogbookHandler struct {
	logbook service.LogbookService
}

func NewLogbookHandler(logbook service.LogbookService) *LogbookHandler {
	return &LogbookHandler{logbook: logbook}
}

type inspectionBody struct {
	RentalID            int64  `json:"rental_id"`
	EquipmentID         int64  `json:"equipment_id"`
	InspectionDate      string `json:"inspection_date"`
	InspectionType      string `json:"inspection_type"`
	InspectorName       string `json:"inspector_name"`
	ClientSafetyOfficer string `json:"client_safety_officer"`
	IsEndorsed          bool   `json:"is_endorsed"`
	IsChargeable        bool   `json:"is_chargeable"`
	ChargeAmountCents   int64  `json:"charge_amount_cents"`
	Notes               string `json:"notes"`
}

func (h *LogbookHandler) CreateInspection(w http.ResponseWriter, r *http.Request) {
	var body inspectionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}
	date, err := parseDate(body.InspectionDate)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.logbook.RecordInspection(r.Context(), &domain.Inspection{
		RentalID:            body.RentalID,
		EquipmentID:         body.EquipmentID,
		InspectionDate:      date,
		InspectionType:      body.InspectionType,
		InspectorName:       body.InspectorName,
		ClientSafetyOfficer: body.ClientSafetyOfficer,
		IsEndorsed:          body.IsEndorsed,
		IsChargeable:        body.IsChargeable,
		ChargeAmountCents:   body.ChargeAmountCents,
		Notes:               body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *LogbookHandler) ListInspections(w http.ResponseWriter, r *http.Request) {
	list, err := h.logbook.ListInspections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type shiftBody struct {
	RentalID    int64  `json:"rental_id"`
	EquipmentID int64  `json:"equipment_id"`
	ShiftDate   string `json:"shift_date"`
	Bay         string `json:"bay"`
	Elevation   string `json:"elevation"`
	Block       string `json:"block"`
	Floor       string `json:"floor"`
	COSIssued   bool   `json:"cos_issued"`
	Notes       string `json:"notes"`
}

func (h *LogbookHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var body shiftBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}
	date, err := parseDate(body.ShiftDate)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.logbook.RecordShift(r.Context(), &domain.Shift{
		RentalID:    body.RentalID,
		EquipmentID: body.EquipmentID,
		ShiftDate:   date,
		Bay:         body.Bay,
		Elevation:   body.Elevation,
		Block:       body.Block,
		Floor:       body.Floor,
		COSIssued:   body.COSIssued,
		Notes:       body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *LogbookHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	list, err := h.logbook.ListShifts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
