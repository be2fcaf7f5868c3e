package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

type EquipmentHandler struct {
	equipment service.EquipmentService
}

func NewEquipmentHandler(equipment service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipment: equipment}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", domain.ErrValidation)
	}
	return id, nil
}

// equipmentForm reads an equipment record plus its document tuples from
// either a multipart form or a JSON body.
func equipmentForm(r *http.Request) (*domain.Equipment, []service.DocumentInput, error) {
	if !isMultipart(r) {
		var e domain.Equipment
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			return nil, nil, fmt.Errorf("invalid request body: %w", domain.ErrValidation)
		}
		return &e, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", domain.ErrValidation)
	}
	e := &domain.Equipment{
		GondolaNumber:     r.FormValue("gondola_number"),
		MotorSerialNumber: r.FormValue("motor_serial_number"),
		EquipmentType:     r.FormValue("equipment_type"),
		Status:            domain.EquipmentStatus(r.FormValue("status")),
		CurrentLocation:   r.FormValue("current_location"),
		Notes:             r.FormValue("notes"),
	}
	docs, err := parseDocumentInputs(r.MultipartForm)
	if err != nil {
		return nil, nil, err
	}
	return e, docs, nil
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	e, docs, err := equipmentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.equipment.CreateEquipment(r.Context(), e, docs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	e, docs, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*domain.Equipment
		Documents []domain.DocumentDetail `json:"documents"`
	}{e, docs})
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.equipment.ListEquipment(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	e, docs, err := equipmentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	e.ID = id
	if err := h.equipment.UpdateEquipment(r.Context(), e, docs); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
