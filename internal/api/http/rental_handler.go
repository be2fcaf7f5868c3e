package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type rentalCreateBody struct {
	EquipmentID      int64  `json:"equipment_id"`
	ClientID         int64  `json:"client_id"`
	SiteLocation     string `json:"site_location"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	MonthlyRateCents int64  `json:"monthly_rate_cents"`
	Notes            string `json:"notes"`
}

func (b rentalCreateBody) toRental() (*domain.Rental, error) {
	start, err := parseDate(b.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(b.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Rental{
		EquipmentID:      b.EquipmentID,
		ClientID:         b.ClientID,
		SiteLocation:     b.SiteLocation,
		StartDate:        start,
		EndDate:          end,
		MonthlyRateCents: b.MonthlyRateCents,
		Notes:            b.Notes,
	}, nil
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var (
		body rentalCreateBody
		docs []service.DocumentInput
	)
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, fmt.Errorf("invalid multipart form: %w", domain.ErrValidation))
			return
		}
		body.EquipmentID, _ = strconv.ParseInt(r.FormValue("equipment_id"), 10, 64)
		body.ClientID, _ = strconv.ParseInt(r.FormValue("client_id"), 10, 64)
		body.SiteLocation = r.FormValue("site_location")
		body.StartDate = r.FormValue("start_date")
		body.EndDate = r.FormValue("end_date")
		body.MonthlyRateCents, _ = strconv.ParseInt(r.FormValue("monthly_rate_cents"), 10, 64)
		body.Notes = r.FormValue("notes")

		var err error
		docs, err = parseDocumentInputs(r.MultipartForm)
		if err != nil {
			writeError(w, err)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}

	rental, err := body.toRental()
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.rentals.CreateRental(r.Context(), rental, docs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RentalHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}
	deleted, err := h.rentals.DeleteRentals(r.Context(), body.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
