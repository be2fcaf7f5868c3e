package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

type DeliveryOrderHandler struct {
	orders service.DeliveryOrderService
}

func NewDeliveryOrderHandler(orders service.DeliveryOrderService) *DeliveryOrderHandler {
	return &DeliveryOrderHandler{orders: orders}
}

type deliveryOrderCreateBody struct {
	RentalID    int64   `json:"rental_id"`
	DONumber    string  `json:"do_number"`
	DODate      string  `json:"do_date"`
	DOType      string  `json:"do_type"`
	Notes       string  `json:"notes"`
	DocumentIDs []int64 `json:"documents"`
	EndDate     string  `json:"end_date"`
}

func (h *DeliveryOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var (
		body  deliveryOrderCreateBody
		files []service.FileUpload
	)
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, fmt.Errorf("invalid multipart form: %w", domain.ErrValidation))
			return
		}
		body.RentalID, _ = strconv.ParseInt(r.FormValue("rental_id"), 10, 64)
		body.DONumber = r.FormValue("do_number")
		body.DODate = r.FormValue("do_date")
		body.DOType = r.FormValue("do_type")
		body.Notes = r.FormValue("notes")
		body.EndDate = r.FormValue("end_date")

		var err error
		files, err = parseFileUploads(r.MultipartForm)
		if err != nil {
			writeError(w, err)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}

	doDate, err := parseDate(body.DODate)
	if err != nil {
		writeError(w, err)
		return
	}
	endDate, err := parseOptionalDate(body.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	created, err := h.orders.CreateDeliveryOrder(r.Context(), service.DeliveryOrderInput{
		RentalID:    body.RentalID,
		DONumber:    body.DONumber,
		DODate:      doDate,
		DOType:      domain.DOType(body.DOType),
		Notes:       body.Notes,
		DocumentIDs: body.DocumentIDs,
		EndDate:     endDate,
		Files:       files,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *DeliveryOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.orders.GetDeliveryOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *DeliveryOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.orders.ListDeliveryOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *DeliveryOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var (
		update service.DeliveryOrderUpdate
		body   struct {
			DODate       string  `json:"do_date"`
			Notes        string  `json:"notes"`
			DocumentIDs  []int64 `json:"documents"`
			SiteLocation *string `json:"site_location"`
			EndDate      string  `json:"end_date"`
		}
	)
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, fmt.Errorf("invalid multipart form: %w", domain.ErrValidation))
			return
		}
		body.DODate = r.FormValue("do_date")
		body.Notes = r.FormValue("notes")
		body.EndDate = r.FormValue("end_date")
		if v := r.FormValue("site_location"); v != "" {
			body.SiteLocation = &v
		}
		update.Files, err = parseFileUploads(r.MultipartForm)
		if err != nil {
			writeError(w, err)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", domain.ErrValidation))
		return
	}

	if body.DODate != "" {
		doDate, err := parseDate(body.DODate)
		if err != nil {
			writeError(w, err)
			return
		}
		update.DODate = doDate
	}
	endDate, err := parseOptionalDate(body.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	update.Notes = body.Notes
	update.DocumentIDs = body.DocumentIDs
	update.SiteLocation = body.SiteLocation
	update.EndDate = endDate

	if err := h.orders.UpdateDeliveryOrder(r.Context(), id, update); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
