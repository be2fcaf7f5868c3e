package http

import (
	"fmt"
	"net/http"
	"strconv"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

type DocumentHandler struct {
	documents service.DocumentService
}

func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// documentForm reads a single document from a multipart form. Document
// create and update always carry a form body because of the optional file.
func documentForm(r *http.Request) (*domain.Document, *service.FileUpload, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", domain.ErrValidation)
	}

	d := &domain.Document{
		DocumentType: r.FormValue("document_type"),
		Notes:        r.FormValue("notes"),
	}
	if v := r.FormValue("equipment_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid equipment_id: %w", domain.ErrValidation)
		}
		d.EquipmentID = &id
	}
	if v := r.FormValue("rental_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid rental_id: %w", domain.ErrValidation)
		}
		d.RentalID = &id
	}
	if v := r.FormValue("issue_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, nil, err
		}
		d.IssueDate = t
	}
	expiry, err := parseOptionalDate(r.FormValue("expiry_date"))
	if err != nil {
		return nil, nil, err
	}
	d.ExpiryDate = expiry

	var upload *service.FileUpload
	if headers := r.MultipartForm.File["file"]; len(headers) > 0 {
		upload, err = readUpload(headers[0])
		if err != nil {
			return nil, nil, err
		}
	}
	return d, upload, nil
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	d, upload, err := documentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	created, err := h.documents.CreateDocument(r.Context(), d, upload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := h.documents.GetDocument(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// List returns all documents, optionally filtered to one equipment unit via
// the equipment_id query parameter.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	var equipmentID *int64
	if v := r.URL.Query().Get("equipment_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, fmt.Errorf("invalid equipment_id: %w", domain.ErrValidation))
			return
		}
		equipmentID = &id
	}
	list, err := h.documents.ListDocuments(r.Context(), equipmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d, upload, err := documentForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	in := service.DocumentInput{
		DocumentType: d.DocumentType,
		IssueDate:    d.IssueDate,
		ExpiryDate:   d.ExpiryDate,
		Notes:        d.Notes,
		File:         upload,
	}
	if err := h.documents.UpdateDocument(r.Context(), id, in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// DownloadFile streams the stored payload back with its original file name
// and mime type.
func (h *DocumentHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	data, fileName, mimeType, err := h.documents.GetDocumentFile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
