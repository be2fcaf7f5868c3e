package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gondola-rental-backend/internal/domain"
	"gondola-rental-backend/internal/service"
)

const maxUploadBytes = 32 << 20

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, domain.ErrValidation)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var documentFieldRe = regexp.MustCompile(`^documents\[(\d+)\]\[(\w+)\]$`)

// parseDocumentInputs extracts the indexed documents[N][field] tuples from a
// multipart form. Text fields and file parts for the same index are merged
// into one DocumentInput.
func parseDocumentInputs(form *multipart.Form) ([]service.DocumentInput, error) {
	byIndex := map[int]*service.DocumentInput{}

	get := func(i int) *service.DocumentInput {
		if in, ok := byIndex[i]; ok {
			return in
		}
		in := &service.DocumentInput{}
		byIndex[i] = in
		return in
	}

	for name, values := range form.Value {
		m := documentFieldRe.FindStringSubmatch(name)
		if m == nil || len(values) == 0 {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		in := get(idx)
		value := values[0]
		switch m[2] {
		case "id":
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid document id %q: %w", value, domain.ErrValidation)
			}
			in.ExistingID = &id
		case "deleted":
			in.Deleted = value == "true" || value == "1"
		case "document_type":
			in.DocumentType = value
		case "issue_date":
			t, err := parseDate(value)
			if err != nil {
				return nil, err
			}
			in.IssueDate = t
		case "expiry_date":
			t, err := parseOptionalDate(value)
			if err != nil {
				return nil, err
			}
			in.ExpiryDate = t
		case "notes":
			in.Notes = value
		}
	}

	for name, headers := range form.File {
		m := documentFieldRe.FindStringSubmatch(name)
		if m == nil || m[2] != "file" || len(headers) == 0 {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		upload, err := readUpload(headers[0])
		if err != nil {
			return nil, err
		}
		get(idx).File = upload
	}

	indexes := make([]int, 0, len(byIndex))
	for i := range byIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	inputs := make([]service.DocumentInput, 0, len(indexes))
	for _, i := range indexes {
		inputs = append(inputs, *byIndex[i])
	}
	return inputs, nil
}

// parseFileUploads collects the plain "files" parts of a multipart form.
func parseFileUploads(form *multipart.Form) ([]service.FileUpload, error) {
	var uploads []service.FileUpload
	for _, header := range form.File["files"] {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

func readUpload(header *multipart.FileHeader) (*service.FileUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &service.FileUpload{Name: header.Filename, MimeType: mimeType, Data: data}, nil
}

// isMultipart reports whether the request carries a multipart form body.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
