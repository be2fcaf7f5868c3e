package domain

import "errors"

// Sentinel errors raised by services and repositories. The HTTP boundary
// maps these to status codes; everything else is treated as internal.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input")
	ErrDuplicate  = errors.New("duplicate record")
	ErrStorage    = errors.New("storage failure")
)
