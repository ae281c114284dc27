// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "bodegapos/internal/domain"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Code carries the machine-readable failure kind so the terminal UI can key
// its operator messages off it.
type APIError struct {
	Code   string      `json:"code,omitempty"`
	Detail string      `json:"detail"`
	Extra  interface{} `json:"extra,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FromDomain builds an envelope from a classified business error, attaching
// the stock payload when present so the UI can show available vs requested.
func FromDomain(err error) *APIError {
	e := &APIError{Code: string(domain.KindOf(err)), Detail: err.Error()}
	if se, ok := domain.StockDetail(err); ok {
		e.Extra = map[string]int{"available": se.Available, "requested": se.Requested}
	}
	return e
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Code   string            `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Code: string(domain.KindValidationFailed), Detail: "validation failed", Fields: fields}
}
