// Package domain holds the shared vocabulary of the POS core: payment
// methods, the walk-in customer sentinel, and the error taxonomy every
// operation reports its failures through. Handlers key user-facing
// messages and HTTP statuses off the error Kind.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule failure. One kind per distinct
// user-facing condition; the HTTP layer maps kinds to statuses.
type Kind string

const (
	KindProductNotFound          Kind = "product_not_found"
	KindEmployeeNotFound         Kind = "employee_not_found"
	KindCustomerNotFound         Kind = "customer_not_found"
	KindCartNotFound             Kind = "cart_not_found"
	KindSaleNotFound             Kind = "sale_not_found"
	KindLineNotFound             Kind = "line_not_found"
	KindValidationFailed         Kind = "validation_failed"
	KindInsufficientStock        Kind = "insufficient_stock"
	KindPaymentMethodNotSelected Kind = "payment_method_not_selected"
	KindPaymentInsufficient      Kind = "payment_insufficient"
	KindInvoiceDataIncomplete    Kind = "invoice_data_incomplete"
	KindInvalidPhoneFormat       Kind = "invalid_phone_format"
	KindEmptyCart                Kind = "empty_cart"
	KindEmployeeRequired         Kind = "employee_required"
	KindNoPausedSale             Kind = "no_paused_sale"
	KindCommitFailed             Kind = "commit_failed"
)

// Error is a classified business error. Wrapped causes survive via Unwrap
// so CommitFailed can carry the underlying store failure.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// E builds a classified error with a formatted message.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying failure without losing its cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind of err, or "" when err is not classified.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// InsufficientStockError reports a stock check failure with the offending
// values so the operator sees available vs requested.
type InsufficientStockError struct {
	Code      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available, %d requested", e.Code, e.Available, e.Requested)
}

// NewInsufficientStock wraps the typed payload in a classified error.
func NewInsufficientStock(code string, available, requested int) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for %s: %d available, %d requested", code, available, requested),
		Cause:   &InsufficientStockError{Code: code, Available: available, Requested: requested},
	}
}

// StockDetail extracts the available/requested payload from an
// insufficient-stock error, if present.
func StockDetail(err error) (*InsufficientStockError, bool) {
	var se *InsufficientStockError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
