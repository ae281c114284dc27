package dto

import (
	"bodegapos/internal/payment"

	"github.com/shopspring/decimal"
)

// ─── Cart requests ───────────────────────────────────────────────────────────

type AddItemRequest struct {
	Code     string `json:"code"     validate:"required,max=13"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type EditQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// BindCustomerRequest binds a registered customer by phone. An empty
// phone clears the binding back to the general customer.
type BindCustomerRequest struct {
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type BindEmployeeRequest struct {
	EmployeeID int `json:"employee_id" validate:"required,min=1"`
}

type PaymentRequest struct {
	Method   string          `json:"method"   validate:"required,oneof=CASH CARD"`
	Tendered decimal.Decimal `json:"tendered" validate:"min=0"`
}

// InvoiceRequest is the optional invoice block of a checkout. When
// RegisterCustomer is set on a walk-in sale, CustomerPhone must be the
// new customer's 10-digit phone.
type InvoiceRequest struct {
	TaxID            string `json:"tax_id"         validate:"required"`
	LegalName        string `json:"legal_name"     validate:"required"`
	FiscalAddress    string `json:"fiscal_address" validate:"required"`
	Email            string `json:"email"          validate:"required"`
	RegisterCustomer bool   `json:"register_customer"`
	CustomerPhone    string `json:"customer_phone" validate:"omitempty,numeric"`
}

type CheckoutRequest struct {
	Invoice *InvoiceRequest `json:"invoice" validate:"omitempty"`
}

// ─── Cart responses ──────────────────────────────────────────────────────────

type LineItemView struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartSnapshot is emitted after every cart mutation so the terminal can
// re-render items and total without tracking deltas.
type CartSnapshot struct {
	CartID        string          `json:"cart_id"`
	Items         []LineItemView  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CustomerPhone *string         `json:"customer_phone,omitempty"`
	CustomerName  string          `json:"customer_name"`
	EmployeeID    *int            `json:"employee_id,omitempty"`
	Payment       *payment.Result `json:"payment,omitempty"`
}

// InvoiceView is the invoice block echoed on receipts and sale detail.
type InvoiceView struct {
	TaxID         string `json:"tax_id"`
	LegalName     string `json:"legal_name"`
	FiscalAddress string `json:"fiscal_address"`
	Email         string `json:"email"`
}

// Receipt is the structured result of a successful commit.
type Receipt struct {
	SaleID        int              `json:"sale_id"`
	Date          string           `json:"date"`
	CustomerLabel string           `json:"customer"`
	EmployeeName  string           `json:"employee"`
	PaymentMethod string           `json:"payment_method"`
	Tendered      *decimal.Decimal `json:"tendered,omitempty"`
	Change        *decimal.Decimal `json:"change,omitempty"`
	Invoice       *InvoiceView     `json:"invoice,omitempty"`
	Lines         []LineItemView   `json:"lines"`
	Total         decimal.Decimal  `json:"total"`
}
