package dto

import "github.com/shopspring/decimal"

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date string `form:"date"` // YYYY-MM-DD; empty = today
}

type SaleListItem struct {
	ID            int             `json:"id"`
	Date          string          `json:"date"`
	Total         decimal.Decimal `json:"total"`
	CustomerPhone string          `json:"customer_phone"`
	EmployeeName  string          `json:"employee"`
	PaymentMethod string          `json:"payment_method"`
	Invoiced      bool            `json:"invoiced"`
}

type SaleListResponse struct {
	Data []SaleListItem `json:"data"`
}

// SaleDetail is the history view of one sale: header, lines with
// extended totals, and the invoice block when one was captured.
type SaleDetail struct {
	ID            int             `json:"id"`
	Date          string          `json:"date"`
	Total         decimal.Decimal `json:"total"`
	CustomerPhone string          `json:"customer_phone"`
	EmployeeName  string          `json:"employee"`
	PaymentMethod string          `json:"payment_method"`
	Lines         []LineItemView  `json:"lines"`
	Invoice       *InvoiceView    `json:"invoice,omitempty"`
}
