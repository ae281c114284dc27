package dto

import "github.com/shopspring/decimal"

// ─── Entity CRUD requests ────────────────────────────────────────────────────

type ProductRequest struct {
	Code         string          `json:"code"          validate:"required,max=13"`
	Name         string          `json:"name"          validate:"required"`
	SalePrice    decimal.Decimal `json:"sale_price"    validate:"min=0"`
	Cost         decimal.Decimal `json:"cost"          validate:"min=0"`
	Stock        int             `json:"stock"         validate:"min=0"`
	ReorderPoint int             `json:"reorder_point" validate:"min=0"`
	CategoryID   int             `json:"category_id"   validate:"required,min=1"`
	SupplierID   int             `json:"supplier_id"   validate:"required,min=1"`
	UnitID       int             `json:"unit_id"       validate:"required,min=1"`
}

type CustomerRequest struct {
	Phone   string  `json:"phone"   validate:"required,len=10,numeric"`
	Name    string  `json:"name"    validate:"required"`
	Address string  `json:"address"`
	TaxID   *string `json:"tax_id"  validate:"omitempty,min=12,max=13"`
	Email   *string `json:"email"   validate:"omitempty,email"`
}

type EmployeeRequest struct {
	ID     int    `json:"id"     validate:"required,min=1,max=9999"`
	Name   string `json:"name"   validate:"required"`
	Gender string `json:"gender"`
	Role   string `json:"role"`
}

// NamedRequest covers the two-column classification tables
// (categories, units).
type NamedRequest struct {
	ID   int    `json:"id"   validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
}

type SupplierRequest struct {
	ID    int    `json:"id"    validate:"required,min=1"`
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"omitempty,len=10,numeric"`
}

// ─── Price check ─────────────────────────────────────────────────────────────

type PriceCheckResponse struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Stock     int             `json:"stock"`
}
