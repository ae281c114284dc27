package model

import (
	"github.com/shopspring/decimal"
)

// Product is a sellable article keyed by its barcode (up to EAN-13).
// Stock must never go negative: every committed sale decrements it with a
// guard clause, not a blind update.
type Product struct {
	Code         string          `gorm:"type:varchar(13);primaryKey"`
	Name         string          `gorm:"index;not null"`
	SalePrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock        int             `gorm:"not null;default:0"`
	ReorderPoint int             `gorm:"not null;default:0"`
	CategoryID   int             `gorm:"index"`
	SupplierID   int             `gorm:"index"`
	UnitID       int             `gorm:"index"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
	Unit     *Unit     `gorm:"foreignKey:UnitID"`
}

func (Product) TableName() string { return "products" }
