package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the committed header of a transaction. Rows are immutable once
// created: there is no update or delete path. The id is allocated as
// max(id)+1 inside the commit transaction, matching the legacy scheme.
type Sale struct {
	ID            int             `gorm:"primaryKey"`
	Date          time.Time       `gorm:"not null;index"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustomerPhone string          `gorm:"type:varchar(10);not null"`
	EmployeeID    int             `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(10);not null"`

	Items    []SaleItem `gorm:"foreignKey:SaleID"`
	Invoice  *Invoice   `gorm:"foreignKey:SaleID"`
	Employee *Employee  `gorm:"foreignKey:EmployeeID"`
}

func (Sale) TableName() string { return "sales" }

// SaleItem is one line of a committed sale. UnitPrice is the price at
// commit time; later catalog changes never rewrite history.
type SaleItem struct {
	ID          int             `gorm:"primaryKey"`
	SaleID      int             `gorm:"index;not null"`
	ProductCode string          `gorm:"type:varchar(13);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductCode"`
}

func (SaleItem) TableName() string { return "sale_items" }
