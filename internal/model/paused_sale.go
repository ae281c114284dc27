package model

import "time"

// PausedSale is a suspended in-progress cart. Customer and line items are
// stored as JSON blobs so a resume restores the cart exactly as paused —
// same codes, names, quantities, prices, and order. Resume always takes
// the newest row and deletes it.
type PausedSale struct {
	ID            int     `gorm:"primaryKey"`
	CustomerPhone *string `gorm:"type:varchar(10)"`
	CustomerJSON  []byte  `gorm:"type:text;column:customer_json"`
	ItemsJSON     []byte  `gorm:"type:text;not null;column:items_json"`
	EmployeeID    *int
	PausedAt      time.Time `gorm:"not null;index"`
}

func (PausedSale) TableName() string { return "paused_sales" }
