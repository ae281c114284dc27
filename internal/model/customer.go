package model

// Customer is a registered buyer keyed by a 10-digit phone number.
// Walk-in sales use the general-customer sentinel phone and never touch
// this table.
type Customer struct {
	Phone   string `gorm:"type:varchar(10);primaryKey"`
	Name    string `gorm:"not null"`
	Address string
	// TaxID is the fiscal identifier (RFC) used to pre-fill invoices.
	TaxID *string `gorm:"type:varchar(13);column:tax_id"`
	Email *string
}

func (Customer) TableName() string { return "customers" }
