package model

// Invoice is the optional fiscal block of a sale (0-or-1 per sale).
// All four data fields are mandatory when an invoice is requested; the
// negotiator validates them before the commit ever sees this struct.
type Invoice struct {
	SaleID        int    `gorm:"primaryKey"`
	TaxID         string `gorm:"type:varchar(13);not null;column:tax_id"`
	LegalName     string `gorm:"not null"`
	FiscalAddress string `gorm:"not null"`
	Email         string `gorm:"not null"`
}

func (Invoice) TableName() string { return "invoices" }
