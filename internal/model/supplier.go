package model

// Supplier is a product vendor.
type Supplier struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Phone string `gorm:"type:varchar(10)"`
}

func (Supplier) TableName() string { return "suppliers" }
