package model

// Unit is a unit of measure (piece, kg, liter, ...).
type Unit struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (Unit) TableName() string { return "units" }
