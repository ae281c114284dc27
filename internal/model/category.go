package model

// Category classifies products.
type Category struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// TableName overrides GORM's pluralization to keep the legacy table names.
func (Category) TableName() string { return "categories" }
