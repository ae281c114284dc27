package model

// Employee is a store worker; sales reference the cashier by id.
type Employee struct {
	ID     int    `gorm:"primaryKey"`
	Name   string `gorm:"not null"`
	Gender string `gorm:"type:varchar(20)"`
	Role   string `gorm:"type:varchar(40)"`
}

func (Employee) TableName() string { return "employees" }
