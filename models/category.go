package models

type CategoryStatus string

const (
	CategoryStatusActive  CategoryStatus = "active"
	CategoryStatusRemoved CategoryStatus = "removed"
)

type Category struct {
	ID     uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string         `gorm:"unique;not null" json:"name"`
	Status CategoryStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
}
