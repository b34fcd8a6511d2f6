package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport represents airport reference data keyed by IATA code
type Airport struct {
	ID          uint
	IATACode    string
	AirportName string
	CityName    string
	TzName      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
