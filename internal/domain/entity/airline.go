package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airline represents a carrier in the reference table
type Airline struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
