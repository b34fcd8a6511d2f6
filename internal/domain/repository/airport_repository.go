package repository

import (
	"context"

	"smartpass-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport reference lookups
type AirportRepository interface {
	GetByIATACode(ctx context.Context, code string) (*entity.Airport, error)
}
