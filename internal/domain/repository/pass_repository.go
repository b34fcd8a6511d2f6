package repository

import (
	"context"
	"errors"

	"smartpass-service/internal/domain/entity"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// PassRepository defines the interface for boarding pass storage operations
type PassRepository interface {
	Save(ctx context.Context, pass *entity.BoardingPass) error
	FindByID(ctx context.Context, id string) (*entity.BoardingPass, error)
	FindAll(ctx context.Context, limit int) ([]*entity.BoardingPass, error)
	Delete(ctx context.Context, id string) error
}
