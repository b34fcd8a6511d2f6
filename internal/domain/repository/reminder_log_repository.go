package repository

import (
	"context"

	"smartpass-service/internal/domain/entity"
)

// ReminderLogRepository defines the interface for the reminder audit log
type ReminderLogRepository interface {
	Create(ctx context.Context, task *entity.ReminderTask) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	GetByPassID(ctx context.Context, passID string) ([]*entity.ReminderTask, error)
}
