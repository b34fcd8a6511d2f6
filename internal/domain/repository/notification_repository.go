package repository

import (
	"context"

	"smartpass-service/internal/domain/entity"
)

// NotificationRepository defines the interface for delivering local reminders.
// Delivery is best-effort: the scheduler logs and drops failures, it never
// retries.
type NotificationRepository interface {
	Deliver(ctx context.Context, title, body string, opts entity.NotificationOptions) error
	RequestPermission(ctx context.Context) (entity.PermissionStatus, error)
}
