package repository

import (
	"context"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormReminderLogRepository implements the ReminderLogRepository interface
type GormReminderLogRepository struct {
	db *gorm.DB
}

// NewGormReminderLogRepository creates a new GORM reminder log repository
func NewGormReminderLogRepository(db *gorm.DB) repository.ReminderLogRepository {
	return &GormReminderLogRepository{
		db: db,
	}
}

// ReminderTasks GORM model for database mapping
type ReminderTasks struct {
	gorm.Model
	PassID string    `gorm:"column:pass_id;index"`
	Flight string    `gorm:"column:flight"`
	Kind   string    `gorm:"column:kind"`
	Tag    string    `gorm:"column:tag"`
	FireAt time.Time `gorm:"column:fire_at"`
	Status string    `gorm:"column:status"`
}

// TableName overrides the default table name
func (ReminderTasks) TableName() string {
	return "reminder_tasks"
}

// Create inserts a new reminder task into the database
func (r *GormReminderLogRepository) Create(ctx context.Context, task *entity.ReminderTask) error {
	model := ReminderTasks{
		PassID: task.PassID,
		Flight: task.Flight,
		Kind:   string(task.Kind),
		Tag:    task.Tag,
		FireAt: task.FireAt,
		Status: task.Status,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		return result.Error
	}

	// Update the entity with the generated ID
	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	task.UpdatedAt = model.UpdatedAt

	return nil
}

// UpdateStatus sets the status of one reminder task
func (r *GormReminderLogRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&ReminderTasks{}).
		Where("id = ?", id).
		Update("status", status)
	return result.Error
}

// GetByPassID finds reminder tasks for one boarding pass
func (r *GormReminderLogRepository) GetByPassID(ctx context.Context, passID string) ([]*entity.ReminderTask, error) {
	var tasks []ReminderTasks
	result := r.db.WithContext(ctx).Unscoped().Where("pass_id = ?", passID).Find(&tasks)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert to domain entities
	var entities []*entity.ReminderTask
	for _, task := range tasks {
		entities = append(entities, &entity.ReminderTask{
			ID:        task.ID,
			PassID:    task.PassID,
			Flight:    task.Flight,
			Kind:      entity.ReminderKind(task.Kind),
			Tag:       task.Tag,
			FireAt:    task.FireAt,
			Status:    task.Status,
			CreatedAt: task.CreatedAt,
			UpdatedAt: task.UpdatedAt,
		})
	}

	return entities, nil
}
