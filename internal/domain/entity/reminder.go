package entity

import "time"

// ReminderKind identifies one of the three boarding triggers.
type ReminderKind string

const (
	ReminderTwoHours  ReminderKind = "2h"
	ReminderThirtyMin ReminderKind = "30m"
	ReminderBoarding  ReminderKind = "now"
)

// Reminder task statuses
const (
	ReminderStatusScheduled = "SCHEDULED"
	ReminderStatusFired     = "FIRED"
	ReminderStatusFailed    = "FAILED"
	ReminderStatusCancelled = "CANCELLED"
)

// ReminderTask is the audit row recorded for every arranged trigger
type ReminderTask struct {
	ID        uint
	PassID    string
	Flight    string
	Kind      ReminderKind
	Tag       string
	FireAt    time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
