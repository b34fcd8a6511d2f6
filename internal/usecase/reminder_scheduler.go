package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/pkg/clock"
	"smartpass-service/pkg/logger"
	"smartpass-service/templates"
)

var boardingDateRe = regexp.MustCompile(`(?i)(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{2,4})`)

var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ReminderHandle is the cancellation handle for one arranged trigger.
type ReminderHandle struct {
	Kind   entity.ReminderKind
	Tag    string
	FireAt time.Time

	timer  clock.Timer
	taskID uint
}

// Cancel stops the pending trigger. Cancelling a trigger that already fired
// has no effect.
func (h *ReminderHandle) Cancel() bool {
	if h.timer == nil {
		return false
	}
	return h.timer.Stop()
}

// ReminderScheduler arranges up to three boarding reminders per pass
// (2 hours before, 30 minutes before, and at the boarding instant) as
// independent one-shot timers. Triggers already in the past are silently
// skipped, never backfilled.
type ReminderScheduler struct {
	notifier    repository.NotificationRepository
	reminderLog repository.ReminderLogRepository
	clock       clock.Clock
	logger      logger.Logger

	mu      sync.Mutex
	pending map[string][]*ReminderHandle
}

// NewReminderScheduler creates a new reminder scheduler. reminderLog may be
// nil when no audit store is configured.
func NewReminderScheduler(
	notifier repository.NotificationRepository,
	reminderLog repository.ReminderLogRepository,
	clk clock.Clock,
	logger logger.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		notifier:    notifier,
		reminderLog: reminderLog,
		clock:       clk,
		logger:      logger,
		pending:     make(map[string][]*ReminderHandle),
	}
}

// Schedule computes the trigger instants for the pass and arms a timer for
// each one still in the future. A pass without both date and boarding time,
// or with a date the scheduler cannot resolve, yields no handles; that is
// not an error, there is just nothing to schedule.
func (s *ReminderScheduler) Schedule(ctx context.Context, pass *entity.BoardingPass) []*ReminderHandle {
	if pass.Date == "" || pass.BoardingTime == "" {
		s.logger.Warn("Missing boarding time or date, cannot schedule reminders", "passId", pass.ID)
		return nil
	}

	boarding, err := s.parseBoardingInstant(pass.Date, pass.BoardingTime)
	if err != nil {
		s.logger.Error("Failed to resolve boarding instant",
			"passId", pass.ID,
			"date", pass.Date,
			"boardingTime", pass.BoardingTime,
			"error", err)
		return nil
	}

	now := s.clock.Now()
	triggers := []struct {
		kind entity.ReminderKind
		at   time.Time
	}{
		{entity.ReminderTwoHours, boarding.Add(-2 * time.Hour)},
		{entity.ReminderThirtyMin, boarding.Add(-30 * time.Minute)},
		{entity.ReminderBoarding, boarding},
	}

	var handles []*ReminderHandle
	for _, tr := range triggers {
		if !tr.at.After(now) {
			continue
		}
		handles = append(handles, s.arm(ctx, pass, tr.kind, tr.at, now))
	}

	if len(handles) > 0 {
		s.mu.Lock()
		s.pending[pass.ID] = append(s.pending[pass.ID], handles...)
		s.mu.Unlock()
	}

	s.logger.Info("Reminders scheduled",
		"passId", pass.ID,
		"flight", pass.Flight,
		"boardingAt", boarding,
		"count", len(handles))

	return handles
}

// CancelForPass cancels every pending trigger for the pass as a group, e.g.
// when the user deletes the record. Safe to call while timers fire.
func (s *ReminderScheduler) CancelForPass(ctx context.Context, passID string) {
	s.mu.Lock()
	handles := s.pending[passID]
	delete(s.pending, passID)
	s.mu.Unlock()

	cancelled := 0
	for _, h := range handles {
		if h.Cancel() {
			cancelled++
			s.markTask(ctx, h.taskID, entity.ReminderStatusCancelled)
		}
	}

	if len(handles) > 0 {
		s.logger.Info("Reminders cancelled", "passId", passID, "cancelled", cancelled, "total", len(handles))
	}
}

// Stop cancels all pending triggers across every pass, used on shutdown.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	pending := s.pending
	s.pending = make(map[string][]*ReminderHandle)
	s.mu.Unlock()

	for _, handles := range pending {
		for _, h := range handles {
			h.Cancel()
		}
	}
}

func (s *ReminderScheduler) arm(ctx context.Context, pass *entity.BoardingPass, kind entity.ReminderKind, at, now time.Time) *ReminderHandle {
	msg := templates.ReminderMessage(kind, pass.Flight, pass.Gate)
	handle := &ReminderHandle{Kind: kind, Tag: msg.Options.Tag, FireAt: at}

	if s.reminderLog != nil {
		task := &entity.ReminderTask{
			PassID: pass.ID,
			Flight: pass.Flight,
			Kind:   kind,
			Tag:    msg.Options.Tag,
			FireAt: at,
			Status: entity.ReminderStatusScheduled,
		}
		if err := s.reminderLog.Create(ctx, task); err != nil {
			s.logger.Error("Failed to record reminder task", "passId", pass.ID, "kind", kind, "error", err)
		} else {
			handle.taskID = task.ID
		}
	}

	handle.timer = s.clock.AfterFunc(at.Sub(now), func() {
		s.deliver(handle, msg)
	})

	return handle
}

func (s *ReminderScheduler) deliver(handle *ReminderHandle, msg templates.Notification) {
	ctx := context.Background()

	if err := s.notifier.Deliver(ctx, msg.Title, msg.Body, msg.Options); err != nil {
		// Best-effort local reminders: report and drop, no retries.
		s.logger.Error("Notification delivery failed", "tag", msg.Options.Tag, "error", err)
		s.markTask(ctx, handle.taskID, entity.ReminderStatusFailed)
		return
	}

	s.logger.Info("Reminder delivered", "tag", msg.Options.Tag, "kind", handle.Kind)
	s.markTask(ctx, handle.taskID, entity.ReminderStatusFired)
}

func (s *ReminderScheduler) markTask(ctx context.Context, taskID uint, status string) {
	if s.reminderLog == nil || taskID == 0 {
		return
	}
	if err := s.reminderLog.UpdateStatus(ctx, taskID, status); err != nil {
		s.logger.Error("Failed to update reminder task status", "taskId", taskID, "status", status, "error", err)
	}
}

// parseBoardingInstant combines the free-text date the extractor produced
// with the HH:MM boarding time into one local-time instant. Two-digit years
// are expanded by prefixing "20"; a day that does not exist in the month is
// rejected.
func (s *ReminderScheduler) parseBoardingInstant(dateStr, timeStr string) (time.Time, error) {
	m := boardingDateRe.FindStringSubmatch(dateStr)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q", m[1])
	}

	month, ok := monthAbbrevs[strings.ToUpper(m[2])]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q", m[2])
	}

	yearStr := m[3]
	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q", m[3])
	}

	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("unrecognized time %q", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute %q", parts[1])
	}

	instant := time.Date(year, month, day, hour, minute, 0, 0, time.Local)
	if instant.Day() != day || instant.Month() != month {
		return time.Time{}, fmt.Errorf("impossible day of month in %q", dateStr)
	}

	return instant, nil
}
