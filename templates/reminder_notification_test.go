package templates

import (
	"testing"

	"smartpass-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestReminderMessageTwoHours(t *testing.T) {
	msg := ReminderMessage(entity.ReminderTwoHours, "6E202", "A12")

	assert.Equal(t, "✈️ Flight Reminder", msg.Title)
	assert.Equal(t, "Your flight 6E202 boards in 2 hours at gate A12", msg.Body)
	assert.Equal(t, "6E202-2h", msg.Options.Tag)
	assert.False(t, msg.Options.RequireInteraction)
}

func TestReminderMessageThirtyMinutes(t *testing.T) {
	msg := ReminderMessage(entity.ReminderThirtyMin, "6E202", "A12")

	assert.Equal(t, "⏰ Boarding Soon!", msg.Title)
	assert.Equal(t, "Your flight 6E202 boards in 30 minutes at gate A12", msg.Body)
	assert.Equal(t, "6E202-30m", msg.Options.Tag)
	assert.False(t, msg.Options.RequireInteraction)
}

func TestReminderMessageBoarding(t *testing.T) {
	msg := ReminderMessage(entity.ReminderBoarding, "6E202", "A12")

	assert.Equal(t, "🚨 Boarding Now!", msg.Title)
	assert.Equal(t, "Flight 6E202 is boarding now at gate A12!", msg.Body)
	assert.Equal(t, "6E202-now", msg.Options.Tag)
	assert.True(t, msg.Options.RequireInteraction)
}
