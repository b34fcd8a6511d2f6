package templates

import (
	"fmt"

	"smartpass-service/internal/domain/entity"
)

// Notification is a rendered reminder ready for the delivery layer.
type Notification struct {
	Title   string
	Body    string
	Options entity.NotificationOptions
}

const (
	twoHourTitle = "✈️ Flight Reminder"
	twoHourBody  = "Your flight %s boards in 2 hours at gate %s"

	thirtyMinTitle = "⏰ Boarding Soon!"
	thirtyMinBody  = "Your flight %s boards in 30 minutes at gate %s"

	boardingTitle = "🚨 Boarding Now!"
	boardingBody  = "Flight %s is boarding now at gate %s!"
)

// ReminderMessage renders the fixed template for one trigger kind. The tag is
// distinct per flight and kind so the delivery layer suppresses duplicates;
// the boarding-instant notification requires explicit dismissal.
func ReminderMessage(kind entity.ReminderKind, flight, gate string) Notification {
	tag := fmt.Sprintf("%s-%s", flight, kind)

	switch kind {
	case entity.ReminderTwoHours:
		return Notification{
			Title:   twoHourTitle,
			Body:    fmt.Sprintf(twoHourBody, flight, gate),
			Options: entity.NotificationOptions{Tag: tag},
		}
	case entity.ReminderThirtyMin:
		return Notification{
			Title:   thirtyMinTitle,
			Body:    fmt.Sprintf(thirtyMinBody, flight, gate),
			Options: entity.NotificationOptions{Tag: tag},
		}
	default:
		return Notification{
			Title:   boardingTitle,
			Body:    fmt.Sprintf(boardingBody, flight, gate),
			Options: entity.NotificationOptions{Tag: tag, RequireInteraction: true},
		}
	}
}
