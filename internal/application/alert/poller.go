// Package alert owns the due-reminder workflow: matching reminders against the wall
// clock, sounding the alert tone while one is due, and dismissing it on acknowledgement.
package alert

import (
	"time"

	"medialert/internal/domain/entity"
)

const clockLayout = "15:04"

// ClockString formats t as zero-padded "HH:MM".
func ClockString(t time.Time) string {
	return t.Format(clockLayout)
}

// FindDue returns the first reminder whose time equals now exactly, skipping ids in skip.
// reminders must already be in display order (time, then creation).
func FindDue(reminders []*entity.Reminder, now string, skip map[string]struct{}) (*entity.Reminder, bool) {
	for _, r := range reminders {
		if r.Time != now {
			continue
		}
		if _, fired := skip[r.ID]; fired {
			continue
		}
		return r, true
	}
	return nil, false
}

// groupByUser splits an ordered reminder list into per-user lists, keeping order.
func groupByUser(reminders []*entity.Reminder) map[string][]*entity.Reminder {
	grouped := make(map[string][]*entity.Reminder)
	for _, r := range reminders {
		grouped[r.UserID] = append(grouped[r.UserID], r)
	}
	return grouped
}
