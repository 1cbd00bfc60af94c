package alert

import (
	"context"
	"errors"
	"fmt"

	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"
	"medialert/internal/pkg/quantity"

	"gorm.io/gorm"
)

// Outcome reports what an acknowledgement changed.
type Outcome struct {
	Reminder          entity.Reminder
	InventoryUpdated  bool
	RemainingQuantity *float64 // nil when no inventory item matched
	ReminderDeleted   bool
}

// Dismisser applies the side effects of acknowledging a due reminder.
type Dismisser struct {
	reminders repository.ReminderRepository
	refills   repository.RefillRepository
	log       logger.Logger
	metrics   *metrics.Metrics
}

// NewDismisser creates a Dismisser.
func NewDismisser(reminders repository.ReminderRepository, refills repository.RefillRepository, log logger.Logger, m *metrics.Metrics) *Dismisser {
	return &Dismisser{reminders: reminders, refills: refills, log: log, metrics: m}
}

// Dismiss decrements the matching inventory item when stock allows and deletes the
// reminder. Storage failures are logged and reflected in the Outcome, never returned.
func (d *Dismisser) Dismiss(ctx context.Context, r entity.Reminder) Outcome {
	out := Outcome{Reminder: r}
	out.InventoryUpdated, out.RemainingQuantity = d.decrement(ctx, r)

	if err := d.reminders.Delete(ctx, r.UserID, r.ID); err != nil {
		d.log.Error(fmt.Sprintf("Failed to delete acknowledged reminder %s", r.ID), err)
	} else {
		out.ReminderDeleted = true
		d.log.Info(fmt.Sprintf("Deleted acknowledged reminder %s", r.ID))
	}
	return out
}

func (d *Dismisser) decrement(ctx context.Context, r entity.Reminder) (bool, *float64) {
	item, err := d.refills.FindFirstByName(ctx, r.UserID, r.MedicineName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			d.metrics.InventoryDecrements.WithLabelValues("no_item").Inc()
			d.log.Debug(fmt.Sprintf("No inventory item named %q for user %s", r.MedicineName, r.UserID))
			return false, nil
		}
		d.metrics.InventoryDecrements.WithLabelValues("failed").Inc()
		d.log.Error(fmt.Sprintf("Failed to look up inventory for %q", r.MedicineName), err)
		return false, nil
	}

	current := item.RemainingQuantity
	amount := quantity.Parse(r.Quantity)
	if !item.CanDecrement(amount) {
		d.metrics.InventoryDecrements.WithLabelValues("insufficient").Inc()
		d.log.Warn(fmt.Sprintf("Skipping inventory update for %q: dose %v, remaining %v", item.Name, amount, current))
		return false, &current
	}

	remaining := current - amount
	if err := d.refills.UpdateRemaining(ctx, item.UserID, item.ID, remaining); err != nil {
		d.metrics.InventoryDecrements.WithLabelValues("failed").Inc()
		d.log.Error(fmt.Sprintf("Failed to update inventory for %q", item.Name), err)
		return false, &current
	}
	d.metrics.InventoryDecrements.WithLabelValues("applied").Inc()
	return true, &remaining
}
