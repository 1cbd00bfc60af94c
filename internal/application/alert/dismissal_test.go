package alert

import (
	"context"
	"errors"
	"testing"

	"medialert/internal/domain/constant"
	"medialert/internal/domain/entity"
	"medialert/internal/domain/repository"
	"medialert/internal/infrastructure/database/gormdb"
	"medialert/internal/pkg/logger"
	"medialert/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type dismissFixture struct {
	reminders repository.ReminderRepository
	refills   repository.RefillRepository
	dismisser *Dismisser
}

func newDismissFixture(t *testing.T) dismissFixture {
	db := gormdb.NewTestDB(t)
	f := dismissFixture{
		reminders: gormdb.NewReminderRepository(db),
		refills:   gormdb.NewRefillRepository(db),
	}
	f.dismisser = NewDismisser(f.reminders, f.refills, logger.NewNop(), metrics.New())
	return f
}

func (f dismissFixture) reminder(t *testing.T, name, qty string) entity.Reminder {
	r := &entity.Reminder{UserID: "alice", MedicineName: name, Time: "08:00", Type: constant.ReminderMorning, Quantity: qty}
	require.NoError(t, f.reminders.Create(context.Background(), r))
	return *r
}

func (f dismissFixture) item(t *testing.T, name string, total, remaining float64) *entity.RefillItem {
	item := &entity.RefillItem{UserID: "alice", Name: name, TotalQuantity: total, RemainingQuantity: remaining}
	require.NoError(t, f.refills.Create(context.Background(), item))
	return item
}

func (f dismissFixture) assertDeleted(t *testing.T, r entity.Reminder) {
	_, err := f.reminders.FindByID(context.Background(), r.UserID, r.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "reminder %s should be deleted", r.ID)
}

func TestDismissDecrementsFractionalDose(t *testing.T) {
	ctx := context.Background()
	f := newDismissFixture(t)
	item := f.item(t, "Aspirin", 30, 10)
	r := f.reminder(t, "Aspirin", "1/2")

	out := f.dismisser.Dismiss(ctx, r)

	assert.True(t, out.InventoryUpdated)
	assert.True(t, out.ReminderDeleted)
	require.NotNil(t, out.RemainingQuantity)
	assert.InDelta(t, 9.5, *out.RemainingQuantity, 1e-9)

	stored, err := f.refills.FindByID(ctx, "alice", item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9.5, stored.RemainingQuantity, 1e-9)
	f.assertDeleted(t, r)
}

func TestDismissSkipsInsufficientStock(t *testing.T) {
	ctx := context.Background()
	f := newDismissFixture(t)
	item := f.item(t, "Metformin", 30, 1)
	r := f.reminder(t, "Metformin", "2")

	out := f.dismisser.Dismiss(ctx, r)

	assert.False(t, out.InventoryUpdated)
	assert.True(t, out.ReminderDeleted)
	require.NotNil(t, out.RemainingQuantity)
	assert.InDelta(t, 1, *out.RemainingQuantity, 0)

	stored, err := f.refills.FindByID(ctx, "alice", item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1, stored.RemainingQuantity, 0)
	f.assertDeleted(t, r)
}

func TestDismissExactStockReachesZero(t *testing.T) {
	f := newDismissFixture(t)
	f.item(t, "Ibuprofen", 10, 2)
	r := f.reminder(t, "Ibuprofen", "2")

	out := f.dismisser.Dismiss(context.Background(), r)

	assert.True(t, out.InventoryUpdated)
	assert.InDelta(t, 0, *out.RemainingQuantity, 0)
}

func TestDismissUnparseableQuantity(t *testing.T) {
	f := newDismissFixture(t)
	f.item(t, "Aspirin", 30, 10)
	r := f.reminder(t, "Aspirin", "a few")

	out := f.dismisser.Dismiss(context.Background(), r)

	assert.False(t, out.InventoryUpdated)
	assert.True(t, out.ReminderDeleted)
	assert.InDelta(t, 10, *out.RemainingQuantity, 0)
}

func TestDismissWithoutInventoryItem(t *testing.T) {
	f := newDismissFixture(t)
	f.item(t, "aspirin", 30, 10) // name match is exact
	r := f.reminder(t, "Aspirin", "1")

	out := f.dismisser.Dismiss(context.Background(), r)

	assert.False(t, out.InventoryUpdated)
	assert.Nil(t, out.RemainingQuantity)
	assert.True(t, out.ReminderDeleted)
	f.assertDeleted(t, r)
}

func TestDismissUsesFirstMatchingItem(t *testing.T) {
	ctx := context.Background()
	f := newDismissFixture(t)
	first := f.item(t, "Aspirin", 30, 10)
	second := f.item(t, "Aspirin", 30, 20)
	r := f.reminder(t, "Aspirin", "1")

	out := f.dismisser.Dismiss(ctx, r)
	require.True(t, out.InventoryUpdated)

	got, err := f.refills.FindByID(ctx, "alice", first.ID)
	require.NoError(t, err)
	assert.InDelta(t, 9, got.RemainingQuantity, 0)
	got, err = f.refills.FindByID(ctx, "alice", second.ID)
	require.NoError(t, err)
	assert.InDelta(t, 20, got.RemainingQuantity, 0)
}

func TestDismissReportsFailedDelete(t *testing.T) {
	f := newDismissFixture(t)
	r := entity.Reminder{ID: "gone", UserID: "alice", MedicineName: "Aspirin", Quantity: "1"}

	out := f.dismisser.Dismiss(context.Background(), r)

	assert.False(t, out.ReminderDeleted)
	assert.Equal(t, "gone", out.Reminder.ID)
}
