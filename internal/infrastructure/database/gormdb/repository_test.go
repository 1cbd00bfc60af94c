package gormdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"medialert/internal/domain/constant"
	"medialert/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReminderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReminderRepository(NewTestDB(t))

	seed := []*entity.Reminder{
		{UserID: "alice", MedicineName: "Metformin", Time: "20:00", Type: constant.ReminderNight, Quantity: "1"},
		{UserID: "alice", MedicineName: "Aspirin", Time: "08:00", Type: constant.ReminderMorning, Quantity: "1/2"},
		{UserID: "bob", MedicineName: "Ibuprofen", Time: "08:00", Type: constant.ReminderMorning, Quantity: "2"},
	}
	for _, r := range seed {
		require.NoError(t, repo.Create(ctx, r))
		assert.NotEmpty(t, r.ID)
	}

	t.Run("lists a user's reminders by time", func(t *testing.T) {
		list, err := repo.FindByUserID(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "08:00", list[0].Time)
		assert.Equal(t, "20:00", list[1].Time)
	})

	t.Run("find all groups by user", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "alice", all[0].UserID)
		assert.Equal(t, "bob", all[2].UserID)
	})

	t.Run("find by id is scoped to the owner", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "alice", seed[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Aspirin", got.MedicineName)

		_, err = repo.FindByID(ctx, "bob", seed[1].ID)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("delete reports missing rows", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "alice", seed[0].ID))
		err := repo.Delete(ctx, "alice", seed[0].ID)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("delete by user", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, "bob"))
		list, err := repo.FindByUserID(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestRefillRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRefillRepository(NewTestDB(t))

	first := &entity.RefillItem{UserID: "alice", Name: "Aspirin", TotalQuantity: 30, RemainingQuantity: 10, CreatedAt: time.Now().Add(-time.Hour)}
	second := &entity.RefillItem{UserID: "alice", Name: "Aspirin", TotalQuantity: 30, RemainingQuantity: 30}
	other := &entity.RefillItem{UserID: "alice", Name: "Amoxicillin", TotalQuantity: 20, RemainingQuantity: 20}
	for _, item := range []*entity.RefillItem{first, second, other} {
		require.NoError(t, repo.Create(ctx, item))
	}

	t.Run("first by name picks the oldest exact match", func(t *testing.T) {
		got, err := repo.FindFirstByName(ctx, "alice", "Aspirin")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = repo.FindFirstByName(ctx, "alice", "aspirin")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("lists by name", func(t *testing.T) {
		items, err := repo.FindByUserID(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Amoxicillin", items[0].Name)
	})

	t.Run("update remaining", func(t *testing.T) {
		require.NoError(t, repo.UpdateRemaining(ctx, "alice", first.ID, 9.5))
		got, err := repo.FindByID(ctx, "alice", first.ID)
		require.NoError(t, err)
		assert.InDelta(t, 9.5, got.RemainingQuantity, 1e-9)

		err = repo.UpdateRemaining(ctx, "bob", first.ID, 1)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "alice", other.ID))
		_, err := repo.FindByID(ctx, "alice", other.ID)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestDosageRepositoryOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewDosageRepository(NewTestDB(t))

	older := &entity.Dosage{UserID: "alice", Name: "Aspirin", Quantity: "1", Time: "08:00", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Dosage{UserID: "alice", Name: "Zinc", Quantity: "1", Time: "12:00"}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.FindByUserID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewTestDB(t))

	u := &entity.User{Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// email is unique
	assert.Error(t, repo.Create(ctx, &entity.User{Email: "a@example.com", PasswordHash: "y"}))

	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestConnectionHelpers(t *testing.T) {
	db := NewTestDB(t)
	assert.Equal(t, "SQLite", Backend(db))
	assert.NoError(t, Pinger(db)(context.Background()))
}
