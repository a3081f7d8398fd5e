package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hearth-home-server/models"
)

func seedOne(t *testing.T) *MemoryListingStore {
	t.Helper()
	store := NewMemoryListingStore()
	store.Seed([]models.Listing{{
		Model:  gorm.Model{ID: 1, CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		Title:  "Sunny Garden Bedsitter",
		Kind:   models.KindRent,
		Status: models.StatusActive,
	}})
	return store
}

func TestApplyModerationIsCompareAndSet(t *testing.T) {
	store := seedOne(t)

	ok, err := store.ApplyModeration(context.Background(), 1, 0, 1, models.StatusActive)
	require.NoError(t, err)
	assert.True(t, ok)

	// Stale expectation: nothing is written.
	ok, err = store.ApplyModeration(context.Background(), 1, 0, 1, models.StatusSuspended)
	require.NoError(t, err)
	assert.False(t, ok)

	l, err := store.FetchListingByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.ReportCount)
	assert.Equal(t, models.StatusActive, l.Status)
}

func TestInsertResetsModerationLifecycle(t *testing.T) {
	store := NewMemoryListingStore()
	listing := models.Listing{
		Title:       "Modern Micro-Studio",
		Kind:        models.KindRent,
		Status:      models.StatusSuspended, // must be ignored
		ReportCount: 5,
		Views:       9,
	}
	require.NoError(t, store.Insert(context.Background(), &listing))
	assert.NotZero(t, listing.ID)

	stored, err := store.FetchListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.Equal(t, 0, stored.ReportCount)
	assert.Equal(t, 0, stored.Views)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestFetchListingByIDReturnsCopies(t *testing.T) {
	store := seedOne(t)

	first, err := store.FetchListingByID(context.Background(), 1)
	require.NoError(t, err)
	first.Status = models.StatusSuspended

	second, err := store.FetchListingByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, second.Status)
}

func TestIncrementViews(t *testing.T) {
	store := seedOne(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementViews(context.Background(), 1))
	}
	l, err := store.FetchListingByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Views)

	assert.ErrorIs(t, store.IncrementViews(context.Background(), 42), ErrNotFound)
}

func TestPersistReportRequiresListing(t *testing.T) {
	store := seedOne(t)

	err := store.PersistReport(context.Background(), &models.Report{ListingID: 42, Reason: "spam"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.Reports())
}
