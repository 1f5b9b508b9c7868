package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	got, err := store.Get(ctx, "+79990000001")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := domain.NewAwaitingDateState()
	require.NoError(t, store.Put(ctx, "+79990000001", state))

	got, err = store.Get(ctx, "+79990000001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StepAwaitingDate, got.Step)

	require.NoError(t, store.Delete(ctx, "+79990000001"))

	got, err = store.Get(ctx, "+79990000001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore(24 * time.Hour)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, "+79990000002", domain.NewAwaitingDateState()))

	// За минуту до истечения сессия жива
	current = current.Add(24*time.Hour - time.Minute)
	got, err := store.Get(ctx, "+79990000002")
	require.NoError(t, err)
	assert.NotNil(t, got)

	// Отметку времени обновляет только Put
	current = current.Add(2 * time.Minute)
	got, err = store.Get(ctx, "+79990000002")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ExpiredSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore(24 * time.Hour)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, "+79990000003", domain.NewAwaitingDateState()))

	current = current.Add(25 * time.Hour)
	got, err := store.Get(ctx, "+79990000003")
	require.NoError(t, err)
	assert.Nil(t, got)
}
