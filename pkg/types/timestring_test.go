package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "10:00", next.String())

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", next.String())

	// 23:30 + 60 пересекает полночь
	late, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)
	_, err = late.AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	a, _ := NewTimeStringFromString("09:00")
	b, _ := NewTimeStringFromString("17:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, "14:00", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, "11:45", ts.String())

	assert.Error(t, ts.Scan(42))
}
