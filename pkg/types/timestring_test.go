package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"", "9:30:00:00", "25:00", "10:61", "abc"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", invalid)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	shifted, err := ts.AddMinutes(90)
	assert.NoError(t, err)
	assert.Equal(t, "11:30", shifted.String())

	// Переход через полночь запрещен
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	assert.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, "10:00", ts.String())

	// Postgres возвращает тип time с секундами
	assert.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	assert.NoError(t, ts.Scan([]byte("09:15:27")))
	assert.Equal(t, "09:15", ts.String())

	assert.NoError(t, ts.Scan(time.Date(2026, 3, 15, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, "18:45", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("10:00").Value()
	assert.NoError(t, err)
	assert.Equal(t, "10:00", value)

	_, err = TimeString("garbage").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
