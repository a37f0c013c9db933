package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDaysOfOperation(t *testing.T) {
	mask, err := ParseDaysOfOperation("531")
	require.NoError(t, err)
	assert.Equal(t, DaysOfOperation("135"), mask)
	assert.Equal(t, []int{1, 3, 5}, mask.Weekdays())
}

func TestParseDaysOfOperationRejectsInvalid(t *testing.T) {
	cases := []string{"", "0", "8", "12a", "11", "1234567 "}
	for _, raw := range cases {
		_, err := ParseDaysOfOperation(raw)
		assert.Error(t, err, "mask %q should be rejected", raw)
	}
}

func TestDaysOfOperationContains(t *testing.T) {
	mask, err := ParseDaysOfOperation("135")
	require.NoError(t, err)

	assert.True(t, mask.Contains(1))
	assert.True(t, mask.Contains(3))
	assert.True(t, mask.Contains(5))
	assert.False(t, mask.Contains(2))
	assert.False(t, mask.Contains(7))
	assert.False(t, mask.Contains(0))
	assert.False(t, mask.Contains(8))
}

func TestISOWeekday(t *testing.T) {
	// 2025-10-27 is a Monday.
	monday := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, ISOWeekday(monday))
	sunday := monday.AddDate(0, 0, 6)
	assert.Equal(t, 7, ISOWeekday(sunday))
}

func TestSeasonalFlightOperatesOn(t *testing.T) {
	series := &SeasonalFlight{
		StartDate:       time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),
		DaysOfOperation: "135",
	}

	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	assert.True(t, series.OperatesOn(monday))
	assert.False(t, series.OperatesOn(tuesday))

	beforeStart := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	afterEnd := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, series.OperatesOn(beforeStart))
	assert.False(t, series.OperatesOn(afterEnd))
}
