package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFlightID(t *testing.T) {
	date := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "20251027-TG920", DeriveFlightID(date, "TG", "920"))
	assert.Equal(t, "20251027-SQ12", DeriveFlightID(date, "SQ", "12"))
}

func TestScheduledTimesSameDay(t *testing.T) {
	date := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	dep, arr := ScheduledTimes(date, TimeOfDay{Hour: 8}, TimeOfDay{Hour: 10, Minute: 30})

	assert.Equal(t, time.Date(2025, 10, 27, 8, 0, 0, 0, time.UTC), dep)
	assert.Equal(t, time.Date(2025, 10, 27, 10, 30, 0, 0, time.UTC), arr)
}

func TestScheduledTimesOvernight(t *testing.T) {
	date := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	dep, arr := ScheduledTimes(date, TimeOfDay{Hour: 23, Minute: 30}, TimeOfDay{Hour: 1})

	assert.Equal(t, time.Date(2025, 10, 27, 23, 30, 0, 0, time.UTC), dep)
	assert.Equal(t, time.Date(2025, 10, 28, 1, 0, 0, 0, time.UTC), arr)
}

func TestScheduledTimesEqualClockTimes(t *testing.T) {
	// Equal departure and arrival clock times stay on the same day.
	date := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	dep, arr := ScheduledTimes(date, TimeOfDay{Hour: 12}, TimeOfDay{Hour: 12})
	assert.Equal(t, dep, arr)
}

func TestFlightStatusValid(t *testing.T) {
	for _, s := range []FlightStatus{StatusScheduled, StatusOffBlock, StatusAirborne, StatusLanded, StatusOnBlock, StatusFirstBag, StatusLastBag, StatusCancelled, StatusDiverted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, FlightStatus("XXX").Valid())
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 23, 50, 0, 0, time.UTC)))
	assert.Equal(t, TimeOfDay{Hour: 23, Minute: 50}, tod)

	require.NoError(t, tod.Scan([]byte("07:20:00")))
	assert.Equal(t, TimeOfDay{Hour: 7, Minute: 20}, tod)

	require.NoError(t, tod.Scan("08:15"))
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 15}, tod)

	assert.Error(t, tod.Scan(42))
}

func TestTimeOfDayValue(t *testing.T) {
	v, err := TimeOfDay{Hour: 23, Minute: 5}.Value()
	require.NoError(t, err)
	assert.Equal(t, "23:05:00", v)
}

func TestTimeOfDayBefore(t *testing.T) {
	assert.True(t, TimeOfDay{Hour: 1}.Before(TimeOfDay{Hour: 23, Minute: 30}))
	assert.False(t, TimeOfDay{Hour: 23, Minute: 30}.Before(TimeOfDay{Hour: 1}))
	assert.False(t, TimeOfDay{Hour: 12}.Before(TimeOfDay{Hour: 12}))
}
