package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, backing the STOD/STOA
// columns of a seasonal flight (Postgres TIME).
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts "15:04" or "15:04:05" input.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", raw)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before compares clock times only.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// At anchors the clock time on the given calendar date (UTC).
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, time.UTC)
}

// Scan implements sql.Scanner. lib/pq surfaces TIME columns as time.Time
// or raw bytes depending on the driver path.
func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		t.Hour = v.Hour()
		t.Minute = v.Minute()
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case nil:
		*t = TimeOfDay{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute), nil
}

// MarshalJSON renders the compact HH:MM form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the compact HH:MM form.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
