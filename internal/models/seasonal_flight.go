package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DaysOfOperation is the weekday mask of a flight series in compact string
// form, e.g. "135" for Monday/Wednesday/Friday (ISO weekdays, 1=Monday).
// It is always held in validated, sorted, duplicate-free form; use
// ParseDaysOfOperation rather than casting raw input.
type DaysOfOperation string

// ParseDaysOfOperation validates and normalises a weekday mask.
func ParseDaysOfOperation(raw string) (DaysOfOperation, error) {
	if raw == "" {
		return "", fmt.Errorf("days of operation must not be empty")
	}
	seen := make(map[rune]bool, 7)
	for _, r := range raw {
		if r < '1' || r > '7' {
			return "", fmt.Errorf("days of operation %q: %q is not a weekday digit 1-7", raw, string(r))
		}
		if seen[r] {
			return "", fmt.Errorf("days of operation %q: duplicate day %q", raw, string(r))
		}
		seen[r] = true
	}
	digits := strings.Split(raw, "")
	sort.Strings(digits)
	return DaysOfOperation(strings.Join(digits, "")), nil
}

// Contains reports whether the mask includes the given ISO weekday (1-7).
// Membership is checked digit by digit, never by substring.
func (d DaysOfOperation) Contains(isoWeekday int) bool {
	if isoWeekday < 1 || isoWeekday > 7 {
		return false
	}
	target := rune('0' + isoWeekday)
	for _, r := range d {
		if r == target {
			return true
		}
	}
	return false
}

// Weekdays returns the mask as a slice of ISO weekday numbers.
func (d DaysOfOperation) Weekdays() []int {
	days := make([]int, 0, len(d))
	for _, r := range d {
		days = append(days, int(r-'0'))
	}
	return days
}

// ISOWeekday returns the ISO weekday (1=Monday..7=Sunday) of a date.
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SeasonalFlight is a recurring flight series over a validity window,
// corresponding to SSIM type 3/4 records. It never materialises daily
// flights on its own; that is the generation engine's job.
type SeasonalFlight struct {
	ID              int64           `db:"id" json:"id"`
	AirlineID       int64           `db:"airline_id" json:"airline_id"`
	FlightNumber    string          `db:"flight_number" json:"flight_number"`
	OriginID        int64           `db:"origin_id" json:"origin_id"`
	DestinationID   int64           `db:"destination_id" json:"destination_id"`
	AircraftTypeID  int64           `db:"aircraft_type_id" json:"aircraft_type_id"`
	ServiceType     string          `db:"service_type" json:"service_type"`
	STOD            TimeOfDay       `db:"stod" json:"stod"`
	STOA            TimeOfDay       `db:"stoa" json:"stoa"`
	StartDate       time.Time       `db:"start_date" json:"start_date"`
	EndDate         time.Time       `db:"end_date" json:"end_date"`
	DaysOfOperation DaysOfOperation `db:"days_of_operation" json:"days_of_operation"`
	IsActive        bool            `db:"is_active" json:"is_active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`

	// Joined read-only display fields.
	AirlineIATA     string `db:"airline_iata" json:"airline_iata,omitempty"`
	OriginIATA      string `db:"origin_iata" json:"origin_iata,omitempty"`
	DestinationIATA string `db:"destination_iata" json:"destination_iata,omitempty"`
	AircraftICAO    string `db:"aircraft_icao" json:"aircraft_icao,omitempty"`
}

// Designator is the airline-prefixed flight number, e.g. TG920.
func (s *SeasonalFlight) Designator() string {
	return s.AirlineIATA + s.FlightNumber
}

// OperatesOn reports whether the series flies on the given date.
func (s *SeasonalFlight) OperatesOn(date time.Time) bool {
	if date.Before(s.StartDate) || date.After(s.EndDate) {
		return false
	}
	return s.DaysOfOperation.Contains(ISOWeekday(date))
}

// SeasonalFlightFilter captures list criteria for seasonal flights.
type SeasonalFlightFilter struct {
	Active    *bool
	AirlineID *int64
	Search    string
	Page      int
	PageSize  int
}
