package models

import (
	"fmt"
	"time"
)

// FlightStatus is the operational state of a daily flight. Transitions are
// driven by the operations surface; the generation and propagation engines
// only ever write StatusScheduled at creation.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "SCH"
	StatusOffBlock  FlightStatus = "OFB"
	StatusAirborne  FlightStatus = "AIR"
	StatusLanded    FlightStatus = "LND"
	StatusOnBlock   FlightStatus = "ONB"
	StatusFirstBag  FlightStatus = "FIB"
	StatusLastBag   FlightStatus = "LSB"
	StatusCancelled FlightStatus = "CXX"
	StatusDiverted  FlightStatus = "DIV"
)

// Valid reports whether the status is a known code.
func (s FlightStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusOffBlock, StatusAirborne, StatusLanded,
		StatusOnBlock, StatusFirstBag, StatusLastBag, StatusCancelled, StatusDiverted:
		return true
	}
	return false
}

// DeriveFlightID builds the deterministic daily flight identifier
// YYYYMMDD-<AIRLINE><NUMBER>. It is the idempotency key for generation:
// the same date and series always map to the same identifier.
func DeriveFlightID(date time.Time, airlineIATA, flightNumber string) string {
	return fmt.Sprintf("%s-%s%s", date.Format("20060102"), airlineIATA, flightNumber)
}

// ScheduledTimes anchors a series' departure and arrival clock times on a
// date of operation. When the arrival clock time is earlier than the
// departure clock time the flight lands the next calendar day.
func ScheduledTimes(date time.Time, stod, stoa TimeOfDay) (time.Time, time.Time) {
	dep := stod.At(date)
	arr := stoa.At(date)
	if stoa.Before(stod) {
		arr = stoa.At(date.AddDate(0, 0, 1))
	}
	return dep, arr
}

// DailyFlight is one concrete flight operation on one calendar date,
// generated from a seasonal series or created ad hoc.
type DailyFlight struct {
	FlightID       string `db:"flight_id" json:"flight_id"`
	ScheduleID     *int64 `db:"schedule_id" json:"schedule_id,omitempty"`
	AirlineID      int64  `db:"airline_id" json:"airline_id"`
	FlightNumber   string `db:"flight_number" json:"flight_number"`
	OriginID       int64  `db:"origin_id" json:"origin_id"`
	DestinationID  int64  `db:"destination_id" json:"destination_id"`
	AircraftTypeID int64  `db:"aircraft_type_id" json:"aircraft_type_id"`
	ServiceType    string `db:"service_type" json:"service_type"`

	DateOfOperation time.Time    `db:"date_of_operation" json:"date_of_operation"`
	Registration    string       `db:"registration" json:"registration,omitempty"`
	Status          FlightStatus `db:"status" json:"status"`

	// Departure timings.
	STOD time.Time  `db:"stod" json:"stod"`
	ETOD *time.Time `db:"etod" json:"etod,omitempty"`
	AOBT *time.Time `db:"aobt" json:"aobt,omitempty"`
	ATOD *time.Time `db:"atod" json:"atod,omitempty"`

	// Arrival timings.
	STOA time.Time  `db:"stoa" json:"stoa"`
	ETOA *time.Time `db:"etoa" json:"etoa,omitempty"`
	ATOA *time.Time `db:"atoa" json:"atoa,omitempty"`
	AIBT *time.Time `db:"aibt" json:"aibt,omitempty"`

	// Resource references. Referenced only; capacity is not scheduled here.
	GateID     *int64 `db:"gate_id" json:"gate_id,omitempty"`
	StandID    *int64 `db:"stand_id" json:"stand_id,omitempty"`
	CarouselID *int64 `db:"carousel_id" json:"carousel_id,omitempty"`

	PublicRemark string `db:"public_remark" json:"public_remark,omitempty"`

	// Propagation bookkeeping. Once IsManuallyModified is set the engines
	// never touch the schedule-derived fields again.
	IsManuallyModified bool       `db:"is_manually_modified" json:"is_manually_modified"`
	ScheduleVersion    int        `db:"schedule_version" json:"schedule_version"`
	LastPropagatedAt   *time.Time `db:"last_propagated_at" json:"last_propagated_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Joined read-only display fields.
	AirlineIATA     string `db:"airline_iata" json:"airline_iata,omitempty"`
	OriginIATA      string `db:"origin_iata" json:"origin_iata,omitempty"`
	DestinationIATA string `db:"destination_iata" json:"destination_iata,omitempty"`
	AircraftICAO    string `db:"aircraft_icao" json:"aircraft_icao,omitempty"`
}

// DailyFlightFilter captures list criteria for daily flights.
type DailyFlightFilter struct {
	Date       *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
	AirlineID  *int64
	Status     FlightStatus
	ManualOnly bool
	Search     string
	Page       int
	PageSize   int
}

// DailyOpsStats aggregates one day of operations for the dashboard.
type DailyOpsStats struct {
	Date             time.Time      `json:"date"`
	TotalFlights     int            `json:"total_flights"`
	ByStatus         map[string]int `json:"by_status"`
	ManuallyModified int            `json:"manually_modified"`
	AutoManaged      int            `json:"auto_managed"`
	GeneratedAt      time.Time      `json:"generated_at"`
}
