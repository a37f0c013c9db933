package models

import "time"

// Terminal is an airport terminal building.
type Terminal struct {
	ID          int64     `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// GateType distinguishes jetbridge, remote and flexible gates.
type GateType string

const (
	GateContact GateType = "CONTACT"
	GateRemote  GateType = "REMOTE"
	GateBoth    GateType = "BOTH"
)

// Gate is a passenger boarding gate attached to a terminal.
type Gate struct {
	ID                int64     `db:"id" json:"id"`
	Code              string    `db:"code" json:"code"`
	TerminalID        int64     `db:"terminal_id" json:"terminal_id"`
	GateType          GateType  `db:"gate_type" json:"gate_type"`
	MaxWingspanMeters *float64  `db:"max_wingspan_meters" json:"max_wingspan_meters,omitempty"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	IsAvailable       bool      `db:"is_available" json:"is_available"`
	Notes             *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// StandSize is the ICAO aerodrome reference code letter for a stand.
type StandSize string

const (
	StandSizeA StandSize = "A"
	StandSizeB StandSize = "B"
	StandSizeC StandSize = "C"
	StandSizeD StandSize = "D"
	StandSizeE StandSize = "E"
	StandSizeF StandSize = "F"
)

// Stand is an aircraft parking position.
type Stand struct {
	ID                int64     `db:"id" json:"id"`
	Code              string    `db:"code" json:"code"`
	SizeCode          StandSize `db:"size_code" json:"size_code"`
	MaxWingspanMeters float64   `db:"max_wingspan_meters" json:"max_wingspan_meters"`
	HasPushback       bool      `db:"has_pushback" json:"has_pushback"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	IsAvailable       bool      `db:"is_available" json:"is_available"`
	Notes             *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// CheckInCounter is a check-in desk grouped per terminal.
type CheckInCounter struct {
	ID           int64     `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	TerminalID   int64     `db:"terminal_id" json:"terminal_id"`
	CounterGroup *string   `db:"counter_group" json:"counter_group,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsAvailable  bool      `db:"is_available" json:"is_available"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// BaggageCarousel is a baggage claim belt.
type BaggageCarousel struct {
	ID          int64     `db:"id" json:"id"`
	Code        string    `db:"code" json:"code"`
	TerminalID  int64     `db:"terminal_id" json:"terminal_id"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	IsAvailable bool      `db:"is_available" json:"is_available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// RunwaySurface enumerates runway surface types.
type RunwaySurface string

const (
	SurfaceConcrete RunwaySurface = "CONCRETE"
	SurfaceAsphalt  RunwaySurface = "ASPHALT"
	SurfaceGrass    RunwaySurface = "GRASS"
)

// Runway is a runway configuration, e.g. 09L/27R.
type Runway struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	LengthMeters int           `db:"length_meters" json:"length_meters"`
	WidthMeters  int           `db:"width_meters" json:"width_meters"`
	Surface      RunwaySurface `db:"surface" json:"surface"`
	IsActive     bool          `db:"is_active" json:"is_active"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}
