package models

import "time"

// WakeTurbulence categorises aircraft by wake separation class.
type WakeTurbulence string

const (
	WakeLight  WakeTurbulence = "L"
	WakeMedium WakeTurbulence = "M"
	WakeHeavy  WakeTurbulence = "H"
	WakeSuper  WakeTurbulence = "J"
)

// SizeCategory groups aircraft by fuselage class.
type SizeCategory string

const (
	SizeNarrowBody  SizeCategory = "NB"
	SizeWideBody    SizeCategory = "WB"
	SizeRegionalJet SizeCategory = "RJ"
)

// AircraftType is an equipment type and its physical specification.
type AircraftType struct {
	ID                 int64          `db:"id" json:"id"`
	ICAOCode           string         `db:"icao_code" json:"icao_code"`
	IATACode           *string        `db:"iata_code" json:"iata_code,omitempty"`
	Manufacturer       string         `db:"manufacturer" json:"manufacturer"`
	Model              string         `db:"model" json:"model"`
	WakeTurbulence     WakeTurbulence `db:"wake_turbulence" json:"wake_turbulence"`
	SizeCategory       SizeCategory   `db:"size_category" json:"size_category"`
	WingspanMeters     float64        `db:"wingspan_meters" json:"wingspan_meters"`
	LengthMeters       float64        `db:"length_meters" json:"length_meters"`
	MaxTakeoffWeightKg int            `db:"max_takeoff_weight_kg" json:"max_takeoff_weight_kg"`
	TypicalCapacity    int            `db:"typical_capacity" json:"typical_capacity"`
	IsActive           bool           `db:"is_active" json:"is_active"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// AircraftTypeFilter captures list criteria for aircraft types.
type AircraftTypeFilter struct {
	Active   *bool
	Search   string
	Page     int
	PageSize int
}
