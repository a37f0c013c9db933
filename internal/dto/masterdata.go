package dto

// AirlineRequest creates or updates a carrier.
type AirlineRequest struct {
	IATACode     string  `json:"iata_code" validate:"required,len=2"`
	ICAOCode     string  `json:"icao_code" validate:"required,len=3"`
	Name         string  `json:"name" validate:"required,min=2,max=120"`
	Country      string  `json:"country" validate:"required,min=2,max=80"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=32"`
	IsActive     *bool   `json:"is_active"`
}

// AirportRequest creates or updates an airport.
type AirportRequest struct {
	IATACode  string   `json:"iata_code" validate:"required,len=3"`
	ICAOCode  string   `json:"icao_code" validate:"required,len=4"`
	Name      string   `json:"name" validate:"required,min=2,max=120"`
	City      string   `json:"city" validate:"required,min=1,max=80"`
	Country   string   `json:"country" validate:"required,min=2,max=80"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	IsActive  *bool    `json:"is_active"`
}

// AircraftTypeRequest creates or updates an equipment type.
type AircraftTypeRequest struct {
	ICAOCode           string  `json:"icao_code" validate:"required,min=2,max=4"`
	IATACode           *string `json:"iata_code" validate:"omitempty,len=3"`
	Manufacturer       string  `json:"manufacturer" validate:"required,min=2,max=80"`
	Model              string  `json:"model" validate:"required,min=1,max=80"`
	WakeTurbulence     string  `json:"wake_turbulence" validate:"required,oneof=L M H J"`
	SizeCategory       string  `json:"size_category" validate:"required,oneof=NB WB RJ"`
	WingspanMeters     float64 `json:"wingspan_meters" validate:"required,gt=0"`
	LengthMeters       float64 `json:"length_meters" validate:"required,gt=0"`
	MaxTakeoffWeightKg int     `json:"max_takeoff_weight_kg" validate:"required,gt=0"`
	TypicalCapacity    int     `json:"typical_capacity" validate:"required,gt=0"`
	IsActive           *bool   `json:"is_active"`
}

// TerminalRequest creates or updates a terminal.
type TerminalRequest struct {
	Code        string  `json:"code" validate:"required,min=1,max=10"`
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// GateRequest creates or updates a gate.
type GateRequest struct {
	Code              string   `json:"code" validate:"required,min=1,max=10"`
	TerminalID        int64    `json:"terminal_id" validate:"required"`
	GateType          string   `json:"gate_type" validate:"required,oneof=CONTACT REMOTE BOTH"`
	MaxWingspanMeters *float64 `json:"max_wingspan_meters" validate:"omitempty,gt=0"`
	IsActive          *bool    `json:"is_active"`
	IsAvailable       *bool    `json:"is_available"`
	Notes             *string  `json:"notes" validate:"omitempty,max=500"`
}

// StandRequest creates or updates a stand.
type StandRequest struct {
	Code              string  `json:"code" validate:"required,min=1,max=10"`
	SizeCode          string  `json:"size_code" validate:"required,oneof=A B C D E F"`
	MaxWingspanMeters float64 `json:"max_wingspan_meters" validate:"required,gt=0"`
	HasPushback       bool    `json:"has_pushback"`
	IsActive          *bool   `json:"is_active"`
	IsAvailable       *bool   `json:"is_available"`
	Notes             *string `json:"notes" validate:"omitempty,max=500"`
}

// CounterRequest creates a check-in counter.
type CounterRequest struct {
	Code         string  `json:"code" validate:"required,min=1,max=10"`
	TerminalID   int64   `json:"terminal_id" validate:"required"`
	CounterGroup *string `json:"counter_group" validate:"omitempty,max=40"`
	IsActive     *bool   `json:"is_active"`
	IsAvailable  *bool   `json:"is_available"`
}

// CarouselRequest creates a baggage carousel.
type CarouselRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=10"`
	TerminalID  int64  `json:"terminal_id" validate:"required"`
	IsActive    *bool  `json:"is_active"`
	IsAvailable *bool  `json:"is_available"`
}

// RunwayRequest creates a runway.
type RunwayRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=10"`
	LengthMeters int    `json:"length_meters" validate:"required,gt=0"`
	WidthMeters  int    `json:"width_meters" validate:"required,gt=0"`
	Surface      string `json:"surface" validate:"required,oneof=CONCRETE ASPHALT GRASS"`
	IsActive     *bool  `json:"is_active"`
}

// AvailabilityRequest toggles a resource in or out of service.
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}
