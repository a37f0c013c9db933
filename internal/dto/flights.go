package dto

// SeasonalFlightRequest creates or updates a recurring flight series.
// Dates use YYYY-MM-DD, times of day use HH:MM.
type SeasonalFlightRequest struct {
	AirlineID       int64  `json:"airline_id" validate:"required"`
	FlightNumber    string `json:"flight_number" validate:"required,min=1,max=4,numeric"`
	OriginID        int64  `json:"origin_id" validate:"required"`
	DestinationID   int64  `json:"destination_id" validate:"required,nefield=OriginID"`
	AircraftTypeID  int64  `json:"aircraft_type_id" validate:"required"`
	ServiceType     string `json:"service_type" validate:"required,oneof=J C F P"`
	STOD            string `json:"stod" validate:"required"`
	STOA            string `json:"stoa" validate:"required"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02"`
	DaysOfOperation string `json:"days_of_operation" validate:"required,min=1,max=7"`
	IsActive        *bool  `json:"is_active"`
}

// AdhocFlightRequest creates a one-off daily flight outside any series.
type AdhocFlightRequest struct {
	AirlineID       int64   `json:"airline_id" validate:"required"`
	FlightNumber    string  `json:"flight_number" validate:"required,min=1,max=4,numeric"`
	OriginID        int64   `json:"origin_id" validate:"required"`
	DestinationID   int64   `json:"destination_id" validate:"required,nefield=OriginID"`
	AircraftTypeID  int64   `json:"aircraft_type_id" validate:"required"`
	ServiceType     string  `json:"service_type" validate:"required,oneof=J C F P"`
	DateOfOperation string  `json:"date_of_operation" validate:"required,datetime=2006-01-02"`
	STOD            string  `json:"stod" validate:"required"`
	STOA            string  `json:"stoa" validate:"required"`
	Registration    *string `json:"registration" validate:"omitempty,max=10"`
	GateID          *int64  `json:"gate_id"`
	StandID         *int64  `json:"stand_id"`
	CarouselID      *int64  `json:"carousel_id"`
	PublicRemark    *string `json:"public_remark" validate:"omitempty,max=200"`
}

// FlightOperationalUpdate is an operator edit to one daily flight. Any
// field applied here marks the flight as manually modified, fencing it
// off from future propagation.
type FlightOperationalUpdate struct {
	Registration *string `json:"registration" validate:"omitempty,max=10"`
	Status       *string `json:"status" validate:"omitempty"`
	ETOD         *string `json:"etod"`
	AOBT         *string `json:"aobt"`
	ATOD         *string `json:"atod"`
	ETOA         *string `json:"etoa"`
	ATOA         *string `json:"atoa"`
	AIBT         *string `json:"aibt"`
	GateID       *int64  `json:"gate_id"`
	StandID      *int64  `json:"stand_id"`
	CarouselID   *int64  `json:"carousel_id"`
	PublicRemark *string `json:"public_remark" validate:"omitempty,max=200"`
}

// StatusUpdateRequest moves a flight through its lifecycle.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
