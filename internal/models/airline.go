package models

import "time"

// Airline is a carrier operating at the airport.
type Airline struct {
	ID           int64     `db:"id" json:"id"`
	IATACode     string    `db:"iata_code" json:"iata_code"`
	ICAOCode     string    `db:"icao_code" json:"icao_code"`
	Name         string    `db:"name" json:"name"`
	Country      string    `db:"country" json:"country"`
	ContactEmail *string   `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// AirlineFilter captures list criteria for airlines.
type AirlineFilter struct {
	Active   *bool
	Search   string
	Page     int
	PageSize int
}
