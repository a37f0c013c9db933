package models

import "time"

// Airport is global reference data used as flight origin/destination.
type Airport struct {
	ID        int64     `db:"id" json:"id"`
	IATACode  string    `db:"iata_code" json:"iata_code"`
	ICAOCode  string    `db:"icao_code" json:"icao_code"`
	Name      string    `db:"name" json:"name"`
	City      string    `db:"city" json:"city"`
	Country   string    `db:"country" json:"country"`
	Latitude  *float64  `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64  `db:"longitude" json:"longitude,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AirportFilter captures list criteria for airports.
type AirportFilter struct {
	Active   *bool
	Search   string
	Country  string
	Page     int
	PageSize int
}
