package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "OSAMS API",
        "description": "Operational schedule and master data service for airport flight planning",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Login and profile"},
        {"name": "Airlines", "description": "Airline master data"},
        {"name": "Airports", "description": "Airport master data"},
        {"name": "AircraftTypes", "description": "Aircraft type master data"},
        {"name": "Infrastructure", "description": "Terminals, gates, stands, counters, carousels, runways"},
        {"name": "SeasonalFlights", "description": "Seasonal schedule patterns"},
        {"name": "DailyFlights", "description": "Materialised daily flights"},
        {"name": "FlightOps", "description": "Generation and propagation engines"},
        {"name": "Dashboard", "description": "Daily operations overview"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and receive a JWT",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "tags": ["Auth"],
                "summary": "Authenticated user's profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/airlines": {
            "get": {
                "tags": ["Airlines"],
                "summary": "List airlines",
                "parameters": [
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Airlines"],
                "summary": "Create airline",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AirlineRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/airlines/{id}": {
            "get": {
                "tags": ["Airlines"],
                "summary": "Get airline",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Airlines"],
                "summary": "Update airline",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AirlineRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Airlines"],
                "summary": "Deactivate airline",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/airports": {
            "get": {
                "tags": ["Airports"],
                "summary": "List airports",
                "parameters": [
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "country", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Airports"],
                "summary": "Create airport",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AirportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/airports/{id}": {
            "get": {
                "tags": ["Airports"],
                "summary": "Get airport",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Airports"],
                "summary": "Update airport",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AirportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Airports"],
                "summary": "Deactivate airport",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/aircraft-types": {
            "get": {
                "tags": ["AircraftTypes"],
                "summary": "List aircraft types",
                "parameters": [
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["AircraftTypes"],
                "summary": "Create aircraft type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AircraftTypeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/aircraft-types/{id}": {
            "get": {
                "tags": ["AircraftTypes"],
                "summary": "Get aircraft type",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["AircraftTypes"],
                "summary": "Update aircraft type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AircraftTypeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["AircraftTypes"],
                "summary": "Deactivate aircraft type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/infrastructure/terminals": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List terminals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create terminal",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/infrastructure/gates": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List gates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create gate",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/infrastructure/gates/{id}/availability": {
            "put": {
                "tags": ["Infrastructure"],
                "summary": "Toggle gate availability",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/infrastructure/stands": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List stands",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create stand",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/infrastructure/stands/{id}/availability": {
            "put": {
                "tags": ["Infrastructure"],
                "summary": "Toggle stand availability",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AvailabilityRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/infrastructure/counters": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List check-in counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create check-in counter",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/infrastructure/carousels": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List baggage carousels",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create baggage carousel",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/infrastructure/runways": {
            "get": {
                "tags": ["Infrastructure"],
                "summary": "List runways",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Infrastructure"],
                "summary": "Create runway",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/seasonal-flights": {
            "get": {
                "tags": ["SeasonalFlights"],
                "summary": "List seasonal flights",
                "parameters": [
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "airline_id", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["SeasonalFlights"],
                "summary": "Create seasonal flight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SeasonalFlightRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/seasonal-flights/{id}": {
            "get": {
                "tags": ["SeasonalFlights"],
                "summary": "Get seasonal flight",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["SeasonalFlights"],
                "summary": "Update seasonal flight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SeasonalFlightRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["SeasonalFlights"],
                "summary": "Delete seasonal flight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/seasonal-flights/{id}/deactivate": {
            "post": {
                "tags": ["SeasonalFlights"],
                "summary": "Deactivate seasonal flight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/daily-flights": {
            "get": {
                "tags": ["DailyFlights"],
                "summary": "List daily flights",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "date_from", "in": "query", "type": "string"},
                    {"name": "date_to", "in": "query", "type": "string"},
                    {"name": "airline_id", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "manual_only", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["DailyFlights"],
                "summary": "Create ad-hoc flight",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdhocFlightRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/daily-flights/{flight_id}": {
            "get": {
                "tags": ["DailyFlights"],
                "summary": "Get daily flight",
                "parameters": [
                    {"name": "flight_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["DailyFlights"],
                "summary": "Apply operational update",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "flight_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FlightOperationalUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/daily-flights/{flight_id}/status": {
            "put": {
                "tags": ["DailyFlights"],
                "summary": "Update flight status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "flight_id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StatusUpdateRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/daily-flights/export/csv": {
            "get": {
                "tags": ["DailyFlights"],
                "summary": "Export daily sheet as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/daily-flights/export/pdf": {
            "get": {
                "tags": ["DailyFlights"],
                "summary": "Export daily sheet as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF payload"}
                }
            }
        },
        "/flight-ops/generate": {
            "post": {
                "tags": ["FlightOps"],
                "summary": "Generate daily flights from seasonal patterns",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Run report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/flight-ops/propagate": {
            "post": {
                "tags": ["FlightOps"],
                "summary": "Propagate pattern changes to future daily flights",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PropagateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Run report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Today's operations summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Metric exposition"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "AirlineRequest": {
            "type": "object",
            "properties": {
                "iata_code": {"type": "string"},
                "icao_code": {"type": "string"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "contact_email": {"type": "string"},
                "contact_phone": {"type": "string"},
                "is_active": {"type": "boolean"}
            },
            "required": ["iata_code", "icao_code", "name", "country"]
        },
        "AirportRequest": {
            "type": "object",
            "properties": {
                "iata_code": {"type": "string"},
                "icao_code": {"type": "string"},
                "name": {"type": "string"},
                "city": {"type": "string"},
                "country": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "is_active": {"type": "boolean"}
            },
            "required": ["iata_code", "icao_code", "name", "city", "country"]
        },
        "AircraftTypeRequest": {
            "type": "object",
            "properties": {
                "icao_code": {"type": "string"},
                "iata_code": {"type": "string"},
                "manufacturer": {"type": "string"},
                "model": {"type": "string"},
                "wake_turbulence": {"type": "string", "enum": ["L", "M", "H", "J"]},
                "size_category": {"type": "string", "enum": ["NB", "WB", "RJ"]},
                "wingspan_meters": {"type": "number"},
                "length_meters": {"type": "number"},
                "max_takeoff_weight_kg": {"type": "integer"},
                "typical_capacity": {"type": "integer"},
                "is_active": {"type": "boolean"}
            },
            "required": ["icao_code", "manufacturer", "model", "wake_turbulence", "size_category"]
        },
        "AvailabilityRequest": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"}
            },
            "required": ["available"]
        },
        "SeasonalFlightRequest": {
            "type": "object",
            "properties": {
                "airline_id": {"type": "integer"},
                "flight_number": {"type": "string"},
                "origin_id": {"type": "integer"},
                "destination_id": {"type": "integer"},
                "aircraft_type_id": {"type": "integer"},
                "service_type": {"type": "string"},
                "stod": {"type": "string", "example": "23:40"},
                "stoa": {"type": "string", "example": "05:25"},
                "days_of_operation": {"type": "string", "example": "1234567"},
                "start_date": {"type": "string", "example": "2025-10-01"},
                "end_date": {"type": "string", "example": "2026-03-28"},
                "is_active": {"type": "boolean"}
            },
            "required": ["airline_id", "flight_number", "origin_id", "destination_id", "aircraft_type_id", "service_type", "stod", "stoa", "days_of_operation", "start_date", "end_date"]
        },
        "AdhocFlightRequest": {
            "type": "object",
            "properties": {
                "airline_id": {"type": "integer"},
                "flight_number": {"type": "string"},
                "origin_id": {"type": "integer"},
                "destination_id": {"type": "integer"},
                "aircraft_type_id": {"type": "integer"},
                "service_type": {"type": "string"},
                "date_of_operation": {"type": "string", "example": "2025-11-10"},
                "stod": {"type": "string", "example": "14:30"},
                "stoa": {"type": "string", "example": "18:05"},
                "registration": {"type": "string"},
                "gate_id": {"type": "integer"},
                "stand_id": {"type": "integer"},
                "carousel_id": {"type": "integer"},
                "public_remark": {"type": "string"}
            },
            "required": ["airline_id", "flight_number", "origin_id", "destination_id", "aircraft_type_id", "service_type", "date_of_operation", "stod", "stoa"]
        },
        "FlightOperationalUpdate": {
            "type": "object",
            "properties": {
                "registration": {"type": "string"},
                "status": {"type": "string"},
                "etod": {"type": "string"},
                "aobt": {"type": "string"},
                "atod": {"type": "string"},
                "etoa": {"type": "string"},
                "atoa": {"type": "string"},
                "aibt": {"type": "string"},
                "gate_id": {"type": "integer"},
                "stand_id": {"type": "integer"},
                "carousel_id": {"type": "integer"},
                "public_remark": {"type": "string"}
            }
        },
        "StatusUpdateRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            },
            "required": ["status"]
        },
        "GenerateRequest": {
            "type": "object",
            "properties": {
                "start_date": {"type": "string", "example": "2025-10-01"},
                "days": {"type": "integer", "example": 90},
                "incremental": {"type": "boolean"},
                "dry_run": {"type": "boolean"},
                "force": {"type": "boolean"}
            }
        },
        "PropagateRequest": {
            "type": "object",
            "properties": {
                "schedule_id": {"type": "integer"},
                "all": {"type": "boolean"},
                "from_date": {"type": "string", "example": "2025-10-15"},
                "buffer_hours": {"type": "integer", "example": 48},
                "dry_run": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
