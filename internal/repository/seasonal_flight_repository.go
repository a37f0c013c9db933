package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

const seasonalFlightColumns = `s.id, s.airline_id, s.flight_number, s.origin_id, s.destination_id,
s.aircraft_type_id, s.service_type, s.stod, s.stoa, s.start_date, s.end_date,
s.days_of_operation, s.is_active, s.created_at, s.updated_at,
a.iata_code AS airline_iata, o.iata_code AS origin_iata, d.iata_code AS destination_iata,
t.icao_code AS aircraft_icao`

const seasonalFlightJoins = `FROM seasonal_flights s
JOIN airlines a ON a.id = s.airline_id
JOIN airports o ON o.id = s.origin_id
JOIN airports d ON d.id = s.destination_id
JOIN aircraft_types t ON t.id = s.aircraft_type_id`

// SeasonalFlightRepository persists recurring flight series.
type SeasonalFlightRepository struct {
	db *sqlx.DB
}

// NewSeasonalFlightRepository constructs the repository.
func NewSeasonalFlightRepository(db *sqlx.DB) *SeasonalFlightRepository {
	return &SeasonalFlightRepository{db: db}
}

// FindByID loads one series with its joined display codes.
func (r *SeasonalFlightRepository) FindByID(ctx context.Context, id int64) (*models.SeasonalFlight, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE s.id = $1", seasonalFlightColumns, seasonalFlightJoins)
	var series models.SeasonalFlight
	if err := r.db.GetContext(ctx, &series, query, id); err != nil {
		return nil, err
	}
	return &series, nil
}

// ListActiveOverlapping returns active series whose validity window
// intersects the inclusive [start, end] window.
func (r *SeasonalFlightRepository) ListActiveOverlapping(ctx context.Context, start, end time.Time) ([]models.SeasonalFlight, error) {
	query := fmt.Sprintf(`SELECT %s %s
WHERE s.is_active = TRUE AND s.start_date <= $2 AND s.end_date >= $1
ORDER BY a.iata_code, s.flight_number`, seasonalFlightColumns, seasonalFlightJoins)
	var list []models.SeasonalFlight
	if err := r.db.SelectContext(ctx, &list, query, start, end); err != nil {
		return nil, fmt.Errorf("list overlapping seasonal flights: %w", err)
	}
	return list, nil
}

// ListActiveEndingAfter returns active series still valid on or after the
// given date, the candidate set for a propagate-all run.
func (r *SeasonalFlightRepository) ListActiveEndingAfter(ctx context.Context, from time.Time) ([]models.SeasonalFlight, error) {
	query := fmt.Sprintf(`SELECT %s %s
WHERE s.is_active = TRUE AND s.end_date >= $1
ORDER BY a.iata_code, s.flight_number`, seasonalFlightColumns, seasonalFlightJoins)
	var list []models.SeasonalFlight
	if err := r.db.SelectContext(ctx, &list, query, from); err != nil {
		return nil, fmt.Errorf("list seasonal flights ending after %s: %w", from.Format("2006-01-02"), err)
	}
	return list, nil
}

// List returns series matching the filter plus a total count.
func (r *SeasonalFlightRepository) List(ctx context.Context, filter models.SeasonalFlightFilter) ([]models.SeasonalFlight, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("s.is_active = $%d", len(args)))
	}
	if filter.AirlineID != nil {
		args = append(args, *filter.AirlineID)
		conditions = append(conditions, fmt.Sprintf("s.airline_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(s.flight_number ILIKE $%d OR a.iata_code ILIKE $%d)", len(args), len(args)))
	}
	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", seasonalFlightJoins, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count seasonal flights: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s %s WHERE %s
ORDER BY a.iata_code, s.flight_number, s.start_date LIMIT $%d OFFSET $%d`,
		seasonalFlightColumns, seasonalFlightJoins, where, len(args)-1, len(args))

	var list []models.SeasonalFlight
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list seasonal flights: %w", err)
	}
	return list, total, nil
}

// ExistsBySeries reports whether another series already claims the
// (airline, flight number, start date) identity.
func (r *SeasonalFlightRepository) ExistsBySeries(ctx context.Context, airlineID int64, flightNumber string, startDate time.Time, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (
SELECT 1 FROM seasonal_flights
WHERE airline_id = $1 AND flight_number = $2 AND start_date = $3 AND id <> $4)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, airlineID, flightNumber, startDate, excludeID); err != nil {
		return false, fmt.Errorf("check seasonal flight identity: %w", err)
	}
	return exists, nil
}

// Create inserts a series and fills in its generated id.
func (r *SeasonalFlightRepository) Create(ctx context.Context, series *models.SeasonalFlight) error {
	const query = `
INSERT INTO seasonal_flights (airline_id, flight_number, origin_id, destination_id, aircraft_type_id,
service_type, stod, stoa, start_date, end_date, days_of_operation, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING id`
	now := time.Now().UTC()
	series.CreatedAt = now
	series.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		series.AirlineID, series.FlightNumber, series.OriginID, series.DestinationID,
		series.AircraftTypeID, series.ServiceType, series.STOD, series.STOA,
		series.StartDate, series.EndDate, series.DaysOfOperation, series.IsActive, now,
	).Scan(&series.ID); err != nil {
		return fmt.Errorf("insert seasonal flight: %w", err)
	}
	return nil
}

// Update rewrites the planner-editable fields of a series.
func (r *SeasonalFlightRepository) Update(ctx context.Context, series *models.SeasonalFlight) error {
	const query = `
UPDATE seasonal_flights SET airline_id = $1, flight_number = $2, origin_id = $3, destination_id = $4,
aircraft_type_id = $5, service_type = $6, stod = $7, stoa = $8, start_date = $9, end_date = $10,
days_of_operation = $11, is_active = $12, updated_at = $13
WHERE id = $14`
	series.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		series.AirlineID, series.FlightNumber, series.OriginID, series.DestinationID,
		series.AircraftTypeID, series.ServiceType, series.STOD, series.STOA,
		series.StartDate, series.EndDate, series.DaysOfOperation, series.IsActive,
		series.UpdatedAt, series.ID,
	)
	if err != nil {
		return fmt.Errorf("update seasonal flight: %w", err)
	}
	return requireAffected(result, "seasonal flight")
}

// Deactivate soft-deletes a series; generation stops picking it up.
func (r *SeasonalFlightRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE seasonal_flights SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("deactivate seasonal flight: %w", err)
	}
	return requireAffected(result, "seasonal flight")
}

// Delete removes a series for good. Daily flights keep existing with their
// schedule reference cleared by the store (ON DELETE SET NULL).
func (r *SeasonalFlightRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM seasonal_flights WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete seasonal flight: %w", err)
	}
	return requireAffected(result, "seasonal flight")
}

func requireAffected(result sql.Result, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
