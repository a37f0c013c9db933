package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

const dailyFlightColumns = `f.flight_id, f.schedule_id, f.airline_id, f.flight_number, f.origin_id,
f.destination_id, f.aircraft_type_id, f.service_type, f.date_of_operation, f.registration,
f.status, f.stod, f.stoa, f.etod, f.aobt, f.atod, f.etoa, f.atoa, f.aibt,
f.gate_id, f.stand_id, f.carousel_id, f.public_remark, f.is_manually_modified,
f.schedule_version, f.last_propagated_at, f.created_at, f.updated_at,
a.iata_code AS airline_iata, o.iata_code AS origin_iata, d.iata_code AS destination_iata,
t.icao_code AS aircraft_icao`

const dailyFlightJoins = `FROM daily_flights f
JOIN airlines a ON a.id = f.airline_id
JOIN airports o ON o.id = f.origin_id
JOIN airports d ON d.id = f.destination_id
JOIN aircraft_types t ON t.id = f.aircraft_type_id`

// DailyFlightRepository persists operational flight instances.
type DailyFlightRepository struct {
	db *sqlx.DB
}

// NewDailyFlightRepository constructs the repository.
func NewDailyFlightRepository(db *sqlx.DB) *DailyFlightRepository {
	return &DailyFlightRepository{db: db}
}

func (r *DailyFlightRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// WindowState returns flight_id -> is_manually_modified for every flight
// in the inclusive date window. Generation consults it to decide between
// create, skip and overwrite without a per-row existence query.
func (r *DailyFlightRepository) WindowState(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	const query = `SELECT flight_id, is_manually_modified FROM daily_flights
WHERE date_of_operation BETWEEN $1 AND $2`
	rows, err := r.db.QueryxContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("load daily flight window state: %w", err)
	}
	defer rows.Close()

	state := make(map[string]bool)
	for rows.Next() {
		var flightID string
		var manual bool
		if err := rows.Scan(&flightID, &manual); err != nil {
			return nil, fmt.Errorf("scan daily flight window state: %w", err)
		}
		state[flightID] = manual
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily flight window state: %w", err)
	}
	return state, nil
}

// UpsertGenerated writes one generated flight. An existing row with the
// same flight_id is overwritten with schedule-derived values, its version
// reset to 1 and its manual flag cleared.
func (r *DailyFlightRepository) UpsertGenerated(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error {
	const query = `
INSERT INTO daily_flights (flight_id, schedule_id, airline_id, flight_number, origin_id, destination_id,
aircraft_type_id, service_type, date_of_operation, status, stod, stoa,
is_manually_modified, schedule_version, last_propagated_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, 1, $13, $13, $13)
ON CONFLICT (flight_id) DO UPDATE SET
schedule_id = EXCLUDED.schedule_id, airline_id = EXCLUDED.airline_id,
flight_number = EXCLUDED.flight_number, origin_id = EXCLUDED.origin_id,
destination_id = EXCLUDED.destination_id, aircraft_type_id = EXCLUDED.aircraft_type_id,
service_type = EXCLUDED.service_type, status = EXCLUDED.status,
stod = EXCLUDED.stod, stoa = EXCLUDED.stoa,
is_manually_modified = FALSE, schedule_version = 1,
last_propagated_at = EXCLUDED.last_propagated_at, updated_at = EXCLUDED.updated_at`
	now := time.Now().UTC()
	_, err := r.exec(exec).ExecContext(ctx, query,
		f.FlightID, f.ScheduleID, f.AirlineID, f.FlightNumber, f.OriginID, f.DestinationID,
		f.AircraftTypeID, f.ServiceType, f.DateOfOperation, f.Status, f.STOD, f.STOA, now,
	)
	if err != nil {
		return fmt.Errorf("upsert generated flight %s: %w", f.FlightID, err)
	}
	return nil
}

// ListForPropagation returns the future instances of one series from the
// given date onward, oldest first.
func (r *DailyFlightRepository) ListForPropagation(ctx context.Context, scheduleID int64, fromDate time.Time) ([]models.DailyFlight, error) {
	query := fmt.Sprintf(`SELECT %s %s
WHERE f.schedule_id = $1 AND f.date_of_operation >= $2
ORDER BY f.date_of_operation`, dailyFlightColumns, dailyFlightJoins)
	var list []models.DailyFlight
	if err := r.db.SelectContext(ctx, &list, query, scheduleID, fromDate); err != nil {
		return nil, fmt.Errorf("list flights for propagation: %w", err)
	}
	return list, nil
}

// ApplyPropagation rewrites the schedule-derived fields of one flight and
// bumps its version in the same statement.
func (r *DailyFlightRepository) ApplyPropagation(ctx context.Context, exec sqlx.ExtContext, f *models.DailyFlight) error {
	const query = `
UPDATE daily_flights SET airline_id = $1, flight_number = $2, origin_id = $3, destination_id = $4,
aircraft_type_id = $5, service_type = $6, stod = $7, stoa = $8,
schedule_version = schedule_version + 1, last_propagated_at = $9, updated_at = $9
WHERE flight_id = $10`
	now := time.Now().UTC()
	result, err := r.exec(exec).ExecContext(ctx, query,
		f.AirlineID, f.FlightNumber, f.OriginID, f.DestinationID,
		f.AircraftTypeID, f.ServiceType, f.STOD, f.STOA, now, f.FlightID,
	)
	if err != nil {
		return fmt.Errorf("apply propagation to %s: %w", f.FlightID, err)
	}
	return requireAffected(result, "daily flight")
}

// FindByFlightID loads one flight with its joined display codes.
func (r *DailyFlightRepository) FindByFlightID(ctx context.Context, flightID string) (*models.DailyFlight, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE f.flight_id = $1", dailyFlightColumns, dailyFlightJoins)
	var flight models.DailyFlight
	if err := r.db.GetContext(ctx, &flight, query, flightID); err != nil {
		return nil, err
	}
	return &flight, nil
}

// List returns flights matching the filter plus a total count.
func (r *DailyFlightRepository) List(ctx context.Context, filter models.DailyFlightFilter) ([]models.DailyFlight, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("f.date_of_operation = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("f.date_of_operation >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("f.date_of_operation <= $%d", len(args)))
	}
	if filter.AirlineID != nil {
		args = append(args, *filter.AirlineID)
		conditions = append(conditions, fmt.Sprintf("f.airline_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("f.status = $%d", len(args)))
	}
	if filter.ManualOnly {
		conditions = append(conditions, "f.is_manually_modified = TRUE")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("f.flight_id ILIKE $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", dailyFlightJoins, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count daily flights: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s %s WHERE %s
ORDER BY f.date_of_operation, f.stod LIMIT $%d OFFSET $%d`,
		dailyFlightColumns, dailyFlightJoins, where, len(args)-1, len(args))

	var list []models.DailyFlight
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list daily flights: %w", err)
	}
	return list, total, nil
}

// ListByDate returns all flights on one operational day ordered by
// departure, the export and dashboard working set.
func (r *DailyFlightRepository) ListByDate(ctx context.Context, date time.Time) ([]models.DailyFlight, error) {
	query := fmt.Sprintf(`SELECT %s %s
WHERE f.date_of_operation = $1 ORDER BY f.stod`, dailyFlightColumns, dailyFlightJoins)
	var list []models.DailyFlight
	if err := r.db.SelectContext(ctx, &list, query, date); err != nil {
		return nil, fmt.Errorf("list daily flights by date: %w", err)
	}
	return list, nil
}

// Create inserts an ad-hoc flight that belongs to no series.
func (r *DailyFlightRepository) Create(ctx context.Context, f *models.DailyFlight) error {
	const query = `
INSERT INTO daily_flights (flight_id, schedule_id, airline_id, flight_number, origin_id, destination_id,
aircraft_type_id, service_type, date_of_operation, registration, status, stod, stoa,
gate_id, stand_id, carousel_id, public_remark, is_manually_modified, schedule_version,
created_at, updated_at)
VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, FALSE, 1, $17, $17)`
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		f.FlightID, f.AirlineID, f.FlightNumber, f.OriginID, f.DestinationID,
		f.AircraftTypeID, f.ServiceType, f.DateOfOperation, f.Registration, f.Status,
		f.STOD, f.STOA, f.GateID, f.StandID, f.CarouselID, f.PublicRemark, now,
	)
	if err != nil {
		return fmt.Errorf("insert daily flight %s: %w", f.FlightID, err)
	}
	return nil
}

// ExistsByFlightID reports whether a flight_id is already taken.
func (r *DailyFlightRepository) ExistsByFlightID(ctx context.Context, flightID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM daily_flights WHERE flight_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, flightID); err != nil {
		return false, fmt.Errorf("check flight id: %w", err)
	}
	return exists, nil
}

// UpdateOperational applies an operator edit and marks the flight as
// manually modified so propagation leaves it alone from now on.
func (r *DailyFlightRepository) UpdateOperational(ctx context.Context, f *models.DailyFlight) error {
	const query = `
UPDATE daily_flights SET registration = $1, status = $2, etod = $3, aobt = $4, atod = $5,
etoa = $6, atoa = $7, aibt = $8, gate_id = $9, stand_id = $10, carousel_id = $11,
public_remark = $12, is_manually_modified = TRUE, updated_at = $13
WHERE flight_id = $14`
	f.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		f.Registration, f.Status, f.ETOD, f.AOBT, f.ATOD,
		f.ETOA, f.ATOA, f.AIBT, f.GateID, f.StandID, f.CarouselID,
		f.PublicRemark, f.UpdatedAt, f.FlightID,
	)
	if err != nil {
		return fmt.Errorf("update daily flight %s: %w", f.FlightID, err)
	}
	return requireAffected(result, "daily flight")
}

// UpdateStatus moves a flight through its lifecycle without touching the
// manual flag; status alone is an operational fact, not a schedule edit.
func (r *DailyFlightRepository) UpdateStatus(ctx context.Context, flightID string, status models.FlightStatus) error {
	const query = `UPDATE daily_flights SET status = $1, updated_at = $2 WHERE flight_id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), flightID)
	if err != nil {
		return fmt.Errorf("update flight status %s: %w", flightID, err)
	}
	return requireAffected(result, "daily flight")
}

// StatsByDate aggregates one operational day for the dashboard.
func (r *DailyFlightRepository) StatsByDate(ctx context.Context, date time.Time) (*models.DailyOpsStats, error) {
	stats := &models.DailyOpsStats{
		Date:     date,
		ByStatus: make(map[string]int),
	}

	const statusQuery = `SELECT status, COUNT(*) FROM daily_flights
WHERE date_of_operation = $1 GROUP BY status`
	rows, err := r.db.QueryxContext(ctx, statusQuery, date)
	if err != nil {
		return nil, fmt.Errorf("aggregate flight statuses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status aggregate: %w", err)
		}
		stats.ByStatus[status] = count
		stats.TotalFlights += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status aggregates: %w", err)
	}

	const manualQuery = `SELECT COUNT(*) FROM daily_flights
WHERE date_of_operation = $1 AND is_manually_modified = TRUE`
	if err := r.db.GetContext(ctx, &stats.ManuallyModified, manualQuery, date); err != nil {
		return nil, fmt.Errorf("count manually modified flights: %w", err)
	}
	stats.AutoManaged = stats.TotalFlights - stats.ManuallyModified
	return stats, nil
}
