package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

// AirportRepository persists airport reference data.
type AirportRepository struct {
	db *sqlx.DB
}

// NewAirportRepository constructs the repository.
func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByID loads one airport.
func (r *AirportRepository) FindByID(ctx context.Context, id int64) (*models.Airport, error) {
	const query = `SELECT * FROM airports WHERE id = $1`
	var airport models.Airport
	if err := r.db.GetContext(ctx, &airport, query, id); err != nil {
		return nil, err
	}
	return &airport, nil
}

// FindByIATA loads one airport by its three-letter code.
func (r *AirportRepository) FindByIATA(ctx context.Context, iata string) (*models.Airport, error) {
	const query = `SELECT * FROM airports WHERE iata_code = $1`
	var airport models.Airport
	if err := r.db.GetContext(ctx, &airport, query, iata); err != nil {
		return nil, err
	}
	return &airport, nil
}

// List returns airports matching the filter plus a total count.
func (r *AirportRepository) List(ctx context.Context, filter models.AirportFilter) ([]models.Airport, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		conditions = append(conditions, fmt.Sprintf("country = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(iata_code ILIKE $%d OR icao_code ILIKE $%d OR name ILIKE $%d OR city ILIKE $%d)", len(args), len(args), len(args), len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM airports WHERE %s", where), args...); err != nil {
		return nil, 0, fmt.Errorf("count airports: %w", err)
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, 20)
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf("SELECT * FROM airports WHERE %s ORDER BY iata_code LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))

	var list []models.Airport
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list airports: %w", err)
	}
	return list, total, nil
}

// ExistsByCode reports whether another airport claims either code.
func (r *AirportRepository) ExistsByCode(ctx context.Context, iata, icao string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (
SELECT 1 FROM airports WHERE (iata_code = $1 OR icao_code = $2) AND id <> $3)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, iata, icao, excludeID); err != nil {
		return false, fmt.Errorf("check airport codes: %w", err)
	}
	return exists, nil
}

// Create inserts an airport and fills in its generated id.
func (r *AirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	const query = `
INSERT INTO airports (iata_code, icao_code, name, city, country, latitude, longitude, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING id`
	now := time.Now().UTC()
	airport.CreatedAt = now
	airport.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		airport.IATACode, airport.ICAOCode, airport.Name, airport.City, airport.Country,
		airport.Latitude, airport.Longitude, airport.IsActive, now,
	).Scan(&airport.ID); err != nil {
		return fmt.Errorf("insert airport: %w", err)
	}
	return nil
}

// Update rewrites an airport.
func (r *AirportRepository) Update(ctx context.Context, airport *models.Airport) error {
	const query = `
UPDATE airports SET iata_code = $1, icao_code = $2, name = $3, city = $4, country = $5,
latitude = $6, longitude = $7, is_active = $8, updated_at = $9
WHERE id = $10`
	airport.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		airport.IATACode, airport.ICAOCode, airport.Name, airport.City, airport.Country,
		airport.Latitude, airport.Longitude, airport.IsActive, airport.UpdatedAt, airport.ID,
	)
	if err != nil {
		return fmt.Errorf("update airport: %w", err)
	}
	return requireAffected(result, "airport")
}

// Deactivate soft-deletes an airport.
func (r *AirportRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE airports SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("deactivate airport: %w", err)
	}
	return requireAffected(result, "airport")
}
