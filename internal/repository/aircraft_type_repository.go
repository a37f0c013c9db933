package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

// AircraftTypeRepository persists equipment master data.
type AircraftTypeRepository struct {
	db *sqlx.DB
}

// NewAircraftTypeRepository constructs the repository.
func NewAircraftTypeRepository(db *sqlx.DB) *AircraftTypeRepository {
	return &AircraftTypeRepository{db: db}
}

// FindByID loads one aircraft type.
func (r *AircraftTypeRepository) FindByID(ctx context.Context, id int64) (*models.AircraftType, error) {
	const query = `SELECT * FROM aircraft_types WHERE id = $1`
	var at models.AircraftType
	if err := r.db.GetContext(ctx, &at, query, id); err != nil {
		return nil, err
	}
	return &at, nil
}

// FindByICAO loads one aircraft type by its ICAO designator, e.g. B738.
func (r *AircraftTypeRepository) FindByICAO(ctx context.Context, icao string) (*models.AircraftType, error) {
	const query = `SELECT * FROM aircraft_types WHERE icao_code = $1`
	var at models.AircraftType
	if err := r.db.GetContext(ctx, &at, query, icao); err != nil {
		return nil, err
	}
	return &at, nil
}

// List returns aircraft types matching the filter plus a total count.
func (r *AircraftTypeRepository) List(ctx context.Context, filter models.AircraftTypeFilter) ([]models.AircraftType, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(icao_code ILIKE $%d OR manufacturer ILIKE $%d OR model ILIKE $%d)", len(args), len(args), len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM aircraft_types WHERE %s", where), args...); err != nil {
		return nil, 0, fmt.Errorf("count aircraft types: %w", err)
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, 20)
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf("SELECT * FROM aircraft_types WHERE %s ORDER BY icao_code LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))

	var list []models.AircraftType
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list aircraft types: %w", err)
	}
	return list, total, nil
}

// ExistsByICAO reports whether another type claims the ICAO code.
func (r *AircraftTypeRepository) ExistsByICAO(ctx context.Context, icao string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM aircraft_types WHERE icao_code = $1 AND id <> $2)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, icao, excludeID); err != nil {
		return false, fmt.Errorf("check aircraft type code: %w", err)
	}
	return exists, nil
}

// Create inserts an aircraft type and fills in its generated id.
func (r *AircraftTypeRepository) Create(ctx context.Context, at *models.AircraftType) error {
	const query = `
INSERT INTO aircraft_types (icao_code, iata_code, manufacturer, model, wake_turbulence, size_category,
wingspan_meters, length_meters, max_takeoff_weight_kg, typical_capacity, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
RETURNING id`
	now := time.Now().UTC()
	at.CreatedAt = now
	at.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		at.ICAOCode, at.IATACode, at.Manufacturer, at.Model, at.WakeTurbulence, at.SizeCategory,
		at.WingspanMeters, at.LengthMeters, at.MaxTakeoffWeightKg, at.TypicalCapacity, at.IsActive, now,
	).Scan(&at.ID); err != nil {
		return fmt.Errorf("insert aircraft type: %w", err)
	}
	return nil
}

// Update rewrites an aircraft type.
func (r *AircraftTypeRepository) Update(ctx context.Context, at *models.AircraftType) error {
	const query = `
UPDATE aircraft_types SET icao_code = $1, iata_code = $2, manufacturer = $3, model = $4,
wake_turbulence = $5, size_category = $6, wingspan_meters = $7, length_meters = $8,
max_takeoff_weight_kg = $9, typical_capacity = $10, is_active = $11, updated_at = $12
WHERE id = $13`
	at.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		at.ICAOCode, at.IATACode, at.Manufacturer, at.Model, at.WakeTurbulence, at.SizeCategory,
		at.WingspanMeters, at.LengthMeters, at.MaxTakeoffWeightKg, at.TypicalCapacity,
		at.IsActive, at.UpdatedAt, at.ID,
	)
	if err != nil {
		return fmt.Errorf("update aircraft type: %w", err)
	}
	return requireAffected(result, "aircraft type")
}

// Deactivate soft-deletes an aircraft type.
func (r *AircraftTypeRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE aircraft_types SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("deactivate aircraft type: %w", err)
	}
	return requireAffected(result, "aircraft type")
}
