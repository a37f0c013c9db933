package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

// AirlineRepository persists carrier master data.
type AirlineRepository struct {
	db *sqlx.DB
}

// NewAirlineRepository constructs the repository.
func NewAirlineRepository(db *sqlx.DB) *AirlineRepository {
	return &AirlineRepository{db: db}
}

// FindByID loads one airline.
func (r *AirlineRepository) FindByID(ctx context.Context, id int64) (*models.Airline, error) {
	const query = `SELECT * FROM airlines WHERE id = $1`
	var airline models.Airline
	if err := r.db.GetContext(ctx, &airline, query, id); err != nil {
		return nil, err
	}
	return &airline, nil
}

// FindByIATA loads one airline by its two-letter code.
func (r *AirlineRepository) FindByIATA(ctx context.Context, iata string) (*models.Airline, error) {
	const query = `SELECT * FROM airlines WHERE iata_code = $1`
	var airline models.Airline
	if err := r.db.GetContext(ctx, &airline, query, iata); err != nil {
		return nil, err
	}
	return &airline, nil
}

// List returns airlines matching the filter plus a total count.
func (r *AirlineRepository) List(ctx context.Context, filter models.AirlineFilter) ([]models.Airline, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(iata_code ILIKE $%d OR icao_code ILIKE $%d OR name ILIKE $%d)", len(args), len(args), len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM airlines WHERE %s", where), args...); err != nil {
		return nil, 0, fmt.Errorf("count airlines: %w", err)
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, 20)
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf("SELECT * FROM airlines WHERE %s ORDER BY iata_code LIMIT $%d OFFSET $%d", where, len(args)-1, len(args))

	var list []models.Airline
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list airlines: %w", err)
	}
	return list, total, nil
}

// ExistsByCode reports whether another airline claims either code.
func (r *AirlineRepository) ExistsByCode(ctx context.Context, iata, icao string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (
SELECT 1 FROM airlines WHERE (iata_code = $1 OR icao_code = $2) AND id <> $3)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, iata, icao, excludeID); err != nil {
		return false, fmt.Errorf("check airline codes: %w", err)
	}
	return exists, nil
}

// Create inserts an airline and fills in its generated id.
func (r *AirlineRepository) Create(ctx context.Context, airline *models.Airline) error {
	const query = `
INSERT INTO airlines (iata_code, icao_code, name, country, contact_email, contact_phone, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id`
	now := time.Now().UTC()
	airline.CreatedAt = now
	airline.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		airline.IATACode, airline.ICAOCode, airline.Name, airline.Country,
		airline.ContactEmail, airline.ContactPhone, airline.IsActive, now,
	).Scan(&airline.ID); err != nil {
		return fmt.Errorf("insert airline: %w", err)
	}
	return nil
}

// Update rewrites an airline.
func (r *AirlineRepository) Update(ctx context.Context, airline *models.Airline) error {
	const query = `
UPDATE airlines SET iata_code = $1, icao_code = $2, name = $3, country = $4,
contact_email = $5, contact_phone = $6, is_active = $7, updated_at = $8
WHERE id = $9`
	airline.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		airline.IATACode, airline.ICAOCode, airline.Name, airline.Country,
		airline.ContactEmail, airline.ContactPhone, airline.IsActive, airline.UpdatedAt, airline.ID,
	)
	if err != nil {
		return fmt.Errorf("update airline: %w", err)
	}
	return requireAffected(result, "airline")
}

// Deactivate soft-deletes an airline.
func (r *AirlineRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `UPDATE airlines SET is_active = FALSE, updated_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("deactivate airline: %w", err)
	}
	return requireAffected(result, "airline")
}

func normalizePage(page, pageSize, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}
