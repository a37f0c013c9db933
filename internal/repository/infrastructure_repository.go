package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

// InfrastructureRepository persists the airport's physical resources:
// terminals, gates, stands, check-in counters, baggage carousels and
// runways. These sets are small and fixed, so lists are unpaginated.
type InfrastructureRepository struct {
	db *sqlx.DB
}

// NewInfrastructureRepository constructs the repository.
func NewInfrastructureRepository(db *sqlx.DB) *InfrastructureRepository {
	return &InfrastructureRepository{db: db}
}

// ListTerminals returns all terminals ordered by code.
func (r *InfrastructureRepository) ListTerminals(ctx context.Context) ([]models.Terminal, error) {
	const query = `SELECT * FROM terminals ORDER BY code`
	var list []models.Terminal
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	return list, nil
}

// FindTerminalByID loads one terminal.
func (r *InfrastructureRepository) FindTerminalByID(ctx context.Context, id int64) (*models.Terminal, error) {
	const query = `SELECT * FROM terminals WHERE id = $1`
	var terminal models.Terminal
	if err := r.db.GetContext(ctx, &terminal, query, id); err != nil {
		return nil, err
	}
	return &terminal, nil
}

// CreateTerminal inserts a terminal and fills in its generated id.
func (r *InfrastructureRepository) CreateTerminal(ctx context.Context, t *models.Terminal) error {
	const query = `
INSERT INTO terminals (code, name, description, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query, t.Code, t.Name, t.Description, t.IsActive, now).Scan(&t.ID); err != nil {
		return fmt.Errorf("insert terminal: %w", err)
	}
	return nil
}

// UpdateTerminal rewrites a terminal.
func (r *InfrastructureRepository) UpdateTerminal(ctx context.Context, t *models.Terminal) error {
	const query = `
UPDATE terminals SET code = $1, name = $2, description = $3, is_active = $4, updated_at = $5
WHERE id = $6`
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, t.Code, t.Name, t.Description, t.IsActive, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("update terminal: %w", err)
	}
	return requireAffected(result, "terminal")
}

// ListGates returns all gates ordered by code.
func (r *InfrastructureRepository) ListGates(ctx context.Context) ([]models.Gate, error) {
	const query = `SELECT * FROM gates ORDER BY code`
	var list []models.Gate
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list gates: %w", err)
	}
	return list, nil
}

// FindGateByID loads one gate.
func (r *InfrastructureRepository) FindGateByID(ctx context.Context, id int64) (*models.Gate, error) {
	const query = `SELECT * FROM gates WHERE id = $1`
	var gate models.Gate
	if err := r.db.GetContext(ctx, &gate, query, id); err != nil {
		return nil, err
	}
	return &gate, nil
}

// CreateGate inserts a gate and fills in its generated id.
func (r *InfrastructureRepository) CreateGate(ctx context.Context, g *models.Gate) error {
	const query = `
INSERT INTO gates (code, terminal_id, gate_type, max_wingspan_meters, is_active, is_available, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id`
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		g.Code, g.TerminalID, g.GateType, g.MaxWingspanMeters, g.IsActive, g.IsAvailable, g.Notes, now,
	).Scan(&g.ID); err != nil {
		return fmt.Errorf("insert gate: %w", err)
	}
	return nil
}

// UpdateGate rewrites a gate.
func (r *InfrastructureRepository) UpdateGate(ctx context.Context, g *models.Gate) error {
	const query = `
UPDATE gates SET code = $1, terminal_id = $2, gate_type = $3, max_wingspan_meters = $4,
is_active = $5, is_available = $6, notes = $7, updated_at = $8
WHERE id = $9`
	g.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		g.Code, g.TerminalID, g.GateType, g.MaxWingspanMeters,
		g.IsActive, g.IsAvailable, g.Notes, g.UpdatedAt, g.ID,
	)
	if err != nil {
		return fmt.Errorf("update gate: %w", err)
	}
	return requireAffected(result, "gate")
}

// ListStands returns all stands ordered by code.
func (r *InfrastructureRepository) ListStands(ctx context.Context) ([]models.Stand, error) {
	const query = `SELECT * FROM stands ORDER BY code`
	var list []models.Stand
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list stands: %w", err)
	}
	return list, nil
}

// FindStandByID loads one stand.
func (r *InfrastructureRepository) FindStandByID(ctx context.Context, id int64) (*models.Stand, error) {
	const query = `SELECT * FROM stands WHERE id = $1`
	var stand models.Stand
	if err := r.db.GetContext(ctx, &stand, query, id); err != nil {
		return nil, err
	}
	return &stand, nil
}

// CreateStand inserts a stand and fills in its generated id.
func (r *InfrastructureRepository) CreateStand(ctx context.Context, s *models.Stand) error {
	const query = `
INSERT INTO stands (code, size_code, max_wingspan_meters, has_pushback, is_active, is_available, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id`
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		s.Code, s.SizeCode, s.MaxWingspanMeters, s.HasPushback, s.IsActive, s.IsAvailable, s.Notes, now,
	).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert stand: %w", err)
	}
	return nil
}

// UpdateStand rewrites a stand.
func (r *InfrastructureRepository) UpdateStand(ctx context.Context, s *models.Stand) error {
	const query = `
UPDATE stands SET code = $1, size_code = $2, max_wingspan_meters = $3, has_pushback = $4,
is_active = $5, is_available = $6, notes = $7, updated_at = $8
WHERE id = $9`
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		s.Code, s.SizeCode, s.MaxWingspanMeters, s.HasPushback,
		s.IsActive, s.IsAvailable, s.Notes, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update stand: %w", err)
	}
	return requireAffected(result, "stand")
}

// ListCounters returns all check-in counters ordered by code.
func (r *InfrastructureRepository) ListCounters(ctx context.Context) ([]models.CheckInCounter, error) {
	const query = `SELECT * FROM check_in_counters ORDER BY code`
	var list []models.CheckInCounter
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list check-in counters: %w", err)
	}
	return list, nil
}

// CreateCounter inserts a check-in counter and fills in its generated id.
func (r *InfrastructureRepository) CreateCounter(ctx context.Context, c *models.CheckInCounter) error {
	const query = `
INSERT INTO check_in_counters (code, terminal_id, counter_group, is_active, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id`
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		c.Code, c.TerminalID, c.CounterGroup, c.IsActive, c.IsAvailable, now,
	).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert check-in counter: %w", err)
	}
	return nil
}

// ListCarousels returns all baggage carousels ordered by code.
func (r *InfrastructureRepository) ListCarousels(ctx context.Context) ([]models.BaggageCarousel, error) {
	const query = `SELECT * FROM baggage_carousels ORDER BY code`
	var list []models.BaggageCarousel
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list baggage carousels: %w", err)
	}
	return list, nil
}

// CreateCarousel inserts a baggage carousel and fills in its generated id.
func (r *InfrastructureRepository) CreateCarousel(ctx context.Context, c *models.BaggageCarousel) error {
	const query = `
INSERT INTO baggage_carousels (code, terminal_id, is_active, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id`
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		c.Code, c.TerminalID, c.IsActive, c.IsAvailable, now,
	).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert baggage carousel: %w", err)
	}
	return nil
}

// ListRunways returns all runways ordered by name.
func (r *InfrastructureRepository) ListRunways(ctx context.Context) ([]models.Runway, error) {
	const query = `SELECT * FROM runways ORDER BY name`
	var list []models.Runway
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("list runways: %w", err)
	}
	return list, nil
}

// CreateRunway inserts a runway and fills in its generated id.
func (r *InfrastructureRepository) CreateRunway(ctx context.Context, rw *models.Runway) error {
	const query = `
INSERT INTO runways (name, length_meters, width_meters, surface, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING id`
	now := time.Now().UTC()
	rw.CreatedAt = now
	rw.UpdatedAt = now
	if err := r.db.QueryRowxContext(ctx, query,
		rw.Name, rw.LengthMeters, rw.WidthMeters, rw.Surface, rw.IsActive, now,
	).Scan(&rw.ID); err != nil {
		return fmt.Errorf("insert runway: %w", err)
	}
	return nil
}

// SetGateAvailability toggles a gate in or out of service.
func (r *InfrastructureRepository) SetGateAvailability(ctx context.Context, id int64, available bool) error {
	const query = `UPDATE gates SET is_available = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, available, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set gate availability: %w", err)
	}
	return requireAffected(result, "gate")
}

// SetStandAvailability toggles a stand in or out of service.
func (r *InfrastructureRepository) SetStandAvailability(ctx context.Context, id int64, available bool) error {
	const query = `UPDATE stands SET is_available = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, available, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set stand availability: %w", err)
	}
	return requireAffected(result, "stand")
}
