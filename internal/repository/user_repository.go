package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Iotonix/osams/internal/models"
)

// UserRepository persists application users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs the repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID loads one user.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT * FROM users WHERE id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads one user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT * FROM users WHERE email = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user, assigning a fresh id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
INSERT INTO users (id, email, password_hash, full_name, role, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.Active, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful login.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	const query = `UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return requireAffected(result, "user")
}
