package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talenthq/talent-hub/internal/types"
)

// UserRecord is a user row including the password hash. Only the auth
// layer sees this type; handlers work with types.User.
type UserRecord struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// User strips the credential fields for API responses.
func (r *UserRecord) User() *types.User {
	return &types.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateUser inserts a new user and returns the stored record.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash, role string) (*UserRecord, error) {
	var rec UserRecord
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, role, password_hash, created_at, updated_at`,
		name, email, passwordHash, role,
	).Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &rec, nil
}

// GetUserByEmail fetches a user by email. Returns nil when absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	var rec UserRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, role, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &rec, nil
}

// GetUserByID fetches a user by ID. Returns nil when absent.
func (db *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*UserRecord, error) {
	var rec UserRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, role, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Role, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &rec, nil
}

// UpdateUserPassword replaces a user's password hash.
func (db *DB) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "user", ID: id.String()}
	}
	return nil
}
