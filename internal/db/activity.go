package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talenthq/talent-hub/internal/types"
)

// RecordActivity appends an entry to the activity feed.
func (db *DB) RecordActivity(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, detail string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO activity_feed (user_id, action, entity_type, entity_id, detail)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, action, entityType, entityID, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListActivity retrieves the most recent activity feed entries.
func (db *DB) ListActivity(ctx context.Context, limit int) ([]types.ActivityEntry, error) {
	if limit == 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, action, COALESCE(entity_type, ''),
		        COALESCE(entity_id, '00000000-0000-0000-0000-000000000000'::uuid),
		        COALESCE(detail, ''), created_at
		 FROM activity_feed ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []types.ActivityEntry
	for rows.Next() {
		var e types.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetPreferences fetches a user's UI preferences; absent rows come
// back as defaults rather than an error.
func (db *DB) GetPreferences(ctx context.Context, userID uuid.UUID) (*types.UserPreference, error) {
	var p types.UserPreference
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, walkthrough_completed, walkthrough_step, updated_at
		 FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.WalkthroughCompleted, &p.WalkthroughStep, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &types.UserPreference{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &p, nil
}

// SavePreferences upserts a user's UI preferences.
func (db *DB) SavePreferences(ctx context.Context, pref *types.UserPreference) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_preferences (user_id, walkthrough_completed, walkthrough_step, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   walkthrough_completed = $2, walkthrough_step = $3, updated_at = NOW()`,
		pref.UserID, pref.WalkthroughCompleted, pref.WalkthroughStep,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// ListSkills retrieves the skill taxonomy.
func (db *DB) ListSkills(ctx context.Context) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), parent_id FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// CreateSkill adds a skill taxonomy entry.
func (db *DB) CreateSkill(ctx context.Context, name, category string, parentID *uuid.UUID) (*types.Skill, error) {
	var s types.Skill
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, parent_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, COALESCE(category, ''), parent_id`,
		name, category, parentID,
	).Scan(&s.ID, &s.Name, &s.Category, &s.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &s, nil
}
