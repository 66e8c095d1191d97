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

// CreateMatch records a scored profile/opportunity pairing.
func (db *DB) CreateMatch(ctx context.Context, profileID, opportunityID uuid.UUID, score int, explanation string) (*types.Match, error) {
	var m types.Match
	err := db.pool.QueryRow(ctx,
		`INSERT INTO matches (profile_id, opportunity_id, score, explanation)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, profile_id, opportunity_id, score, COALESCE(explanation, ''), created_at`,
		profileID, opportunityID, score, explanation,
	).Scan(&m.ID, &m.ProfileID, &m.OpportunityID, &m.Score, &m.Explanation, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &m, nil
}

// ListMatches retrieves matches for an opportunity, best score first.
func (db *DB) ListMatches(ctx context.Context, opportunityID uuid.UUID) ([]types.Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, opportunity_id, score, COALESCE(explanation, ''), created_at
		 FROM matches WHERE opportunity_id = $1 ORDER BY score DESC`,
		opportunityID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []types.Match
	for rows.Next() {
		var m types.Match
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.OpportunityID, &m.Score, &m.Explanation, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// GetMatch fetches a match by ID.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*types.Match, error) {
	var m types.Match
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile_id, opportunity_id, score, COALESCE(explanation, ''), created_at
		 FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.ProfileID, &m.OpportunityID, &m.Score, &m.Explanation, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "match", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &m, nil
}

// SaveMatchFeedback records a recruiter's verdict on a match.
func (db *DB) SaveMatchFeedback(ctx context.Context, matchID, userID uuid.UUID, helpful bool, comment string) (*types.MatchFeedback, error) {
	var fb types.MatchFeedback
	err := db.pool.QueryRow(ctx,
		`INSERT INTO match_feedback (match_id, user_id, helpful, comment)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (match_id, user_id) DO UPDATE SET helpful = $3, comment = $4, created_at = NOW()
		 RETURNING id, match_id, user_id, helpful, COALESCE(comment, ''), created_at`,
		matchID, userID, helpful, comment,
	).Scan(&fb.ID, &fb.MatchID, &fb.UserID, &fb.Helpful, &fb.Comment, &fb.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save match feedback: %w", err)
	}
	return &fb, nil
}

// CreateAssignment links a profile to an opportunity after acceptance.
func (db *DB) CreateAssignment(ctx context.Context, profileID, opportunityID uuid.UUID, start, end *time.Time) (*types.Assignment, error) {
	var a types.Assignment
	err := db.pool.QueryRow(ctx,
		`INSERT INTO assignments (profile_id, opportunity_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, profile_id, opportunity_id, start_date, end_date, created_at`,
		profileID, opportunityID, start, end,
	).Scan(&a.ID, &a.ProfileID, &a.OpportunityID, &a.StartDate, &a.EndDate, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return &a, nil
}

// ListAssignments retrieves assignments for a profile.
func (db *DB) ListAssignments(ctx context.Context, profileID uuid.UUID) ([]types.Assignment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, opportunity_id, start_date, end_date, created_at
		 FROM assignments WHERE profile_id = $1 ORDER BY created_at DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []types.Assignment
	for rows.Next() {
		var a types.Assignment
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.OpportunityID, &a.StartDate, &a.EndDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

// ListEmployeeProjects retrieves current utilization rows for a profile.
func (db *DB) ListEmployeeProjects(ctx context.Context, profileID uuid.UUID) ([]types.EmployeeProject, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, project_name, utilization, COALESCE(manager_name, ''), start_date, end_date
		 FROM employee_projects WHERE profile_id = $1 ORDER BY start_date DESC NULLS LAST`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee projects: %w", err)
	}
	defer rows.Close()

	var projects []types.EmployeeProject
	for rows.Next() {
		var p types.EmployeeProject
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.ProjectName, &p.Utilization, &p.ManagerName, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan employee project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
