package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talenthq/talent-hub/internal/types"
)

const profileColumns = `id, COALESCE(user_id, '00000000-0000-0000-0000-000000000000'::uuid),
	full_name, COALESCE(email, ''), COALESCE(phone, ''), role, status, years_experience,
	COALESCE(skills, '{}'), COALESCE(links, '{}'), COALESCE(bio, ''), COALESCE(education, ''),
	COALESCE(work_history, ''), COALESCE(certifications, ''), COALESCE(remote_preference, ''),
	COALESCE(source, ''), is_prospect, COALESCE(avatar_url, ''), created_at, updated_at`

func scanProfile(row pgx.Row) (*types.TalentProfile, error) {
	var p types.TalentProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Role, &p.Status,
		&p.YearsExperience, &p.Skills, &p.Links, &p.Bio, &p.Education, &p.WorkHistory,
		&p.Certifications, &p.RemotePreference, &p.Source, &p.IsProspect, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile inserts a talent profile and returns the stored row.
func (db *DB) CreateProfile(ctx context.Context, req *types.CreateProfileRequest) (*types.TalentProfile, error) {
	status := req.Status
	if status == "" {
		status = types.StatusAvailable
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO talent_profiles
		 (full_name, email, phone, role, status, years_experience, skills, links, bio,
		  education, work_history, certifications, remote_preference, source, is_prospect)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+profileColumns,
		req.FullName, req.Email, req.Phone, req.Role, status, req.YearsExperience,
		req.Skills, req.Links, req.Bio, req.Education, req.WorkHistory,
		req.Certifications, req.RemotePreference, req.Source, req.IsProspect,
	)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// GetProfile fetches a profile by ID.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.TalentProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM talent_profiles WHERE id = $1`, id)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "profile", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile overwrites the editable columns of a profile.
func (db *DB) UpdateProfile(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*types.TalentProfile, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE talent_profiles SET
		   full_name = $1, email = $2, phone = $3, role = $4,
		   status = COALESCE(NULLIF($5, ''), status),
		   years_experience = $6, skills = $7, links = $8, bio = $9,
		   education = $10, work_history = $11, certifications = $12,
		   remote_preference = COALESCE(NULLIF($13, ''), remote_preference),
		   source = $14, is_prospect = $15, updated_at = NOW()
		 WHERE id = $16
		 RETURNING `+profileColumns,
		req.FullName, req.Email, req.Phone, req.Role, req.Status, req.YearsExperience,
		req.Skills, req.Links, req.Bio, req.Education, req.WorkHistory,
		req.Certifications, req.RemotePreference, req.Source, req.IsProspect, id,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "profile", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// DeleteProfile removes a profile.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM talent_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "profile", ID: id.String()}
	}
	return nil
}

// ProfileFilters holds optional filters for listing profiles.
type ProfileFilters struct {
	Role     string
	Status   string
	Skill    string
	Prospect *bool
	Search   string
	Limit    int
}

// ListProfiles retrieves profiles with optional filters.
func (db *DB) ListProfiles(ctx context.Context, filters ProfileFilters) ([]types.TalentProfile, error) {
	if filters.Limit == 0 {
		filters.Limit = 100
	}

	query := `SELECT ` + profileColumns + ` FROM talent_profiles WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Role != "" {
		query += fmt.Sprintf(" AND role ILIKE $%d", argNum)
		args = append(args, "%"+filters.Role+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Skill != "" {
		query += fmt.Sprintf(" AND $%d = ANY(skills)", argNum)
		args = append(args, filters.Skill)
		argNum++
	}
	if filters.Prospect != nil {
		query += fmt.Sprintf(" AND is_prospect = $%d", argNum)
		args = append(args, *filters.Prospect)
		argNum++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND full_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.TalentProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}
