package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talenthq/talent-hub/internal/types"
)

const opportunityColumns = `id, title, required_role, COALESCE(description, ''),
	COALESCE(budget_min, 0), COALESCE(budget_max, 0), start_date, end_date, status,
	COALESCE(created_by, '00000000-0000-0000-0000-000000000000'::uuid), created_at, updated_at`

func scanOpportunity(row pgx.Row) (*types.Opportunity, error) {
	var o types.Opportunity
	err := row.Scan(&o.ID, &o.Title, &o.RequiredRole, &o.Description, &o.BudgetMin,
		&o.BudgetMax, &o.StartDate, &o.EndDate, &o.Status, &o.CreatedBy,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOpportunity inserts an opportunity and returns the stored row.
func (db *DB) CreateOpportunity(ctx context.Context, req *types.CreateOpportunityRequest, createdBy uuid.UUID) (*types.Opportunity, error) {
	status := req.Status
	if status == "" {
		status = "open"
	}
	row := db.pool.QueryRow(ctx,
		`INSERT INTO opportunities
		 (title, required_role, description, budget_min, budget_max, start_date, end_date, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+opportunityColumns,
		req.Title, req.RequiredRole, req.Description, req.BudgetMin, req.BudgetMax,
		req.StartDate, req.EndDate, status, createdBy,
	)
	opp, err := scanOpportunity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return opp, nil
}

// GetOpportunity fetches an opportunity by ID.
func (db *DB) GetOpportunity(ctx context.Context, id uuid.UUID) (*types.Opportunity, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1`, id)
	opp, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "opportunity", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	return opp, nil
}

// UpdateOpportunity overwrites the editable columns of an opportunity.
func (db *DB) UpdateOpportunity(ctx context.Context, id uuid.UUID, req *types.CreateOpportunityRequest) (*types.Opportunity, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE opportunities SET
		   title = $1, required_role = $2, description = $3, budget_min = $4,
		   budget_max = $5, start_date = $6, end_date = $7,
		   status = COALESCE(NULLIF($8, ''), status), updated_at = NOW()
		 WHERE id = $9
		 RETURNING `+opportunityColumns,
		req.Title, req.RequiredRole, req.Description, req.BudgetMin, req.BudgetMax,
		req.StartDate, req.EndDate, req.Status, id,
	)
	opp, err := scanOpportunity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "opportunity", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}
	return opp, nil
}

// DeleteOpportunity removes an opportunity.
func (db *DB) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "opportunity", ID: id.String()}
	}
	return nil
}

// OpportunityFilters holds optional filters for listing opportunities.
type OpportunityFilters struct {
	Status string
	Role   string
	Limit  int
}

// ListOpportunities retrieves opportunities with optional filters.
func (db *DB) ListOpportunities(ctx context.Context, filters OpportunityFilters) ([]types.Opportunity, error) {
	if filters.Limit == 0 {
		filters.Limit = 100
	}

	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Role != "" {
		query += fmt.Sprintf(" AND required_role ILIKE $%d", argNum)
		args = append(args, "%"+filters.Role+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opps []types.Opportunity
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opps = append(opps, *opp)
	}
	return opps, nil
}
