// Package types provides type definitions for structured data used throughout the talent-hub system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Talent profile status values. The store enforces enum membership;
// these constants exist so handlers and tests agree on spelling.
const (
	StatusAvailable = "available"
	StatusAssigned  = "assigned"
	StatusOnLeave   = "on_leave"
	StatusInactive  = "inactive"
)

// Remote work preference values.
const (
	RemoteOnSite = "on_site"
	RemoteHybrid = "hybrid"
	RemoteFull   = "remote"
)

// TalentProfile represents a candidate or employee record.
type TalentProfile struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id,omitempty"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	YearsExperience  int       `json:"years_experience"`
	Skills           []string  `json:"skills"`
	Links            []string  `json:"links,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Education        string    `json:"education,omitempty"`
	WorkHistory      string    `json:"work_history,omitempty"`
	Certifications   string    `json:"certifications,omitempty"`
	RemotePreference string    `json:"remote_preference,omitempty"`
	Source           string    `json:"source,omitempty"`
	IsProspect       bool      `json:"is_prospect"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateProfileRequest is the request body for creating a talent profile.
type CreateProfileRequest struct {
	FullName         string   `json:"full_name" validate:"required,min=1"`
	Email            string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string   `json:"phone,omitempty"`
	Role             string   `json:"role" validate:"required"`
	Status           string   `json:"status,omitempty" validate:"omitempty,oneof=available assigned on_leave inactive"`
	YearsExperience  int      `json:"years_experience" validate:"gte=0,lte=60"`
	Skills           []string `json:"skills,omitempty"`
	Links            []string `json:"links,omitempty" validate:"omitempty,dive,url"`
	Bio              string   `json:"bio,omitempty"`
	Education        string   `json:"education,omitempty"`
	WorkHistory      string   `json:"work_history,omitempty"`
	Certifications   string   `json:"certifications,omitempty"`
	RemotePreference string   `json:"remote_preference,omitempty" validate:"omitempty,oneof=on_site hybrid remote"`
	Source           string   `json:"source,omitempty"`
	IsProspect       bool     `json:"is_prospect,omitempty"`
}

// UpdateProfileRequest mirrors CreateProfileRequest; zero values mean "leave unchanged"
// except booleans, which are always written.
type UpdateProfileRequest = CreateProfileRequest

// Opportunity represents an open position a talent can be matched to.
type Opportunity struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	RequiredRole string     `json:"required_role"`
	Description  string     `json:"description,omitempty"`
	BudgetMin    int        `json:"budget_min,omitempty"`
	BudgetMax    int        `json:"budget_max,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       string     `json:"status"`
	CreatedBy    uuid.UUID  `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateOpportunityRequest is the request body for creating an opportunity.
type CreateOpportunityRequest struct {
	Title        string     `json:"title" validate:"required,min=1"`
	RequiredRole string     `json:"required_role" validate:"required"`
	Description  string     `json:"description,omitempty"`
	BudgetMin    int        `json:"budget_min,omitempty" validate:"gte=0"`
	BudgetMax    int        `json:"budget_max,omitempty" validate:"gte=0,gtefield=BudgetMin"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Status       string     `json:"status,omitempty" validate:"omitempty,oneof=open matching filled closed"`
}

// Skill represents a skill taxonomy entry with an optional parent skill.
type Skill struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// Match pairs a talent profile with an opportunity, scored 0-100.
type Match struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Score         int       `json:"score"`
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MatchFeedback records a recruiter's verdict on a suggested match.
type MatchFeedback struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match_id"`
	UserID    uuid.UUID `json:"user_id"`
	Helpful   bool      `json:"helpful"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchFeedbackRequest is the request body for POST /matches/{id}/feedback.
type MatchFeedbackRequest struct {
	Helpful bool   `json:"helpful"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

// Assignment links a profile to an opportunity once a match is accepted.
type Assignment struct {
	ID            uuid.UUID  `json:"id"`
	ProfileID     uuid.UUID  `json:"profile_id"`
	OpportunityID uuid.UUID  `json:"opportunity_id"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// EmployeeProject records current utilization of an employee.
type EmployeeProject struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	ProjectName string     `json:"project_name"`
	Utilization int        `json:"utilization"` // percent, store enforces 0-100
	ManagerName string     `json:"manager_name,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// ActivityEntry is a single activity feed record.
type ActivityEntry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   uuid.UUID `json:"entity_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserPreference stores per-user UI flags such as walkthrough completion.
type UserPreference struct {
	UserID               uuid.UUID `json:"user_id"`
	WalkthroughCompleted bool      `json:"walkthrough_completed"`
	WalkthroughStep      int       `json:"walkthrough_step"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Validate validates the CreateProfileRequest using the validator.
func (r *CreateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateOpportunityRequest using the validator.
func (r *CreateOpportunityRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchFeedbackRequest using the validator.
func (r *MatchFeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
