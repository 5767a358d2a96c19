package entity

import "time"

// Challenge is the top-level record describing an innovation challenge.
// Only title is required; everything else is filled in step by step by the
// creation wizard. Optional fields stay nil until the client provides them,
// so they serialize as JSON null rather than zero values.
type Challenge struct {
	ID                      int64                 `json:"id"`
	Title                   string                `json:"title"`
	ProblemStatement        *string               `json:"problem_statement"`
	Goals                   *string               `json:"goals"`
	ChallengeType           *string               `json:"challenge_type"`
	ParticipantType         *string               `json:"participant_type"`
	GeographicFilter        *string               `json:"geographic_filter"`
	Language                *string               `json:"language"`
	TeamParticipation       *bool                 `json:"team_participation"`
	EnableForums            *bool                 `json:"enable_forums"`
	SubmissionFormats       []string              `json:"submission_formats"`
	SubmissionDocumentation []string              `json:"submission_documentation"`
	SubmissionInstructions  *string               `json:"submission_instructions"`
	PrizeModel              *string               `json:"prize_model"`
	FirstPrize              *float64              `json:"first_prize"`
	SecondPrize             *float64              `json:"second_prize"`
	ThirdPrize              *float64              `json:"third_prize"`
	HonorableMentions       *int                  `json:"honorable_mentions"`
	Budget                  *float64              `json:"budget"`
	NonMonetaryRewards      *string               `json:"non_monetary_rewards"`
	StartDate               *time.Time            `json:"start_date"`
	EndDate                 *time.Time            `json:"end_date"`
	Milestones              []Milestone           `json:"milestones"`
	TimelineNotes           *string               `json:"timeline_notes"`
	EvaluationModel         *string               `json:"evaluation_model"`
	Reviewers               []string              `json:"reviewers"`
	EvaluationCriteria      []EvaluationCriterion `json:"evaluation_criteria"`
	AnonymizedReview        *bool                 `json:"anonymized_review"`
	NotificationPreferences []string              `json:"notification_preferences"`
	NotificationMethods     []string              `json:"notification_methods"`
	AnnouncementTemplate    *string               `json:"announcement_template"`
	AccessLevel             []string              `json:"access_level"`
	SuccessMetrics          *string               `json:"success_metrics"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

// Milestone is a named checkpoint in the challenge timeline. It is owned by
// its parent challenge and stored embedded, not as a row of its own. The date
// is kept as the client-supplied ISO-8601 string once it has been validated.
type Milestone struct {
	Enabled bool    `json:"enabled"`
	Name    string  `json:"name"`
	Date    *string `json:"date"`
}

// EvaluationCriterion describes one judging dimension. Weight is free-form
// text, not a number.
type EvaluationCriterion struct {
	Name        string `json:"name"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
}

// HelpRequest is a support intake record. All four fields are required.
type HelpRequest struct {
	ID          int64  `json:"id"`
	Message     string `json:"message"`
	SupportType string `json:"support_type"`
	Urgency     string `json:"urgency"`
	Email       string `json:"email"`
}

// UserRole mirrors the platform's role taxonomy. Authorization is not part of
// this service; the values are kept for schema compatibility.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleReviewer    UserRole = "reviewer"
	RoleParticipant UserRole = "participant"
)
