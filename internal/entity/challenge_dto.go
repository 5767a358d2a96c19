package entity

import (
	"encoding/json"
	"fmt"
)

// ChallengeDraft is the create payload. Dates arrive as ISO-8601 strings and
// are validated and normalized by the usecase before anything is persisted.
type ChallengeDraft struct {
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
	StartDate               *string               `json:"start_date"`
	EndDate                 *string               `json:"end_date"`
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
}

// ChallengePatch is a partial update payload. It keeps the raw JSON per field
// so the merge step can tell the difference between a key that was absent
// (leave the stored value alone) and a key that was explicitly null (clear
// the stored value). Server-assigned fields are never merged regardless of
// what the client sends.
type ChallengePatch struct {
	Fields map[string]json.RawMessage
}

func (p *ChallengePatch) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &p.Fields)
}

// Has reports whether the client included the field at all.
func (p *ChallengePatch) Has(field string) bool {
	_, ok := p.Fields[field]
	return ok
}

// IsNull reports whether the client sent an explicit null for the field.
func (p *ChallengePatch) IsNull(field string) bool {
	raw, ok := p.Fields[field]
	return ok && string(raw) == "null"
}

// Get decodes the field into dst. Callers check Has/IsNull first.
func (p *ChallengePatch) Get(field string, dst any) error {
	raw, ok := p.Fields[field]
	if !ok {
		return fmt.Errorf("field %q not present in patch", field)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrInvalidField, field, err)
	}
	return nil
}

// HelpRequestDraft is the help intake payload.
type HelpRequestDraft struct {
	Message     string `json:"message"`
	SupportType string `json:"support_type"`
	Urgency     string `json:"urgency"`
	Email       string `json:"email"`
}

// ExportFormat selects the challenge summary export representation.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

func (f ExportFormat) Validate() error {
	switch f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return nil
	default:
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidField, string(f))
	}
}
