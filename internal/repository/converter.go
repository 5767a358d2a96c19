package repository

import (
	"encoding/json"
	"fmt"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/jackc/pgx/v5"
)

// challengeWriteArgs encodes the mutable challenge columns as query
// arguments, in the shared column order used by the insert and update
// statements. JSONB columns stay NULL when the field was never provided.
func challengeWriteArgs(c *entity.Challenge) ([]any, error) {
	submissionFormats, err := jsonbOrNull(c.SubmissionFormats)
	if err != nil {
		return nil, err
	}
	submissionDocumentation, err := jsonbOrNull(c.SubmissionDocumentation)
	if err != nil {
		return nil, err
	}
	milestones, err := jsonbOrNull(c.Milestones)
	if err != nil {
		return nil, err
	}
	reviewers, err := jsonbOrNull(c.Reviewers)
	if err != nil {
		return nil, err
	}
	evaluationCriteria, err := jsonbOrNull(c.EvaluationCriteria)
	if err != nil {
		return nil, err
	}
	notificationPreferences, err := jsonbOrNull(c.NotificationPreferences)
	if err != nil {
		return nil, err
	}
	notificationMethods, err := jsonbOrNull(c.NotificationMethods)
	if err != nil {
		return nil, err
	}
	accessLevel, err := jsonbOrNull(c.AccessLevel)
	if err != nil {
		return nil, err
	}

	return []any{
		c.Title,
		c.ProblemStatement,
		c.Goals,
		c.ChallengeType,
		c.ParticipantType,
		c.GeographicFilter,
		c.Language,
		c.TeamParticipation,
		c.EnableForums,
		submissionFormats,
		submissionDocumentation,
		c.SubmissionInstructions,
		c.PrizeModel,
		c.FirstPrize,
		c.SecondPrize,
		c.ThirdPrize,
		c.HonorableMentions,
		c.Budget,
		c.NonMonetaryRewards,
		c.StartDate,
		c.EndDate,
		milestones,
		c.TimelineNotes,
		c.EvaluationModel,
		reviewers,
		evaluationCriteria,
		c.AnonymizedReview,
		notificationPreferences,
		notificationMethods,
		c.AnnouncementTemplate,
		accessLevel,
		c.SuccessMetrics,
	}, nil
}

// scanChallenge reads one challenge row in challengeColumns order.
func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var (
		c                       entity.Challenge
		submissionFormats       []byte
		submissionDocumentation []byte
		milestones              []byte
		reviewers               []byte
		evaluationCriteria      []byte
		notificationPreferences []byte
		notificationMethods     []byte
		accessLevel             []byte
	)

	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.ProblemStatement,
		&c.Goals,
		&c.ChallengeType,
		&c.ParticipantType,
		&c.GeographicFilter,
		&c.Language,
		&c.TeamParticipation,
		&c.EnableForums,
		&submissionFormats,
		&submissionDocumentation,
		&c.SubmissionInstructions,
		&c.PrizeModel,
		&c.FirstPrize,
		&c.SecondPrize,
		&c.ThirdPrize,
		&c.HonorableMentions,
		&c.Budget,
		&c.NonMonetaryRewards,
		&c.StartDate,
		&c.EndDate,
		&milestones,
		&c.TimelineNotes,
		&c.EvaluationModel,
		&reviewers,
		&evaluationCriteria,
		&c.AnonymizedReview,
		&notificationPreferences,
		&notificationMethods,
		&c.AnnouncementTemplate,
		&accessLevel,
		&c.SuccessMetrics,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeJSONB(submissionFormats, &c.SubmissionFormats); err != nil {
		return nil, err
	}
	if err := decodeJSONB(submissionDocumentation, &c.SubmissionDocumentation); err != nil {
		return nil, err
	}
	if err := decodeJSONB(milestones, &c.Milestones); err != nil {
		return nil, err
	}
	if err := decodeJSONB(reviewers, &c.Reviewers); err != nil {
		return nil, err
	}
	if err := decodeJSONB(evaluationCriteria, &c.EvaluationCriteria); err != nil {
		return nil, err
	}
	if err := decodeJSONB(notificationPreferences, &c.NotificationPreferences); err != nil {
		return nil, err
	}
	if err := decodeJSONB(notificationMethods, &c.NotificationMethods); err != nil {
		return nil, err
	}
	if err := decodeJSONB(accessLevel, &c.AccessLevel); err != nil {
		return nil, err
	}

	return &c, nil
}

func jsonbOrNull(v any) (any, error) {
	switch s := v.(type) {
	case []string:
		if s == nil {
			return nil, nil
		}
	case []entity.Milestone:
		if s == nil {
			return nil, nil
		}
	case []entity.EvaluationCriterion:
		if s == nil {
			return nil, nil
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb column: %w", err)
	}
	return data, nil
}

func decodeJSONB(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal jsonb column: %w", err)
	}
	return nil
}
