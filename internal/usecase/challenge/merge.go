package challenge

import (
	"fmt"
	"strings"
	"time"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/isodate"
)

// mergeChallenge applies a partial update onto the stored challenge. Every
// mutable field is enumerated explicitly; anything not listed here (id,
// created_at, updated_at) cannot be changed by a client no matter what the
// payload contains. Absent keys leave the stored value untouched, explicit
// nulls clear it.
func mergeChallenge(current *entity.Challenge, patch *entity.ChallengePatch) error {
	if err := mergeTitle(current, patch); err != nil {
		return err
	}

	if err := applyOptional(patch, "problem_statement", &current.ProblemStatement); err != nil {
		return err
	}
	if err := applyOptional(patch, "goals", &current.Goals); err != nil {
		return err
	}
	if err := applyOptional(patch, "challenge_type", &current.ChallengeType); err != nil {
		return err
	}
	if err := applyOptional(patch, "participant_type", &current.ParticipantType); err != nil {
		return err
	}
	if err := applyOptional(patch, "geographic_filter", &current.GeographicFilter); err != nil {
		return err
	}
	if err := applyOptional(patch, "language", &current.Language); err != nil {
		return err
	}
	if err := applyOptional(patch, "team_participation", &current.TeamParticipation); err != nil {
		return err
	}
	if err := applyOptional(patch, "enable_forums", &current.EnableForums); err != nil {
		return err
	}
	if err := applyList(patch, "submission_formats", &current.SubmissionFormats); err != nil {
		return err
	}
	if err := applyList(patch, "submission_documentation", &current.SubmissionDocumentation); err != nil {
		return err
	}
	if err := applyOptional(patch, "submission_instructions", &current.SubmissionInstructions); err != nil {
		return err
	}
	if err := applyOptional(patch, "prize_model", &current.PrizeModel); err != nil {
		return err
	}
	if err := applyOptional(patch, "first_prize", &current.FirstPrize); err != nil {
		return err
	}
	if err := applyOptional(patch, "second_prize", &current.SecondPrize); err != nil {
		return err
	}
	if err := applyOptional(patch, "third_prize", &current.ThirdPrize); err != nil {
		return err
	}
	if err := applyOptional(patch, "honorable_mentions", &current.HonorableMentions); err != nil {
		return err
	}
	if err := applyOptional(patch, "budget", &current.Budget); err != nil {
		return err
	}
	if err := applyOptional(patch, "non_monetary_rewards", &current.NonMonetaryRewards); err != nil {
		return err
	}
	if err := mergeDate(patch, "start_date", &current.StartDate); err != nil {
		return err
	}
	if err := mergeDate(patch, "end_date", &current.EndDate); err != nil {
		return err
	}
	if err := mergeMilestones(current, patch); err != nil {
		return err
	}
	if err := applyOptional(patch, "timeline_notes", &current.TimelineNotes); err != nil {
		return err
	}
	if err := applyOptional(patch, "evaluation_model", &current.EvaluationModel); err != nil {
		return err
	}
	if err := applyList(patch, "reviewers", &current.Reviewers); err != nil {
		return err
	}
	if err := applyList(patch, "evaluation_criteria", &current.EvaluationCriteria); err != nil {
		return err
	}
	if err := applyOptional(patch, "anonymized_review", &current.AnonymizedReview); err != nil {
		return err
	}
	if err := applyList(patch, "notification_preferences", &current.NotificationPreferences); err != nil {
		return err
	}
	if err := applyList(patch, "notification_methods", &current.NotificationMethods); err != nil {
		return err
	}
	if err := applyOptional(patch, "announcement_template", &current.AnnouncementTemplate); err != nil {
		return err
	}
	if err := applyList(patch, "access_level", &current.AccessLevel); err != nil {
		return err
	}
	if err := applyOptional(patch, "success_metrics", &current.SuccessMetrics); err != nil {
		return err
	}

	return validateAmounts(current)
}

func mergeTitle(current *entity.Challenge, patch *entity.ChallengePatch) error {
	if !patch.Has("title") {
		return nil
	}
	if patch.IsNull("title") {
		return fmt.Errorf("%w: title cannot be cleared", entity.ErrInvalidField)
	}

	var title string
	if err := patch.Get("title", &title); err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title", entity.ErrMissingField)
	}

	current.Title = title
	return nil
}

func mergeDate(patch *entity.ChallengePatch, field string, dst **time.Time) error {
	if !patch.Has(field) {
		return nil
	}
	if patch.IsNull(field) {
		*dst = nil
		return nil
	}

	var value string
	if err := patch.Get(field, &value); err != nil {
		return err
	}

	t, err := isodate.Parse(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %q", entity.ErrInvalidDate, field, value)
	}

	*dst = &t
	return nil
}

func mergeMilestones(current *entity.Challenge, patch *entity.ChallengePatch) error {
	if !patch.Has("milestones") {
		return nil
	}
	if patch.IsNull("milestones") {
		current.Milestones = nil
		return nil
	}

	var milestones []entity.Milestone
	if err := patch.Get("milestones", &milestones); err != nil {
		return err
	}
	if err := validateMilestones(milestones); err != nil {
		return err
	}

	current.Milestones = milestones
	return nil
}

// applyOptional merges a scalar optional field.
func applyOptional[T any](patch *entity.ChallengePatch, field string, dst **T) error {
	if !patch.Has(field) {
		return nil
	}
	if patch.IsNull(field) {
		*dst = nil
		return nil
	}

	var value T
	if err := patch.Get(field, &value); err != nil {
		return err
	}

	*dst = &value
	return nil
}

// applyList merges a list-valued field.
func applyList[T any](patch *entity.ChallengePatch, field string, dst *[]T) error {
	if !patch.Has(field) {
		return nil
	}
	if patch.IsNull(field) {
		*dst = nil
		return nil
	}

	var value []T
	if err := patch.Get(field, &value); err != nil {
		return err
	}

	*dst = value
	return nil
}
