package challenge

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/formatter"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/isodate"
	"github.com/crowdlaunch/challenge-backend/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	cacheTTL     = time.Minute
	cacheCleanup = 5 * time.Minute
)

// ChallengeUsecase implements challenge business logic
type ChallengeUsecase struct {
	repo       repository.ChallengeRepository
	cache      *gocache.Cache
	formatters *formatter.Factory
	logger     *zap.Logger
}

// NewUsecase creates a new challenge use case
func NewUsecase(repo repository.ChallengeRepository, logger *zap.Logger) *ChallengeUsecase {
	return &ChallengeUsecase{
		repo:       repo,
		cache:      gocache.New(cacheTTL, cacheCleanup),
		formatters: formatter.NewFactory(),
		logger:     logger,
	}
}

// CreateChallenge validates the draft, normalizes its dates and persists it.
func (uc *ChallengeUsecase) CreateChallenge(ctx context.Context, draft *entity.ChallengeDraft) (*entity.Challenge, error) {
	challenge, err := challengeFromDraft(draft)
	if err != nil {
		return nil, err
	}

	stored, err := uc.repo.Create(ctx, challenge)
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}

	uc.cache.Flush()

	ctxzap.Info(ctx, "challenge created",
		zap.Int64("challenge_id", stored.ID),
		zap.String("title", stored.Title),
	)

	return stored, nil
}

// ListChallenges returns all challenges in primary-key order.
func (uc *ChallengeUsecase) ListChallenges(ctx context.Context) ([]*entity.Challenge, error) {
	challenges, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	return challenges, nil
}

// GetChallenge returns one challenge by id, read through a short-lived cache.
func (uc *ChallengeUsecase) GetChallenge(ctx context.Context, id int64) (*entity.Challenge, error) {
	key := strconv.FormatInt(id, 10)

	if cached, found := uc.cache.Get(key); found {
		return cached.(*entity.Challenge), nil
	}

	challenge, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(key, challenge, gocache.DefaultExpiration)

	return challenge, nil
}

// UpdateChallenge applies a partial update. Only fields present in the patch
// change; explicit nulls clear, absent fields are left alone.
func (uc *ChallengeUsecase) UpdateChallenge(ctx context.Context, id int64, patch *entity.ChallengePatch) (*entity.Challenge, error) {
	current, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mergeChallenge(current, patch); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update challenge: %w", err)
	}

	uc.cache.Flush()

	ctxzap.Info(ctx, "challenge updated",
		zap.Int64("challenge_id", updated.ID),
		zap.Int("patched_fields", len(patch.Fields)),
	)

	return updated, nil
}

// ExportChallenge renders the challenge summary in the requested format.
func (uc *ChallengeUsecase) ExportChallenge(ctx context.Context, id int64, format entity.ExportFormat) ([]byte, string, string, error) {
	if err := format.Validate(); err != nil {
		return nil, "", "", err
	}

	challenge, err := uc.GetChallenge(ctx, id)
	if err != nil {
		return nil, "", "", err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %v", entity.ErrInvalidField, err)
	}

	data, err := f.Format(challenge)
	if err != nil {
		return nil, "", "", fmt.Errorf("format challenge export: %w", err)
	}

	ctxzap.Info(ctx, "challenge exported",
		zap.Int64("challenge_id", id),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
	)

	return data, f.ContentType(), f.FileExtension(), nil
}

// challengeFromDraft validates a create payload and converts it to the
// domain entity, normalizing every timestamp-bearing field.
func challengeFromDraft(draft *entity.ChallengeDraft) (*entity.Challenge, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("%w: title", entity.ErrMissingField)
	}

	startDate, err := parseOptionalDate(draft.StartDate, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := parseOptionalDate(draft.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	if err := validateMilestones(draft.Milestones); err != nil {
		return nil, err
	}

	challenge := &entity.Challenge{
		Title:                   draft.Title,
		ProblemStatement:        draft.ProblemStatement,
		Goals:                   draft.Goals,
		ChallengeType:           draft.ChallengeType,
		ParticipantType:         draft.ParticipantType,
		GeographicFilter:        draft.GeographicFilter,
		Language:                draft.Language,
		TeamParticipation:       draft.TeamParticipation,
		EnableForums:            draft.EnableForums,
		SubmissionFormats:       draft.SubmissionFormats,
		SubmissionDocumentation: draft.SubmissionDocumentation,
		SubmissionInstructions:  draft.SubmissionInstructions,
		PrizeModel:              draft.PrizeModel,
		FirstPrize:              draft.FirstPrize,
		SecondPrize:             draft.SecondPrize,
		ThirdPrize:              draft.ThirdPrize,
		HonorableMentions:       draft.HonorableMentions,
		Budget:                  draft.Budget,
		NonMonetaryRewards:      draft.NonMonetaryRewards,
		StartDate:               startDate,
		EndDate:                 endDate,
		Milestones:              draft.Milestones,
		TimelineNotes:           draft.TimelineNotes,
		EvaluationModel:         draft.EvaluationModel,
		Reviewers:               draft.Reviewers,
		EvaluationCriteria:      draft.EvaluationCriteria,
		AnonymizedReview:        draft.AnonymizedReview,
		NotificationPreferences: draft.NotificationPreferences,
		NotificationMethods:     draft.NotificationMethods,
		AnnouncementTemplate:    draft.AnnouncementTemplate,
		AccessLevel:             draft.AccessLevel,
		SuccessMetrics:          draft.SuccessMetrics,
	}

	if err := validateAmounts(challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	t, err := isodate.Parse(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %q", entity.ErrInvalidDate, field, *value)
	}

	return &t, nil
}

// validateMilestones checks milestone dates are syntactically valid
// ISO-8601. Valid strings are kept exactly as the client sent them.
func validateMilestones(milestones []entity.Milestone) error {
	for i, m := range milestones {
		if m.Date == nil {
			continue
		}
		if !isodate.Valid(*m.Date) {
			return fmt.Errorf("%w: milestones[%d].date: %q", entity.ErrInvalidDate, i, *m.Date)
		}
	}
	return nil
}

func validateAmounts(c *entity.Challenge) error {
	amounts := map[string]*float64{
		"first_prize":  c.FirstPrize,
		"second_prize": c.SecondPrize,
		"third_prize":  c.ThirdPrize,
		"budget":       c.Budget,
	}
	for field, value := range amounts {
		if value != nil && *value < 0 {
			return fmt.Errorf("%w: %s must be non-negative", entity.ErrInvalidField, field)
		}
	}

	if c.HonorableMentions != nil && *c.HonorableMentions < 0 {
		return fmt.Errorf("%w: honorable_mentions must be non-negative", entity.ErrInvalidField)
	}

	return nil
}
