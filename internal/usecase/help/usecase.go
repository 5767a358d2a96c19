package help

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/repository"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Notifier forwards new help requests to an operations channel. Delivery is
// best-effort: a failed notification is logged by the implementation and
// never fails the intake.
type Notifier interface {
	NotifyHelpRequest(ctx context.Context, req *entity.HelpRequest)
}

// HelpUsecase implements help request intake
type HelpUsecase struct {
	repo     repository.HelpRequestRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewUsecase creates a new help use case
func NewUsecase(repo repository.HelpRequestRepository, notifier Notifier, logger *zap.Logger) *HelpUsecase {
	return &HelpUsecase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateHelpRequest validates and persists one support request.
func (uc *HelpUsecase) CreateHelpRequest(ctx context.Context, draft *entity.HelpRequestDraft) (*entity.HelpRequest, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	start := time.Now()

	stored, err := uc.repo.Create(ctx, &entity.HelpRequest{
		Message:     draft.Message,
		SupportType: draft.SupportType,
		Urgency:     draft.Urgency,
		Email:       draft.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create help request: %w", err)
	}

	ctxzap.Info(ctx, "help request created",
		zap.Int64("help_request_id", stored.ID),
		zap.String("support_type", stored.SupportType),
		zap.String("urgency", stored.Urgency),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	uc.notifier.NotifyHelpRequest(ctx, stored)

	return stored, nil
}

func validateDraft(draft *entity.HelpRequestDraft) error {
	fields := map[string]string{
		"message":      draft.Message,
		"support_type": draft.SupportType,
		"urgency":      draft.Urgency,
		"email":        draft.Email,
	}

	for field, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", entity.ErrMissingField, field)
		}
	}

	return nil
}
