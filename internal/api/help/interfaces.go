package help

import (
	"context"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type HelpUsecase interface {
	CreateHelpRequest(ctx context.Context, draft *entity.HelpRequestDraft) (*entity.HelpRequest, error)
}
