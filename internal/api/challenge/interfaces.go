package challenge

import (
	"context"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type ChallengeUsecase interface {
	CreateChallenge(ctx context.Context, draft *entity.ChallengeDraft) (*entity.Challenge, error)
	ListChallenges(ctx context.Context) ([]*entity.Challenge, error)
	GetChallenge(ctx context.Context, id int64) (*entity.Challenge, error)
	UpdateChallenge(ctx context.Context, id int64, patch *entity.ChallengePatch) (*entity.Challenge, error)
	ExportChallenge(ctx context.Context, id int64, format entity.ExportFormat) (data []byte, contentType string, extension string, err error)
}
