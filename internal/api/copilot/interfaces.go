package copilot

import (
	"context"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type CopilotUsecase interface {
	Chat(ctx context.Context, req *entity.CopilotRequest) (*entity.AssistantMessage, error)
}
