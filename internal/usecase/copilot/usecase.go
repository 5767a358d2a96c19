package copilot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase wires prompt assembly, the outbound model call and response
// extraction into the copilot chat operation.
type Usecase struct {
	model  ModelConnector
	logger *zap.Logger
}

func NewUsecase(model ModelConnector, logger *zap.Logger) *Usecase {
	return &Usecase{
		model:  model,
		logger: logger,
	}
}

// Chat runs one copilot turn. The model is called exactly once, with no
// retry; a slow model simply makes the request slow.
func (uc *Usecase) Chat(ctx context.Context, req *entity.CopilotRequest) (*entity.AssistantMessage, error) {
	prompt := BuildPrompt(req)

	ctxzap.Info(ctx, "invoking model",
		zap.Int("step", req.Step),
		zap.Int("message_count", len(req.Messages)),
		zap.Int("context_count", len(req.Context)),
	)

	raw, err := uc.model.Invoke(ctx, prompt)
	if err != nil {
		if errors.Is(err, entity.ErrModelResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrModelUnavailable, err)
	}

	narrative, suggestions := ExtractSuggestions(ctx, raw)

	ctxzap.Info(ctx, "model reply processed",
		zap.Int("narrative_length", len(narrative)),
		zap.Int("suggestion_count", len(suggestions)),
	)

	now := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	return &entity.AssistantMessage{
		Role:        "assistant",
		Content:     narrative,
		Timestamp:   now,
		CreatedAt:   now,
		Suggestions: suggestions,
	}, nil
}
