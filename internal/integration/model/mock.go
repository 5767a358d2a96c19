package model

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

// MockConnector returns a canned reply so the copilot path can be exercised
// without a model backend.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

const mockReply = `Here are a few thoughts on this step of your challenge. Make sure the ` +
	`scope stays narrow enough to judge fairly, and that participants can tell at a ` +
	`glance what a winning entry looks like.

{"suggestions": ["Define one measurable primary goal", "Name your target audience explicitly", "List accepted submission formats", "Set a realistic timeline buffer", "Publish the judging criteria up front"]}`

func (m *MockConnector) Invoke(ctx context.Context, req *entity.ModelRequest) (string, error) {
	ctxzap.Info(ctx, "mock model invoked",
		zap.Int("message_count", len(req.Messages)),
		zap.Int("max_tokens", req.MaxTokens),
	)

	return mockReply, nil
}
