package model

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/config"
	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/integration/common"
	pkghttp "github.com/crowdlaunch/challenge-backend/pkg/http"
)

// Connector invokes the hosted model through its Bedrock-compatible HTTP
// endpoint.
type Connector struct {
	config    config.ModelConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ModelConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Invoke sends the assembled prompt and returns the raw text of the reply.
// A reply without a top-level content array is a protocol violation and
// surfaces as ErrModelResponse.
func (c *Connector) Invoke(ctx context.Context, req *entity.ModelRequest) (string, error) {
	ctxzap.Info(ctx, "invoking hosted model",
		zap.String("model_id", c.config.ModelID),
		zap.Int("max_tokens", req.MaxTokens),
		zap.Int("message_count", len(req.Messages)),
	)

	endpoint := strings.ReplaceAll(c.config.InvokeEndpoint, "{model_id}", c.config.ModelID)

	var resp entity.ModelResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		return "", fmt.Errorf("invoke model: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", entity.ErrModelResponse
	}

	text := resp.Content[0].Text

	ctxzap.Info(ctx, "model reply received", zap.Int("text_length", len(text)))

	return text, nil
}
