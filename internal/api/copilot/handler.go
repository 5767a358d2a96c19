package copilot

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/logger"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/response"
)

type Handler struct {
	usecase CopilotUsecase
}

func NewHandler(usecase CopilotUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Chat handles POST /api/copilot
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CopilotChat")

	var req entity.CopilotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "invalid request body", zap.Error(err))
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	ctx = logger.AddFields(ctx, zap.Int("step", req.Step))

	message, err := h.usecase.Chat(ctx, &req)
	if err != nil {
		// Model-side failures are all service errors to the caller; the
		// provider detail stays in the logs.
		ctxzap.Error(ctx, "copilot chat failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to process copilot request")
		return
	}

	ctxzap.Info(ctx, "copilot chat completed",
		zap.Int("suggestion_count", len(message.Suggestions)),
	)
	response.Success(w, message)
}
