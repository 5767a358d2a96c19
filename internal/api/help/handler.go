package help

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/logger"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/response"
)

type Handler struct {
	usecase HelpUsecase
}

func NewHandler(usecase HelpUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreateHelpRequest handles POST /api/help
func (h *Handler) CreateHelpRequest(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateHelpRequest")

	var draft entity.HelpRequestDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		ctxzap.Error(ctx, "invalid request body", zap.Error(err))
		response.Error(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	stored, err := h.usecase.CreateHelpRequest(ctx, &draft)
	if err != nil {
		if errors.Is(err, entity.ErrMissingField) {
			ctxzap.Error(ctx, "help request validation failed", zap.Error(err))
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ctxzap.Error(ctx, "failed to create help request", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to create help request")
		return
	}

	ctxzap.Info(ctx, "help request created successfully", zap.Int64("help_request_id", stored.ID))
	response.Success(w, stored)
}
