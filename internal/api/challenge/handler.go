package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/logger"
	"github.com/crowdlaunch/challenge-backend/internal/pkg/response"
)

type Handler struct {
	usecase ChallengeUsecase
}

func NewHandler(usecase ChallengeUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreateChallenge handles POST /api/challenges
func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateChallenge")

	var draft entity.ChallengeDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.respondError(ctx, w, http.StatusUnprocessableEntity, "invalid request body", err)
		return
	}

	challenge, err := h.usecase.CreateChallenge(ctx, &draft)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "challenge created successfully", zap.Int64("challenge_id", challenge.ID))
	response.Success(w, challenge)
}

// ListChallenges handles GET /api/challenges
func (h *Handler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListChallenges")

	challenges, err := h.usecase.ListChallenges(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "challenges listed successfully", zap.Int("count", len(challenges)))
	response.Success(w, challenges)
}

// GetChallenge handles GET /api/challenges/{id}
func (h *Handler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := challengeID(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusNotFound, "challenge not found", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.Int64("challenge_id", id),
		zap.String("action", "GetChallenge"),
	)

	challenge, err := h.usecase.GetChallenge(ctx, id)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, challenge)
}

// UpdateChallenge handles PUT /api/challenges/{id}
func (h *Handler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := challengeID(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusNotFound, "challenge not found", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.Int64("challenge_id", id),
		zap.String("action", "UpdateChallenge"),
	)

	var patch entity.ChallengePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(ctx, w, http.StatusUnprocessableEntity, "invalid request body", err)
		return
	}

	challenge, err := h.usecase.UpdateChallenge(ctx, id, &patch)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "challenge updated successfully")
	response.Success(w, challenge)
}

// ExportChallenge handles GET /api/challenges/{id}/export
func (h *Handler) ExportChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := challengeID(r)
	if err != nil {
		h.respondError(ctx, w, http.StatusNotFound, "challenge not found", err)
		return
	}

	format := entity.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	ctx = logger.AddFields(ctx,
		zap.Int64("challenge_id", id),
		zap.String("format", string(format)),
		zap.String("action", "ExportChallenge"),
	)

	data, contentType, extension, err := h.usecase.ExportChallenge(ctx, id, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	filename := fmt.Sprintf("challenge-%d-%s%s", id, uuid.New().String()[:8], extension)
	response.Attachment(w, contentType, filename, data)
}

func challengeID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse challenge id: %w", err)
	}
	return id, nil
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrChallengeNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "challenge not found", err)
	case errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidDate),
		errors.Is(err, entity.ErrInvalidField):
		h.respondError(ctx, w, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
