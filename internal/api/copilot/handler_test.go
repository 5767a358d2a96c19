package copilot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type fakeUsecase struct {
	message *entity.AssistantMessage
	err     error
	lastReq *entity.CopilotRequest
}

func (f *fakeUsecase) Chat(_ context.Context, req *entity.CopilotRequest) (*entity.AssistantMessage, error) {
	f.lastReq = req
	return f.message, f.err
}

func newTestRouter(uc CopilotUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestChatEndpoint(t *testing.T) {
	uc := &fakeUsecase{
		message: &entity.AssistantMessage{
			Role:        "assistant",
			Content:     "Some advice",
			Suggestions: []string{"Tip"},
		},
	}
	router := newTestRouter(uc)

	body := `{"messages": [{"role": "user", "content": "help"}], "step": 2, "formData": {"title": "X"}}`
	req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":"Some advice"`)
	assert.Contains(t, rec.Body.String(), `"suggestions":["Tip"]`)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, 2, uc.lastReq.Step)
	assert.Equal(t, "X", uc.lastReq.FormData["title"])
}

func TestChatEndpointBadBody(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestChatEndpointModelFailure(t *testing.T) {
	router := newTestRouter(&fakeUsecase{err: entity.ErrModelUnavailable})

	req := httptest.NewRequest(http.MethodPost, "/copilot", strings.NewReader(`{"step": 1}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to process copilot request")
}
