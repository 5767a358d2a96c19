package help

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type fakeUsecase struct {
	stored *entity.HelpRequest
	err    error
}

func (f *fakeUsecase) CreateHelpRequest(_ context.Context, _ *entity.HelpRequestDraft) (*entity.HelpRequest, error) {
	return f.stored, f.err
}

func newTestRouter(uc HelpUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestCreateHelpRequestEndpoint(t *testing.T) {
	router := newTestRouter(&fakeUsecase{
		stored: &entity.HelpRequest{ID: 5, Message: "Broken export", SupportType: "technical"},
	})

	body := `{"message": "Broken export", "support_type": "technical", "urgency": "high", "email": "a@b.c"}`
	req := httptest.NewRequest(http.MethodPost, "/help", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":5`)
}

func TestCreateHelpRequestValidationError(t *testing.T) {
	router := newTestRouter(&fakeUsecase{err: entity.ErrMissingField})

	req := httptest.NewRequest(http.MethodPost, "/help", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateHelpRequestBadBody(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/help", strings.NewReader("[broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
