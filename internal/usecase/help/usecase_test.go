package help

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type fakeHelpRepo struct {
	nextID int64
	stored []*entity.HelpRequest
}

func (r *fakeHelpRepo) Create(_ context.Context, req *entity.HelpRequest) (*entity.HelpRequest, error) {
	r.nextID++
	copied := *req
	copied.ID = r.nextID
	r.stored = append(r.stored, &copied)
	return &copied, nil
}

type fakeNotifier struct {
	notified []*entity.HelpRequest
}

func (n *fakeNotifier) NotifyHelpRequest(_ context.Context, req *entity.HelpRequest) {
	n.notified = append(n.notified, req)
}

func validHelpDraft() *entity.HelpRequestDraft {
	return &entity.HelpRequestDraft{
		Message:     "The export button does nothing",
		SupportType: "technical",
		Urgency:     "high",
		Email:       "user@example.com",
	}
}

func TestCreateHelpRequest(t *testing.T) {
	repo := &fakeHelpRepo{}
	notifier := &fakeNotifier{}
	uc := NewUsecase(repo, notifier, zap.NewNop())

	stored, err := uc.CreateHelpRequest(context.Background(), validHelpDraft())

	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, "technical", stored.SupportType)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, stored.ID, notifier.notified[0].ID)
}

func TestCreateHelpRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.HelpRequestDraft)
	}{
		{"empty message", func(d *entity.HelpRequestDraft) { d.Message = "" }},
		{"blank support type", func(d *entity.HelpRequestDraft) { d.SupportType = "  " }},
		{"empty urgency", func(d *entity.HelpRequestDraft) { d.Urgency = "" }},
		{"empty email", func(d *entity.HelpRequestDraft) { d.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeHelpRepo{}
			notifier := &fakeNotifier{}
			uc := NewUsecase(repo, notifier, zap.NewNop())

			draft := validHelpDraft()
			tt.mutate(draft)

			_, err := uc.CreateHelpRequest(context.Background(), draft)

			assert.ErrorIs(t, err, entity.ErrMissingField)
			assert.Empty(t, repo.stored)
			assert.Empty(t, notifier.notified)
		})
	}
}
