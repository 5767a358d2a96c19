package copilot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

type fakeConnector struct {
	reply string
	err   error
	last  *entity.ModelRequest
}

func (f *fakeConnector) Invoke(_ context.Context, req *entity.ModelRequest) (string, error) {
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatReturnsAssistantMessage(t *testing.T) {
	connector := &fakeConnector{
		reply: "Good start.\n{\"suggestions\": [\"Narrow the scope\"]}",
	}
	uc := NewUsecase(connector, zap.NewNop())

	msg, err := uc.Chat(context.Background(), &entity.CopilotRequest{Step: 1})

	require.NoError(t, err)
	assert.Equal(t, "assistant", msg.Role)
	assert.Equal(t, "Good start.", msg.Content)
	assert.Equal(t, []string{"Narrow the scope"}, msg.Suggestions)
	assert.NotEmpty(t, msg.Timestamp)
	assert.Equal(t, msg.Timestamp, msg.CreatedAt)
}

func TestChatPassesAssembledPrompt(t *testing.T) {
	connector := &fakeConnector{reply: "ok"}
	uc := NewUsecase(connector, zap.NewNop())

	_, err := uc.Chat(context.Background(), &entity.CopilotRequest{Step: 4})

	require.NoError(t, err)
	require.NotNil(t, connector.last)
	assert.Equal(t, stepInstructions[4], connector.last.System[0].Text)
	assert.Equal(t, maxOutputTokens, connector.last.MaxTokens)
}

func TestChatWrapsTransportErrors(t *testing.T) {
	connector := &fakeConnector{err: errors.New("connection refused")}
	uc := NewUsecase(connector, zap.NewNop())

	_, err := uc.Chat(context.Background(), &entity.CopilotRequest{Step: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrModelUnavailable)
}

func TestChatKeepsModelResponseError(t *testing.T) {
	connector := &fakeConnector{err: entity.ErrModelResponse}
	uc := NewUsecase(connector, zap.NewNop())

	_, err := uc.Chat(context.Background(), &entity.CopilotRequest{Step: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrModelResponse)
	assert.NotErrorIs(t, err, entity.ErrModelUnavailable)
}

func TestChatDegradesWithoutSuggestions(t *testing.T) {
	connector := &fakeConnector{reply: "Plain advice without structure"}
	uc := NewUsecase(connector, zap.NewNop())

	msg, err := uc.Chat(context.Background(), &entity.CopilotRequest{Step: 2})

	require.NoError(t, err)
	assert.Equal(t, "Plain advice without structure", msg.Content)
	assert.NotNil(t, msg.Suggestions)
	assert.Empty(t, msg.Suggestions)
}
