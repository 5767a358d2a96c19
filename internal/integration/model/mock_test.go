package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

func TestMockConnectorReplyIsExtractable(t *testing.T) {
	mock := NewMockConnector(zap.NewNop())

	reply, err := mock.Invoke(context.Background(), &entity.ModelRequest{})

	require.NoError(t, err)
	assert.Contains(t, reply, `{"suggestions": [`)
}
