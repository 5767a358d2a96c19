package copilot

import (
	"context"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

// ModelConnector invokes the hosted model with an assembled prompt and
// returns the raw text of its reply.
type ModelConnector interface {
	Invoke(ctx context.Context, req *entity.ModelRequest) (string, error)
}
