package repository

import (
	"context"
	"fmt"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HelpRequestRepository defines the interface for help request persistence
type HelpRequestRepository interface {
	Create(ctx context.Context, req *entity.HelpRequest) (*entity.HelpRequest, error)
}

var _ HelpRequestRepository = &HelpRequestPostgres{}

// HelpRequestPostgres implements HelpRequestRepository using PostgreSQL
type HelpRequestPostgres struct {
	db *pgxpool.Pool
}

func NewHelpRequestPostgres(db *pgxpool.Pool) *HelpRequestPostgres {
	return &HelpRequestPostgres{db: db}
}

func (r *HelpRequestPostgres) Create(ctx context.Context, req *entity.HelpRequest) (*entity.HelpRequest, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO help_requests (message, support_type, urgency, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, message, support_type, urgency, email`,
		req.Message, req.SupportType, req.Urgency, req.Email,
	)

	var stored entity.HelpRequest
	if err := row.Scan(&stored.ID, &stored.Message, &stored.SupportType, &stored.Urgency, &stored.Email); err != nil {
		return nil, fmt.Errorf("create help request: %w", err)
	}

	return &stored, nil
}
