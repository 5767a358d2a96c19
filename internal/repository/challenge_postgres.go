package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChallengeRepository defines the interface for challenge persistence
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error)
	Get(ctx context.Context, id int64) (*entity.Challenge, error)
	List(ctx context.Context) ([]*entity.Challenge, error)
	Update(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error)
}

var _ ChallengeRepository = &ChallengePostgres{}

// ChallengePostgres implements ChallengeRepository using PostgreSQL
type ChallengePostgres struct {
	db *pgxpool.Pool
}

func NewChallengePostgres(db *pgxpool.Pool) *ChallengePostgres {
	return &ChallengePostgres{db: db}
}

const challengeColumns = `id, title, problem_statement, goals, challenge_type, participant_type,
	geographic_filter, language, team_participation, enable_forums, submission_formats,
	submission_documentation, submission_instructions, prize_model, first_prize, second_prize,
	third_prize, honorable_mentions, budget, non_monetary_rewards, start_date, end_date,
	milestones, timeline_notes, evaluation_model, reviewers, evaluation_criteria,
	anonymized_review, notification_preferences, notification_methods, announcement_template,
	access_level, success_metrics, created_at, updated_at`

const challengeInsertQuery = `INSERT INTO challenges (
	title, problem_statement, goals, challenge_type, participant_type, geographic_filter,
	language, team_participation, enable_forums, submission_formats, submission_documentation,
	submission_instructions, prize_model, first_prize, second_prize, third_prize,
	honorable_mentions, budget, non_monetary_rewards, start_date, end_date, milestones,
	timeline_notes, evaluation_model, reviewers, evaluation_criteria, anonymized_review,
	notification_preferences, notification_methods, announcement_template, access_level,
	success_metrics
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32
) RETURNING ` + challengeColumns

const challengeUpdateQuery = `UPDATE challenges SET
	title = $2, problem_statement = $3, goals = $4, challenge_type = $5, participant_type = $6,
	geographic_filter = $7, language = $8, team_participation = $9, enable_forums = $10,
	submission_formats = $11, submission_documentation = $12, submission_instructions = $13,
	prize_model = $14, first_prize = $15, second_prize = $16, third_prize = $17,
	honorable_mentions = $18, budget = $19, non_monetary_rewards = $20, start_date = $21,
	end_date = $22, milestones = $23, timeline_notes = $24, evaluation_model = $25,
	reviewers = $26, evaluation_criteria = $27, anonymized_review = $28,
	notification_preferences = $29, notification_methods = $30, announcement_template = $31,
	access_level = $32, success_metrics = $33, updated_at = now()
WHERE id = $1
RETURNING ` + challengeColumns

func (r *ChallengePostgres) Create(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error) {
	args, err := challengeWriteArgs(challenge)
	if err != nil {
		return nil, fmt.Errorf("encode challenge: %w", err)
	}

	row := r.db.QueryRow(ctx, challengeInsertQuery, args...)

	stored, err := scanChallenge(row)
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}

	return stored, nil
}

func (r *ChallengePostgres) Get(ctx context.Context, id int64) (*entity.Challenge, error) {
	row := r.db.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1`, id)

	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}

	return challenge, nil
}

func (r *ChallengePostgres) List(ctx context.Context) ([]*entity.Challenge, error) {
	rows, err := r.db.Query(ctx, `SELECT `+challengeColumns+` FROM challenges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	return challenges, nil
}

func (r *ChallengePostgres) Update(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error) {
	args, err := challengeWriteArgs(challenge)
	if err != nil {
		return nil, fmt.Errorf("encode challenge: %w", err)
	}

	row := r.db.QueryRow(ctx, challengeUpdateQuery, append([]any{challenge.ID}, args...)...)

	stored, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("update challenge: %w", err)
	}

	return stored, nil
}
