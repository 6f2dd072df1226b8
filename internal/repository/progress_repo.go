package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
)

type UpsertProgressInput struct {
	UserID        string
	PlanID        int64
	CompletedDays []int64
	CurrentDay    int
	UnlockedDays  []int64
}

type UserProgressRepository struct {
	db DBTX
}

func NewUserProgressRepository(db DBTX) *UserProgressRepository {
	return &UserProgressRepository{db: db}
}

// Upsert writes the authoritative progress row for a (user, plan) pair.
// Last write wins; the row's last_accessed_at is refreshed on every call.
func (r *UserProgressRepository) Upsert(
	ctx context.Context,
	input UpsertProgressInput,
) (*models.UserProgress, error) {
	query := `
		INSERT INTO user_progress (user_id, plan_id, completed_days, current_day, unlocked_days, last_accessed_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id, plan_id) DO UPDATE
		SET completed_days = EXCLUDED.completed_days,
		    current_day = EXCLUDED.current_day,
		    unlocked_days = EXCLUDED.unlocked_days,
		    last_accessed_at = now()
		RETURNING id, user_id, plan_id, completed_days, current_day, unlocked_days, last_accessed_at
	`

	return scanProgress(r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.PlanID,
		input.CompletedDays,
		input.CurrentDay,
		input.UnlockedDays,
	))
}

func (r *UserProgressRepository) ListByUserID(ctx context.Context, userID string) ([]models.UserProgress, error) {
	query := `
		SELECT id, user_id, plan_id, completed_days, current_day, unlocked_days, last_accessed_at
		FROM user_progress
		WHERE user_id = $1
		ORDER BY last_accessed_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make([]models.UserProgress, 0)
	for rows.Next() {
		var row models.UserProgress
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.PlanID,
			&row.CompletedDays,
			&row.CurrentDay,
			&row.UnlockedDays,
			&row.LastAccessedAt,
		); err != nil {
			return nil, err
		}
		progress = append(progress, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return progress, nil
}

func (r *UserProgressRepository) GetByUserAndPlan(
	ctx context.Context,
	userID string,
	planID int64,
) (*models.UserProgress, error) {
	query := `
		SELECT id, user_id, plan_id, completed_days, current_day, unlocked_days, last_accessed_at
		FROM user_progress
		WHERE user_id = $1 AND plan_id = $2
	`
	return scanProgress(r.db.QueryRow(ctx, query, userID, planID))
}

func scanProgress(row pgx.Row) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.PlanID,
		&progress.CompletedDays,
		&progress.CurrentDay,
		&progress.UnlockedDays,
		&progress.LastAccessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
