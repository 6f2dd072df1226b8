package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CreateHobbyPlanInput struct {
	UserID   string
	Hobby    string
	Title    string
	Overview string
	PlanData *models.PlanData
}

type HobbyPlanRepository struct {
	db DBTX
}

func NewHobbyPlanRepository(db DBTX) *HobbyPlanRepository {
	return &HobbyPlanRepository{db: db}
}

func (r *HobbyPlanRepository) Create(
	ctx context.Context,
	input CreateHobbyPlanInput,
) (*models.HobbyPlan, error) {
	planJSON, err := json.Marshal(input.PlanData)
	if err != nil {
		return nil, fmt.Errorf("marshal plan data: %w", err)
	}

	query := `
		INSERT INTO hobby_plans (user_id, hobby, title, overview, plan_data)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		RETURNING id, user_id, hobby, title, overview, plan_data, created_at
	`

	return r.scanPlan(r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.Hobby,
		input.Title,
		input.Overview,
		string(planJSON),
	))
}

func (r *HobbyPlanRepository) ListByUserID(ctx context.Context, userID string) ([]models.HobbyPlan, error) {
	query := `
		SELECT id, user_id, hobby, title, overview, plan_data, created_at
		FROM hobby_plans
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]models.HobbyPlan, 0)
	for rows.Next() {
		plan, err := scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *HobbyPlanRepository) GetByID(ctx context.Context, planID int64) (*models.HobbyPlan, error) {
	query := `
		SELECT id, user_id, hobby, title, overview, plan_data, created_at
		FROM hobby_plans
		WHERE id = $1
	`
	return r.scanPlan(r.db.QueryRow(ctx, query, planID))
}

func (r *HobbyPlanRepository) GetByUserAndHobby(
	ctx context.Context,
	userID string,
	hobby string,
) (*models.HobbyPlan, error) {
	query := `
		SELECT id, user_id, hobby, title, overview, plan_data, created_at
		FROM hobby_plans
		WHERE user_id = $1 AND hobby = $2
	`
	return r.scanPlan(r.db.QueryRow(ctx, query, userID, hobby))
}

// Delete removes the plan when it belongs to userID. Progress rows are
// removed by the ON DELETE CASCADE foreign key.
func (r *HobbyPlanRepository) Delete(ctx context.Context, planID int64, userID string) (int64, error) {
	query := `DELETE FROM hobby_plans WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, planID, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *HobbyPlanRepository) DeleteByUserAndHobby(
	ctx context.Context,
	userID string,
	hobby string,
) (int64, error) {
	query := `DELETE FROM hobby_plans WHERE user_id = $1 AND hobby = $2`
	tag, err := r.db.Exec(ctx, query, userID, hobby)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *HobbyPlanRepository) scanPlan(row pgx.Row) (*models.HobbyPlan, error) {
	var plan models.HobbyPlan
	var planJSON []byte
	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Hobby,
		&plan.Title,
		&plan.Overview,
		&planJSON,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalPlanData(planJSON, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func scanPlanRow(rows pgx.Rows) (*models.HobbyPlan, error) {
	var plan models.HobbyPlan
	var planJSON []byte
	err := rows.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Hobby,
		&plan.Title,
		&plan.Overview,
		&planJSON,
		&plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalPlanData(planJSON, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func unmarshalPlanData(planJSON []byte, plan *models.HobbyPlan) error {
	if len(planJSON) == 0 {
		return nil
	}
	var data models.PlanData
	if err := json.Unmarshal(planJSON, &data); err != nil {
		return fmt.Errorf("unmarshal plan data: %w", err)
	}
	plan.PlanData = &data
	return nil
}
