package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/repository"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden")
	ErrDuplicatePlan = errors.New("a plan for this hobby already exists")
	ErrPlanNotFound  = errors.New("plan not found")
)

const pgUniqueViolation = "23505"

type hobbyPlanStore interface {
	Create(ctx context.Context, input repository.CreateHobbyPlanInput) (*models.HobbyPlan, error)
	ListByUserID(ctx context.Context, userID string) ([]models.HobbyPlan, error)
	GetByID(ctx context.Context, planID int64) (*models.HobbyPlan, error)
	GetByUserAndHobby(ctx context.Context, userID, hobby string) (*models.HobbyPlan, error)
	Delete(ctx context.Context, planID int64, userID string) (int64, error)
	DeleteByUserAndHobby(ctx context.Context, userID, hobby string) (int64, error)
}

type PlanService struct {
	planRepo hobbyPlanStore
}

func NewPlanService(planRepo *repository.HobbyPlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

type CreatePlanInput struct {
	UserID   string
	Hobby    string
	Title    string
	Overview string
	PlanData *models.PlanData
	// Force replaces an existing plan for the same hobby instead of
	// returning ErrDuplicatePlan.
	Force bool
}

// CreatePlan persists a generated plan. The one-active-plan-per-hobby policy
// is enforced by the database's unique index, not by a check-then-create
// read, so concurrent saves cannot slip past it.
func (s *PlanService) CreatePlan(ctx context.Context, input CreatePlanInput) (*models.HobbyPlan, error) {
	userID := strings.TrimSpace(input.UserID)
	hobby := NormalizeHobby(input.Hobby)
	if userID == "" || hobby == "" || input.PlanData == nil {
		return nil, ErrInvalidInput
	}

	NormalizePlanData(input.PlanData, GeneratePlanInput{
		Hobby:         hobby,
		Experience:    input.PlanData.Experience,
		TimeAvailable: input.PlanData.TimeAvailable,
		Goal:          input.PlanData.Goal,
		TotalDays:     input.PlanData.TotalDays,
	})

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = input.PlanData.Title
	}
	overview := strings.TrimSpace(input.Overview)
	if overview == "" {
		overview = input.PlanData.Overview
	}

	if input.Force {
		if _, err := s.planRepo.DeleteByUserAndHobby(ctx, userID, hobby); err != nil {
			return nil, err
		}
	}

	plan, err := s.planRepo.Create(ctx, repository.CreateHobbyPlanInput{
		UserID:   userID,
		Hobby:    hobby,
		Title:    title,
		Overview: overview,
		PlanData: input.PlanData,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicatePlan
		}
		return nil, err
	}

	return plan, nil
}

func (s *PlanService) ListPlans(ctx context.Context, userID string) ([]models.HobbyPlan, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.planRepo.ListByUserID(ctx, userID)
}

// GetPlanForHobby returns the user's existing plan for a hobby, or
// ErrPlanNotFound. Used to build the duplicate-conflict payload.
func (s *PlanService) GetPlanForHobby(ctx context.Context, userID, hobby string) (*models.HobbyPlan, error) {
	plan, err := s.planRepo.GetByUserAndHobby(ctx, userID, NormalizeHobby(hobby))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes the user's plan; progress rows cascade in the database.
func (s *PlanService) DeletePlan(ctx context.Context, planID int64, userID string) error {
	if planID <= 0 || strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	deleted, err := s.planRepo.Delete(ctx, planID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPlanNotFound
	}
	return nil
}
