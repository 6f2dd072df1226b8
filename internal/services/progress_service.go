package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/repository"
)

type progressStore interface {
	Upsert(ctx context.Context, input repository.UpsertProgressInput) (*models.UserProgress, error)
	ListByUserID(ctx context.Context, userID string) ([]models.UserProgress, error)
	GetByUserAndPlan(ctx context.Context, userID string, planID int64) (*models.UserProgress, error)
}

type planReader interface {
	GetByID(ctx context.Context, planID int64) (*models.HobbyPlan, error)
}

type ProgressService struct {
	progressRepo progressStore
	planRepo     planReader
	guestLimit   int
}

func NewProgressService(
	progressRepo *repository.UserProgressRepository,
	planRepo *repository.HobbyPlanRepository,
	guestLimit int,
) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		planRepo:     planRepo,
		guestLimit:   guestLimit,
	}
}

type SaveProgressInput struct {
	UserID        string
	PlanID        int64
	CompletedDays []int64
	CurrentDay    int
	// UnlockedDays is optional; when empty the server recomputes it from
	// the completed set and the caller's auth state.
	UnlockedDays  []int64
	Authenticated bool
}

// SaveProgress upserts the authoritative progress row for (user, plan).
// Last write wins. The unlock invariants always hold on the stored row:
// day 1 unlocked, every completed day unlocked, completion gates the next
// day, guests capped by the configured limit.
func (s *ProgressService) SaveProgress(
	ctx context.Context,
	input SaveProgressInput,
) (*models.UserProgress, error) {
	if strings.TrimSpace(input.UserID) == "" || input.PlanID <= 0 {
		return nil, ErrInvalidInput
	}

	plan, err := s.planRepo.GetByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != input.UserID {
		return nil, ErrForbidden
	}

	totalDays := DefaultTotalDays
	if plan.PlanData != nil && plan.PlanData.TotalDays > 0 {
		totalDays = plan.PlanData.TotalDays
	}

	completed := NormalizeCompletedDays(input.CompletedDays, totalDays)
	if !input.Authenticated {
		completed = CapCompletedDays(completed, s.guestLimit)
	}
	unlocked := ComputeUnlockedDays(completed, totalDays, input.Authenticated, s.guestLimit)
	if len(input.UnlockedDays) > 0 {
		// Client-supplied unlocks are merged, never trusted to shrink
		// the computed set or exceed the guest cap.
		unlocked = mergeUnlockedDays(unlocked, input.UnlockedDays, totalDays, input.Authenticated, s.guestLimit)
	}

	currentDay := input.CurrentDay
	if currentDay < 1 || currentDay > totalDays {
		currentDay = ComputeCurrentDay(completed, totalDays)
	}

	return s.progressRepo.Upsert(ctx, repository.UpsertProgressInput{
		UserID:        input.UserID,
		PlanID:        input.PlanID,
		CompletedDays: completed,
		CurrentDay:    currentDay,
		UnlockedDays:  unlocked,
	})
}

func (s *ProgressService) ListProgress(ctx context.Context, userID string) ([]models.UserProgress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.progressRepo.ListByUserID(ctx, userID)
}

// GetProgress returns the stored row, or a fresh day-1 view when no row
// exists yet. A plan without a progress row is valid: creation and
// initialization are separate calls and the gap is tolerated here.
func (s *ProgressService) GetProgress(
	ctx context.Context,
	userID string,
	planID int64,
	authenticated bool,
) (*models.UserProgress, error) {
	progress, err := s.progressRepo.GetByUserAndPlan(ctx, userID, planID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return &models.UserProgress{
		UserID:        userID,
		PlanID:        planID,
		CompletedDays: []int64{},
		CurrentDay:    1,
		UnlockedDays:  ComputeUnlockedDays(nil, DefaultTotalDays, authenticated, s.guestLimit),
	}, nil
}

func mergeUnlockedDays(computed, supplied []int64, totalDays int, authenticated bool, guestLimit int) []int64 {
	limit := int64(totalDays)
	if !authenticated {
		if guestLimit < 1 {
			guestLimit = 1
		}
		if int64(guestLimit) < limit {
			limit = int64(guestLimit)
		}
	}

	merged := make([]int64, 0, len(computed)+len(supplied))
	merged = append(merged, computed...)
	for _, day := range supplied {
		if day >= 1 && day <= limit {
			merged = append(merged, day)
		}
	}
	return NormalizeCompletedDays(merged, totalDays)
}
