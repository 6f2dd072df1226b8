package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

type progressApplicationService interface {
	SaveProgress(ctx context.Context, input services.SaveProgressInput) (*models.UserProgress, error)
	ListProgress(ctx context.Context, userID string) ([]models.UserProgress, error)
}

type ProgressHandler struct {
	service progressApplicationService
}

func NewProgressHandler(service progressApplicationService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

type saveProgressRequest struct {
	UserID        string  `json:"user_id"`
	PlanID        int64   `json:"plan_id"`
	CompletedDays []int64 `json:"completed_days"`
	CurrentDay    int     `json:"current_day"`
	UnlockedDays  []int64 `json:"unlocked_days"`
}

// SaveProgress upserts the caller's progress row. When unlocked_days is
// omitted the server recomputes it; the caller's auth state (set by the
// optional bearer middleware) decides whether the guest cap applies.
func (h *ProgressHandler) SaveProgress(c *fiber.Ctx) error {
	var req saveProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	missing := missingFields(map[string]bool{
		"user_id": strings.TrimSpace(req.UserID) == "",
		"plan_id": req.PlanID <= 0,
	})
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "missing required fields",
			"fields": missing,
		})
	}

	authenticated, _ := c.Locals("authenticated").(bool)

	progress, err := h.service.SaveProgress(c.Context(), services.SaveProgressInput{
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		CompletedDays: req.CompletedDays,
		CurrentDay:    req.CurrentDay,
		UnlockedDays:  req.UnlockedDays,
		Authenticated: authenticated,
	})
	if err != nil {
		return mapProgressError(c, err)
	}

	return c.JSON(progress)
}

func (h *ProgressHandler) ListProgress(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	progress, err := h.service.ListProgress(c.Context(), userID)
	if err != nil {
		return mapProgressError(c, err)
	}

	return c.JSON(progress)
}

func mapProgressError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save progress"})
	}
}
