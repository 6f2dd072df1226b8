package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

type planApplicationService interface {
	CreatePlan(ctx context.Context, input services.CreatePlanInput) (*models.HobbyPlan, error)
	ListPlans(ctx context.Context, userID string) ([]models.HobbyPlan, error)
	GetPlanForHobby(ctx context.Context, userID, hobby string) (*models.HobbyPlan, error)
	DeletePlan(ctx context.Context, planID int64, userID string) error
}

type PlanHandler struct {
	service planApplicationService
}

func NewPlanHandler(service planApplicationService) *PlanHandler {
	return &PlanHandler{service: service}
}

type createPlanRequest struct {
	UserID   string           `json:"user_id"`
	Hobby    string           `json:"hobby"`
	Title    string           `json:"title"`
	Overview string           `json:"overview"`
	PlanData *models.PlanData `json:"plan_data"`
	Force    bool             `json:"force"`
}

func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req createPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	missing := missingFields(map[string]bool{
		"user_id":   strings.TrimSpace(req.UserID) == "",
		"hobby":     strings.TrimSpace(req.Hobby) == "",
		"plan_data": req.PlanData == nil,
	})
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "missing required fields",
			"fields": missing,
		})
	}

	plan, err := h.service.CreatePlan(c.Context(), services.CreatePlanInput{
		UserID:   req.UserID,
		Hobby:    req.Hobby,
		Title:    req.Title,
		Overview: req.Overview,
		PlanData: req.PlanData,
		Force:    req.Force,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePlan) {
			response := fiber.Map{
				"error": "You already have a plan for this hobby",
			}
			if existing, lookupErr := h.service.GetPlanForHobby(c.Context(), req.UserID, req.Hobby); lookupErr == nil {
				response["existing_plan"] = existing
			}
			return c.Status(fiber.StatusConflict).JSON(response)
		}
		return mapPlanError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	plans, err := h.service.ListPlans(c.Context(), userID)
	if err != nil {
		return mapPlanError(c, err)
	}

	return c.JSON(plans)
}

func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	planID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || planID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan id"})
	}

	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	if err := h.service.DeletePlan(c.Context(), planID, userID); err != nil {
		return mapPlanError(c, err)
	}

	return c.JSON(fiber.Map{})
}

func mapPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	case errors.Is(err, services.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process plan request"})
	}
}

func missingFields(checks map[string]bool) []string {
	missing := make([]string, 0, len(checks))
	for _, field := range []string{"user_id", "plan_id", "hobby", "plan_data", "name", "email", "subject", "message"} {
		if absent, ok := checks[field]; ok && absent {
			missing = append(missing, field)
		}
	}
	return missing
}
