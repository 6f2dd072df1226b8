package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

type planGenerator interface {
	Generate(ctx context.Context, input services.GeneratePlanInput) *models.PlanData
}

type GenerateHandler struct {
	generator planGenerator
	totalDays int
}

func NewGenerateHandler(generator planGenerator, totalDays int) *GenerateHandler {
	return &GenerateHandler{generator: generator, totalDays: totalDays}
}

type generatePlanRequest struct {
	Hobby         string `json:"hobby"`
	Experience    string `json:"experience"`
	TimeAvailable string `json:"timeAvailable"`
	Goal          string `json:"goal"`
}

// GeneratePlan validates the hobby and produces a full plan. Generation
// itself cannot fail the request: model failures degrade to the template
// plan inside the generator.
func (h *GenerateHandler) GeneratePlan(c *fiber.Ctx) error {
	var req generatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	validation := services.ValidateHobby(req.Hobby)
	if !validation.IsValid {
		message := "That doesn't look like a hobby we can build a plan for"
		if validation.Unsafe {
			message = "We can't build a plan for that topic, but here are some ideas"
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       message,
			"suggestions": validation.Suggestions,
			"unsafe":      validation.Unsafe,
		})
	}

	plan := h.generator.Generate(c.Context(), services.GeneratePlanInput{
		Hobby:         validation.NormalizedHobby,
		Experience:    req.Experience,
		TimeAvailable: req.TimeAvailable,
		Goal:          req.Goal,
		TotalDays:     h.totalDays,
	})

	return c.JSON(plan)
}
