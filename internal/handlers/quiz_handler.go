package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

type quizOrchestrator interface {
	NextStep(input services.QuizStepInput) services.QuizStepResult
}

type QuizHandler struct {
	quiz quizOrchestrator
}

func NewQuizHandler(quiz quizOrchestrator) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

type quizStepRequest struct {
	Hobby   string             `json:"hobby"`
	Answers models.QuizAnswers `json:"answers"`
	Message string             `json:"message"`
}

// Step advances the guided questionnaire by one answer. The orchestrator is
// stateless; the client carries the collected answers between calls.
func (h *QuizHandler) Step(c *fiber.Ctx) error {
	var req quizStepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result := h.quiz.NextStep(services.QuizStepInput{
		Hobby:   req.Hobby,
		Answers: req.Answers,
		Message: req.Message,
	})

	return c.JSON(result)
}
