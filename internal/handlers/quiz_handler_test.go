package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

func newQuizApp() *fiber.App {
	app := fiber.New()
	handler := NewQuizHandler(services.NewQuizService())
	app.Post("/api/quiz/step", handler.Step)
	return app
}

func TestQuizStepFirstQuestion(t *testing.T) {
	app := newQuizApp()

	status, body := postJSON(t, app, "/api/quiz/step", map[string]any{})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	var result services.QuizStepResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Step != services.QuizStepHobby {
		t.Errorf("step = %q, want hobby", result.Step)
	}
	if result.Prompt == "" {
		t.Error("expected a prompt")
	}
}

func TestQuizStepAdvances(t *testing.T) {
	app := newQuizApp()

	status, body := postJSON(t, app, "/api/quiz/step", map[string]any{"message": "guitar"})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var result services.QuizStepResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Step != services.QuizStepExperience || result.Hobby != "guitar" {
		t.Errorf("result = %+v", result)
	}
}

func TestQuizStepCompletes(t *testing.T) {
	app := newQuizApp()

	status, body := postJSON(t, app, "/api/quiz/step", map[string]any{
		"hobby": "guitar",
		"answers": map[string]string{
			"experience":    "beginner",
			"timeAvailable": "30 minutes",
		},
		"message": "just curious",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var result services.QuizStepResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Ready || result.Step != services.QuizStepReady {
		t.Errorf("result = %+v, want ready", result)
	}
}
