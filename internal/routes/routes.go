package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wizqo2024/wizqo-sub000/internal/config"
	"github.com/wizqo2024/wizqo-sub000/internal/handlers"
	"github.com/wizqo2024/wizqo-sub000/internal/middleware"
	"github.com/wizqo2024/wizqo-sub000/internal/repository"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	planRepo := repository.NewHobbyPlanRepository(db)
	progressRepo := repository.NewUserProgressRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)

	var textGenerator services.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		textGenerator = services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	var emailSender services.EmailSender
	if cfg.ResendAPIKey != "" && cfg.ContactToEmail != "" {
		emailSender = services.NewResendEmailService(cfg.ResendAPIKey, cfg.ContactFromEmail, cfg.ContactToEmail)
	}

	generator := services.NewPlanGenerator(textGenerator)
	planService := services.NewPlanService(planRepo)
	progressService := services.NewProgressService(progressRepo, planRepo, cfg.GuestUnlockLimit)
	quizService := services.NewQuizService()

	generateHandler := handlers.NewGenerateHandler(generator, cfg.DefaultTotalDays)
	planHandler := handlers.NewPlanHandler(planService)
	progressHandler := handlers.NewProgressHandler(progressService)
	contactHandler := handlers.NewContactHandler(emailSender)
	quizHandler := handlers.NewQuizHandler(quizService)
	profileHandler := handlers.NewProfileHandler(profileRepo)

	api := app.Group("/api", middleware.OptionalAuth(cfg.JWTSecret))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.Post("/generate-plan", generateHandler.GeneratePlan)

	api.Get("/hobby-plans/:userId", planHandler.ListPlans)
	api.Post("/hobby-plans", planHandler.CreatePlan)
	api.Delete("/hobby-plans/:id", planHandler.DeletePlan)

	api.Get("/user-progress/:userId", progressHandler.ListProgress)
	api.Post("/user-progress", progressHandler.SaveProgress)

	api.Post("/contact", contactHandler.SendMessage)

	api.Post("/quiz/step", quizHandler.Step)

	api.Get("/user-profile/:userId", profileHandler.GetProfile)
	api.Post("/user-profile", profileHandler.UpsertProfile)
}
