package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/wizqo2024/wizqo-sub000/internal/models"
	"github.com/wizqo2024/wizqo-sub000/internal/repository"
)

type userProfileStore interface {
	Upsert(ctx context.Context, input repository.UpsertUserProfileInput) (*models.UserProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
}

type ProfileHandler struct {
	profileRepo userProfileStore
}

func NewProfileHandler(profileRepo userProfileStore) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

type upsertProfileRequest struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

// UpsertProfile mirrors an identity record pushed by the auth provider.
func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	missing := missingFields(map[string]bool{
		"user_id": strings.TrimSpace(req.UserID) == "",
		"email":   strings.TrimSpace(req.Email) == "",
	})
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "missing required fields",
			"fields": missing,
		})
	}

	profile, err := h.profileRepo.Upsert(c.Context(), repository.UpsertUserProfileInput{
		UserID:    req.UserID,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save profile"})
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "userId is required"})
	}

	profile, err := h.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load profile"})
	}

	return c.JSON(profile)
}
