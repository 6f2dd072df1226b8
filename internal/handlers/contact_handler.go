package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wizqo2024/wizqo-sub000/internal/services"
)

type ContactHandler struct {
	sender services.EmailSender
}

func NewContactHandler(sender services.EmailSender) *ContactHandler {
	return &ContactHandler{sender: sender}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) SendMessage(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	missing := missingFields(map[string]bool{
		"name":    strings.TrimSpace(req.Name) == "",
		"email":   strings.TrimSpace(req.Email) == "",
		"subject": strings.TrimSpace(req.Subject) == "",
		"message": strings.TrimSpace(req.Message) == "",
	})
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "missing required fields",
			"fields": missing,
		})
	}

	err := services.ErrEmailUnavailable
	if h.sender != nil {
		err = h.sender.SendContactMessage(c.Context(), services.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
	}
	if err != nil {
		log.Printf("contact: send failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	return c.JSON(fiber.Map{"success": true})
}
