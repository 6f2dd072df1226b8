package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrEmailUnavailable = errors.New("email service is not configured")

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailSender delivers a contact-form message to the site inbox.
type EmailSender interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// ResendEmailService sends mail through the Resend transactional API.
type ResendEmailService struct {
	baseURL    string
	apiKey     string
	from       string
	to         string
	httpClient *http.Client
}

func NewResendEmailService(apiKey, from, to string) *ResendEmailService {
	return &ResendEmailService{
		baseURL:    "https://api.resend.com",
		apiKey:     apiKey,
		from:       from,
		to:         to,
		httpClient: http.DefaultClient,
	}
}

func (s *ResendEmailService) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	payload := map[string]any{
		"from":     s.from,
		"to":       []string{s.to},
		"reply_to": msg.Email,
		"subject":  fmt.Sprintf("Contact form: %s", msg.Subject),
		"text":     fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send email: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return nil
}
