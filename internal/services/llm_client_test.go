package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAIServiceGenerateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}

		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Model != "gpt-4o-mini" {
			t.Errorf("model = %q", payload.Model)
		}
		if len(payload.Messages) != 1 || payload.Messages[0].Content != "say hi" {
			t.Errorf("messages = %+v", payload.Messages)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "hi there"}},
			},
		})
	}))
	defer server.Close()

	service := NewOpenAIService("test-key", "gpt-4o-mini")
	service.baseURL = server.URL

	got, err := service.GenerateText(context.Background(), "say hi")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "hi there" {
		t.Errorf("response = %q, want hi there", got)
	}
}

func TestOpenAIServiceErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	service := NewOpenAIService("test-key", "gpt-4o-mini")
	service.baseURL = server.URL

	if _, err := service.GenerateText(context.Background(), "say hi"); err == nil {
		t.Fatal("expected an error for a non-2xx status")
	}
}

func TestOpenAIServiceEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	service := NewOpenAIService("test-key", "gpt-4o-mini")
	service.baseURL = server.URL

	if _, err := service.GenerateText(context.Background(), "say hi"); err == nil {
		t.Fatal("expected an error for an empty choices array")
	}
}
