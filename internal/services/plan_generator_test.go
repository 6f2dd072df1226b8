package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type stubTextGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func baseInput() GeneratePlanInput {
	return GeneratePlanInput{
		Hobby:         "guitar",
		Experience:    "beginner",
		TimeAvailable: "30 minutes",
		Goal:          "personal enjoyment",
	}
}

func TestGenerateWithoutModel(t *testing.T) {
	plan := NewPlanGenerator(nil).Generate(context.Background(), baseInput())

	if plan.TotalDays != 7 || len(plan.Days) != 7 {
		t.Fatalf("totalDays = %d, days = %d, want 7 and 7", plan.TotalDays, len(plan.Days))
	}
	if plan.Hobby != "guitar" {
		t.Errorf("hobby = %q, want guitar", plan.Hobby)
	}
	if plan.Title == "" || plan.Overview == "" {
		t.Error("template plan must carry a title and overview")
	}
	for i, day := range plan.Days {
		if day.Day != i+1 {
			t.Errorf("day %d numbered %d", i+1, day.Day)
		}
		if day.Title == "" || day.MainTask == "" || day.Explanation == "" {
			t.Errorf("day %d missing narrative fields: %+v", day.Day, day)
		}
		if strings.Contains(day.Title, "%") || strings.Contains(day.MainTask, "%") {
			t.Errorf("day %d leaked a template placeholder: %q / %q", day.Day, day.Title, day.MainTask)
		}
		if len(day.HowTo) == 0 || len(day.Checklist) == 0 || len(day.Tips) == 0 || len(day.CommonMistakes) == 0 {
			t.Errorf("day %d missing list content", day.Day)
		}
		if day.YouTubeVideoID == "" || day.VideoTitle == "" {
			t.Errorf("day %d has no video", day.Day)
		}
		if len(day.FreeResources) == 0 || len(day.AffiliateProducts) == 0 {
			t.Errorf("day %d missing resources", day.Day)
		}
	}
	if plan.Days[0].YouTubeVideoID != "F5bbIpZFXyY" {
		t.Errorf("day 1 video = %q, want the curated guitar opener", plan.Days[0].YouTubeVideoID)
	}
}

func TestGenerateModelFailureFallsBack(t *testing.T) {
	llm := &stubTextGenerator{err: errors.New("rate limited")}
	plan := NewPlanGenerator(llm).Generate(context.Background(), baseInput())

	if len(llm.prompts) != 1 {
		t.Fatalf("model called %d times, want 1", len(llm.prompts))
	}
	if len(plan.Days) != 7 {
		t.Fatalf("fallback plan has %d days, want 7", len(plan.Days))
	}
	for _, day := range plan.Days {
		if day.YouTubeVideoID == "" {
			t.Errorf("day %d has no video", day.Day)
		}
	}
}

func TestGenerateGarbageResponseFallsBack(t *testing.T) {
	llm := &stubTextGenerator{response: "Sorry, I can't help with that."}
	plan := NewPlanGenerator(llm).Generate(context.Background(), baseInput())
	if len(plan.Days) != 7 {
		t.Fatalf("fallback plan has %d days, want 7", len(plan.Days))
	}
}

func TestGenerateParsesFencedResponse(t *testing.T) {
	llm := &stubTextGenerator{response: "Here is your plan:\n```json\n" + `{
  "title": "Guitar Week",
  "overview": "Seven days of focused practice.",
  "totalDays": 7,
  "days": [
    {
      "day": 1,
      "title": "Meet the Guitar",
      "mainTask": "Learn the parts and tune up.",
      "explanation": "Foundation first.",
      "howTo": ["Watch the video"],
      "checklist": ["Tuned the guitar"],
      "tips": ["Go slow"],
      "mistakesToAvoid": ["Skipping tuning"],
      "estimatedTime": "30 minutes"
    },
    {"day": 2, "title": "First Chords", "mainTask": "Learn E minor and A."},
    {"day": 3, "title": "Strumming", "mainTask": "Practice down-up patterns."}
  ]
}` + "\n```\nGood luck!"}

	plan := NewPlanGenerator(llm).Generate(context.Background(), baseInput())

	if plan.Title != "Guitar Week" {
		t.Errorf("title = %q, want the model's title", plan.Title)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("short model plan should be padded to 7 days, got %d", len(plan.Days))
	}

	day1 := plan.Days[0]
	if day1.Title != "Meet the Guitar" {
		t.Errorf("day 1 title = %q", day1.Title)
	}
	if len(day1.CommonMistakes) != 1 || day1.CommonMistakes[0] != "Skipping tuning" {
		t.Errorf("mistakesToAvoid alias not folded: %v", day1.CommonMistakes)
	}
	if day1.MistakesToAvoid != nil {
		t.Error("legacy alias field should be cleared after folding")
	}

	for i, day := range plan.Days {
		if day.Day != i+1 {
			t.Errorf("day %d numbered %d", i+1, day.Day)
		}
		if day.YouTubeVideoID == "" || len(day.HowTo) == 0 || len(day.CommonMistakes) == 0 {
			t.Errorf("day %d not fully normalized: %+v", day.Day, day)
		}
	}
}

func TestGenerateParsesWrappedResponse(t *testing.T) {
	llm := &stubTextGenerator{response: `{"plan_data": {"title": "Wrapped", "days": [{"day": 1, "title": "Start"}]}}`}
	plan := NewPlanGenerator(llm).Generate(context.Background(), baseInput())
	if plan.Title != "Wrapped" {
		t.Errorf("title = %q, want Wrapped", plan.Title)
	}
	if len(plan.Days) != 7 {
		t.Errorf("wrapped plan should be padded to 7 days, got %d", len(plan.Days))
	}
}

func TestGenerateTruncatesOverlongPlans(t *testing.T) {
	var days []string
	for d := 1; d <= 10; d++ {
		days = append(days, fmt.Sprintf(`{"day": %d, "title": "Day"}`, d))
	}
	llm := &stubTextGenerator{response: `{"days": [` + strings.Join(days, ",") + `]}`}
	plan := NewPlanGenerator(llm).Generate(context.Background(), baseInput())
	if len(plan.Days) != 7 {
		t.Errorf("overlong plan should be truncated to 7 days, got %d", len(plan.Days))
	}
}

func TestGenerateCustomTotalDays(t *testing.T) {
	input := baseInput()
	input.TotalDays = 10
	plan := NewPlanGenerator(nil).Generate(context.Background(), input)
	if plan.TotalDays != 10 || len(plan.Days) != 10 {
		t.Errorf("totalDays = %d, days = %d, want 10 and 10", plan.TotalDays, len(plan.Days))
	}
}

func TestBuildPlanPromptMentionsConstraints(t *testing.T) {
	prompt := buildPlanPrompt(GeneratePlanInput{
		Hobby:         "chess",
		Experience:    "beginner",
		TimeAvailable: "1 hour",
		Goal:          "beat my friends",
		TotalDays:     7,
	})
	for _, want := range []string{"chess", "beginner", "1 hour", "beat my friends", "exactly 7 entries"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
