package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/wizqo2024/wizqo-sub000/internal/models"
)

const DefaultTotalDays = 7

type GeneratePlanInput struct {
	Hobby         string
	Experience    string
	TimeAvailable string
	Goal          string
	TotalDays     int
}

// PlanGenerator produces a complete learning plan. The external model is
// optional: with a nil TextGenerator, or on any generation failure, the
// deterministic template plan is returned instead. Generate never fails.
type PlanGenerator struct {
	llm TextGenerator
}

func NewPlanGenerator(llm TextGenerator) *PlanGenerator {
	return &PlanGenerator{llm: llm}
}

func (g *PlanGenerator) Generate(ctx context.Context, input GeneratePlanInput) *models.PlanData {
	input.Hobby = NormalizeHobby(input.Hobby)
	input.Experience = normalizeExperience(input.Experience)
	if input.TotalDays <= 0 {
		input.TotalDays = DefaultTotalDays
	}

	if g.llm != nil {
		raw, err := g.llm.GenerateText(ctx, buildPlanPrompt(input))
		if err == nil {
			plan, parseErr := parsePlanResponse(raw)
			if parseErr == nil {
				NormalizePlanData(plan, input)
				return plan
			}
			log.Printf("plan generation: unusable model response, using template plan: %v", parseErr)
		} else {
			log.Printf("plan generation: model call failed, using template plan: %v", err)
		}
	}

	return fallbackPlan(input)
}

func buildPlanPrompt(input GeneratePlanInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day learning plan for the hobby %q.\n", input.TotalDays, input.Hobby)
	fmt.Fprintf(&b, "The learner's experience level is %q, they have %q available per day", input.Experience, input.TimeAvailable)
	if input.Goal != "" {
		fmt.Fprintf(&b, ", and their goal is %q", input.Goal)
	}
	b.WriteString(".\n\n")
	b.WriteString("Respond with ONLY a JSON object, no markdown, matching exactly this shape:\n")
	fmt.Fprintf(&b, `{
  "title": "string",
  "overview": "string",
  "totalDays": %d,
  "days": [
    {
      "day": 1,
      "title": "string",
      "mainTask": "string",
      "explanation": "string",
      "howTo": ["string"],
      "checklist": ["string"],
      "tips": ["string"],
      "commonMistakes": ["string"],
      "estimatedTime": "string"
    }
  ]
}`, input.TotalDays)
	fmt.Fprintf(&b, "\n\nThe days array must contain exactly %d entries numbered 1 to %d.", input.TotalDays, input.TotalDays)
	return b.String()
}

// parsePlanResponse tolerates markdown fences and prose around the JSON
// object, plus the historical {"plan_data": {...}} wrapper.
func parsePlanResponse(raw string) (*models.PlanData, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}
	payload := raw[start : end+1]

	var plan models.PlanData
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan response: %w", err)
	}
	if len(plan.Days) == 0 {
		var wrapped struct {
			PlanData *models.PlanData `json:"plan_data"`
		}
		if err := json.Unmarshal([]byte(payload), &wrapped); err == nil &&
			wrapped.PlanData != nil && len(wrapped.PlanData.Days) > 0 {
			return wrapped.PlanData, nil
		}
		return nil, fmt.Errorf("plan response has no days")
	}
	return &plan, nil
}

// NormalizePlanData is the single canonical normalization pass applied at
// the write boundary: it renumbers days into a contiguous 1..totalDays
// sequence, folds legacy field aliases, fills structural defaults, and
// resolves every day's video reference through the curated selector.
func NormalizePlanData(plan *models.PlanData, input GeneratePlanInput) {
	if input.TotalDays <= 0 {
		input.TotalDays = DefaultTotalDays
	}

	plan.Hobby = input.Hobby
	plan.Experience = input.Experience
	plan.TimeAvailable = input.TimeAvailable
	plan.Goal = input.Goal
	plan.TotalDays = input.TotalDays
	if strings.TrimSpace(plan.Title) == "" {
		plan.Title = fmt.Sprintf("Learn %s in %d Days", titleCase(input.Hobby), input.TotalDays)
	}
	if strings.TrimSpace(plan.Overview) == "" {
		plan.Overview = fmt.Sprintf(
			"A %d-day plan taking you from your first steps in %s to a finished result you can be proud of.",
			input.TotalDays, input.Hobby,
		)
	}

	if len(plan.Days) > input.TotalDays {
		plan.Days = plan.Days[:input.TotalDays]
	}
	for len(plan.Days) < input.TotalDays {
		plan.Days = append(plan.Days, fallbackDay(input, len(plan.Days)+1))
	}

	for i := range plan.Days {
		normalizeDay(&plan.Days[i], input, i+1)
	}
}

func normalizeDay(day *models.PlanDay, input GeneratePlanInput, dayNumber int) {
	day.Day = dayNumber

	if strings.TrimSpace(day.Title) == "" {
		day.Title = fmt.Sprintf("Day %d: %s Practice", dayNumber, titleCase(input.Hobby))
	}
	if strings.TrimSpace(day.MainTask) == "" {
		day.MainTask = fmt.Sprintf("Spend %s practicing %s.", defaultString(input.TimeAvailable, "30 minutes"), input.Hobby)
	}
	if strings.TrimSpace(day.Explanation) == "" {
		day.Explanation = fmt.Sprintf("Day %d builds on what you learned yesterday and adds one new skill.", dayNumber)
	}
	if len(day.HowTo) == 0 {
		day.HowTo = []string{
			"Watch today's tutorial video before you start",
			"Follow along slowly, pausing as needed",
			"Repeat the new technique until it feels natural",
		}
	}
	if len(day.Checklist) == 0 {
		day.Checklist = []string{
			"Watched the tutorial",
			"Completed the main task",
			"Noted one thing to improve tomorrow",
		}
	}
	if len(day.Tips) == 0 {
		day.Tips = []string{
			"Short, focused sessions beat long, distracted ones",
			"It is fine to repeat yesterday's material first",
		}
	}

	// Accept whichever mistakes field the model produced; the canonical
	// name is commonMistakes.
	if len(day.CommonMistakes) == 0 && len(day.MistakesToAvoid) > 0 {
		day.CommonMistakes = day.MistakesToAvoid
	}
	day.MistakesToAvoid = nil
	if len(day.CommonMistakes) == 0 {
		day.CommonMistakes = []string{
			"Rushing through the basics",
			"Practicing without a clear goal for the session",
			"Comparing your day-one results to someone's year ten",
		}
	}

	if len(day.FreeResources) == 0 {
		day.FreeResources = []models.Resource{
			{
				Title: fmt.Sprintf("%s guide for day %d", titleCase(input.Hobby), dayNumber),
				Link:  "https://www.google.com/search?q=" + strings.ReplaceAll(input.Hobby, " ", "+") + "+beginner+guide",
			},
		}
	}
	if len(day.AffiliateProducts) == 0 {
		day.AffiliateProducts = []models.AffiliateProduct{
			{
				Title: fmt.Sprintf("Beginner %s Starter Kit", titleCase(input.Hobby)),
				Link:  "https://www.amazon.com/s?k=" + strings.ReplaceAll(input.Hobby, " ", "+") + "+beginner+kit",
			},
		}
	}

	if strings.TrimSpace(day.EstimatedTime) == "" {
		day.EstimatedTime = defaultString(input.TimeAvailable, "30 minutes")
	}
	if strings.TrimSpace(day.SkillLevel) == "" {
		day.SkillLevel = input.Experience
	}

	day.YouTubeVideoID, day.VideoTitle = SelectVideo(input.Hobby, input.Experience, dayNumber)
}

// fallbackPlan fabricates the whole plan from templates. It must be
// structurally indistinguishable from a model-produced plan.
func fallbackPlan(input GeneratePlanInput) *models.PlanData {
	plan := &models.PlanData{
		Days: make([]models.PlanDay, 0, input.TotalDays),
	}
	for day := 1; day <= input.TotalDays; day++ {
		plan.Days = append(plan.Days, fallbackDay(input, day))
	}
	NormalizePlanData(plan, input)
	return plan
}

var fallbackDayThemes = []struct {
	Title       string
	MainTask    string
	Explanation string
}{
	{
		Title:       "Getting Started with %s",
		MainTask:    "Set up everything you need and complete your very first %s session.",
		Explanation: "The first day is about lowering the barrier: gather your materials, learn the vocabulary, and finish one tiny exercise so the habit exists.",
	},
	{
		Title:       "%s Fundamentals",
		MainTask:    "Learn and drill the two or three core techniques every %s beginner needs.",
		Explanation: "Everything later builds on today's fundamentals, so go slowly and prioritize doing it right over doing it fast.",
	},
	{
		Title:       "Building %s Muscle Memory",
		MainTask:    "Repeat yesterday's %s techniques until they start to feel automatic.",
		Explanation: "Repetition is where skill actually forms. Today has little new material on purpose.",
	},
	{
		Title:       "Expanding Your %s Skills",
		MainTask:    "Add one new %s technique on top of the fundamentals.",
		Explanation: "With the basics settling in, one new element keeps you challenged without overwhelming you.",
	},
	{
		Title:       "Your First Real %s Project",
		MainTask:    "Start a small %s project that uses everything from days one to four.",
		Explanation: "Projects expose the gaps that drills hide. Expect it to be harder than the exercises; that is the point.",
	},
	{
		Title:       "Polishing Your %s Project",
		MainTask:    "Finish the %s project and fix the rough spots you noticed yesterday.",
		Explanation: "Finishing is a skill of its own. Resist starting something new until this is done.",
	},
	{
		Title:       "%s: Review and Next Steps",
		MainTask:    "Review the week, celebrate your finished %s project, and sketch your plan for week two.",
		Explanation: "A deliberate look back makes the progress visible and turns a seven-day experiment into a lasting hobby.",
	},
}

func fallbackDay(input GeneratePlanInput, dayNumber int) models.PlanDay {
	theme := fallbackDayThemes[clampDayIndex(dayNumber, len(fallbackDayThemes))]
	hobby := titleCase(input.Hobby)
	return models.PlanDay{
		Day:         dayNumber,
		Title:       fmt.Sprintf(theme.Title, hobby),
		MainTask:    fmt.Sprintf(theme.MainTask, input.Hobby),
		Explanation: theme.Explanation,
	}
}

func normalizeExperience(experience string) string {
	switch strings.ToLower(strings.TrimSpace(experience)) {
	case "intermediate", "advanced":
		return "intermediate"
	case "some", "some experience":
		return "some"
	default:
		return "beginner"
	}
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
