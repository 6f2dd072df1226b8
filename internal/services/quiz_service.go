package services

import (
	"strings"

	"github.com/wizqo2024/wizqo-sub000/internal/models"
)

// Quiz steps in order. The orchestrator is stateless: the client sends the
// answers collected so far plus the newest message, and gets back either the
// next step's prompt or ready=true with the complete answer set.
const (
	QuizStepHobby      = "hobby"
	QuizStepExperience = "experience"
	QuizStepTime       = "time"
	QuizStepGoal       = "goal"
	QuizStepReady      = "ready"
)

type QuizStepInput struct {
	Hobby   string
	Answers models.QuizAnswers
	Message string
}

type QuizStepResult struct {
	Step       string             `json:"step"`
	Prompt     string             `json:"prompt,omitempty"`
	Choices    []string           `json:"choices,omitempty"`
	Error      string             `json:"error,omitempty"`
	Validation *HobbyValidation   `json:"validation,omitempty"`
	Hobby      string             `json:"hobby,omitempty"`
	Answers    models.QuizAnswers `json:"answers"`
	Ready      bool               `json:"ready"`
}

var quizPrompts = map[string]struct {
	prompt  string
	choices []string
}{
	QuizStepHobby: {
		prompt: "What hobby would you like to learn?",
	},
	QuizStepExperience: {
		prompt:  "How much experience do you have with it?",
		choices: []string{"beginner", "some", "intermediate"},
	},
	QuizStepTime: {
		prompt:  "How much time can you practice per day?",
		choices: []string{"15 minutes", "30 minutes", "1 hour", "2+ hours"},
	},
	QuizStepGoal: {
		prompt:  "What is your main goal?",
		choices: []string{"personal enjoyment", "new skill for work", "gift for someone", "just curious"},
	},
}

type QuizService struct{}

func NewQuizService() *QuizService {
	return &QuizService{}
}

// NextStep consumes the newest message for the first unanswered step and
// returns what to ask next.
func (s *QuizService) NextStep(input QuizStepInput) QuizStepResult {
	hobby := strings.TrimSpace(input.Hobby)
	answers := input.Answers
	message := strings.TrimSpace(input.Message)

	step := currentQuizStep(hobby, answers)
	if message != "" {
		var errMsg string
		var validation *HobbyValidation
		hobby, answers, errMsg, validation = applyQuizAnswer(step, message, hobby, answers)
		if errMsg != "" {
			result := promptFor(step)
			result.Error = errMsg
			result.Validation = validation
			result.Hobby = hobby
			result.Answers = answers
			return result
		}
		step = currentQuizStep(hobby, answers)
	}

	result := promptFor(step)
	result.Hobby = hobby
	result.Answers = answers
	result.Ready = step == QuizStepReady
	return result
}

func currentQuizStep(hobby string, answers models.QuizAnswers) string {
	switch {
	case hobby == "":
		return QuizStepHobby
	case answers.Experience == "":
		return QuizStepExperience
	case answers.TimeAvailable == "":
		return QuizStepTime
	case answers.Goal == "":
		return QuizStepGoal
	default:
		return QuizStepReady
	}
}

func applyQuizAnswer(
	step string,
	message string,
	hobby string,
	answers models.QuizAnswers,
) (string, models.QuizAnswers, string, *HobbyValidation) {
	switch step {
	case QuizStepHobby:
		validation := ValidateHobby(message)
		if !validation.IsValid {
			if validation.Unsafe {
				return hobby, answers, "That topic isn't something we can build a plan for. Try one of the suggestions instead.", &validation
			}
			return hobby, answers, "That doesn't look like a hobby we recognize. Try one of the suggestions instead.", &validation
		}
		return validation.NormalizedHobby, answers, "", &validation
	case QuizStepExperience:
		answers.Experience = normalizeExperience(message)
		return hobby, answers, "", nil
	case QuizStepTime:
		answers.TimeAvailable = message
		return hobby, answers, "", nil
	case QuizStepGoal:
		answers.Goal = message
		return hobby, answers, "", nil
	default:
		return hobby, answers, "", nil
	}
}

func promptFor(step string) QuizStepResult {
	entry, ok := quizPrompts[step]
	if !ok {
		return QuizStepResult{Step: step}
	}
	return QuizStepResult{
		Step:    step,
		Prompt:  entry.prompt,
		Choices: append([]string(nil), entry.choices...),
	}
}
