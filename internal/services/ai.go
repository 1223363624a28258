package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/taskboard-api/internal/constants"
	"github.com/yukikurage/taskboard-api/internal/effort"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

var (
	ErrSuggestionsDisabled = errors.New("Task suggestions are not configured")
	ErrNoSuggestions       = errors.New("No tasks could be suggested from the text")
)

// SuggestedTask is a task extracted from free text. It is never persisted
// by the suggestion flow itself.
type SuggestedTask struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	DeadlineAt  *time.Time `json:"deadlineAt"`
	Effort      *int       `json:"effort"`
}

// Suggester extracts task suggestions from text
type Suggester interface {
	SuggestTasks(ctx context.Context, text string, now time.Time) ([]SuggestedTask, error)
}

// AIService suggests tasks with an OpenAI chat model
type AIService struct {
	client *openai.Client
	model  string
}

func NewAIService(apiKey, model string) *AIService {
	return NewAIServiceWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewAIServiceWithConfig allows pointing the client at another base URL
func NewAIServiceWithConfig(cfg openai.ClientConfig, model string) *AIService {
	if model == "" {
		model = openai.GPT4o
	}
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// SuggestTasks asks the model for a JSON array of tasks found in text
func (s *AIService) SuggestTasks(ctx context.Context, text string, now time.Time) ([]SuggestedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You extract actionable tasks from text.

Current time: %s

Text:
%s

Return a JSON array of tasks in this shape:
[
  {
    "name": "short task name",
    "description": "details, or null",
    "deadlineAt": "ISO8601 deadline such as 2025-10-28T23:59:59Z, or null when none is stated",
    "effort": one of 1, 2, 3, 5, 8, 13 as a relative size, or null
  }
]

Rules:
- Return [] when the text contains no tasks
- Convert relative dates ("tomorrow", "next week") into concrete timestamps
- Return only JSON, with no commentary`, now.Format(time.RFC3339), text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var tasks []SuggestedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return tasks, nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// SuggestTasks extracts task suggestions for an owned project and clamps
// them to what a task may hold
func (s *TaskService) SuggestTasks(ctx context.Context, ownerID, projectID string, input schemas.SuggestTasks) ([]SuggestedTask, error) {
	if err := schemas.Validate(&input); err != nil {
		return nil, err
	}
	if _, err := s.owner.Project(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	if s.suggester == nil {
		return nil, ErrSuggestionsDisabled
	}

	now := s.now()
	raw, err := s.suggester.SuggestTasks(ctx, input.Text, now)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest tasks: %w", err)
	}

	suggestions := sanitizeSuggestions(raw, now)
	if len(suggestions) == 0 {
		return nil, ErrNoSuggestions
	}
	return suggestions, nil
}

func sanitizeSuggestions(raw []SuggestedTask, now time.Time) []SuggestedTask {
	cutoff := now.Add(-constants.SuggestionStaleness)
	result := make([]SuggestedTask, 0, len(raw))

	for _, t := range raw {
		t.Name = truncateRunes(strings.TrimSpace(t.Name), constants.MaxTaskNameLength)
		if t.Name == "" {
			continue
		}
		if t.Description != nil {
			d := truncateRunes(strings.TrimSpace(*t.Description), constants.MaxDescriptionLength)
			t.Description = &d
			if d == "" {
				t.Description = nil
			}
		}
		if t.DeadlineAt != nil && t.DeadlineAt.Before(cutoff) {
			t.DeadlineAt = nil
		}
		if t.Effort != nil && !effort.Valid(*t.Effort) {
			t.Effort = nil
		}

		result = append(result, t)
		if len(result) == constants.MaxSuggestedTasks {
			break
		}
	}

	return result
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
