package ai

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/suggest_system.md
var suggestSystemPrompt string

//go:embed prompt/summarize_system.md
var summarizeSystemPrompt string

//go:embed prompt/extract_tasks_system.md
var extractTasksSystemPrompt string

// suggestContextSize is how many trailing context messages are passed to
// the model for reply suggestion
const suggestContextSize = 6

// client implements Service on top of a gollem LLM client
type client struct {
	llmClient   gollem.LLMClient
	contextSize int
}

// Option is a functional option for client configuration
type Option func(*client)

// WithContextSize overrides how many trailing messages are sent to the
// model when suggesting a reply
func WithContextSize(n int) Option {
	return func(c *client) {
		if n > 0 {
			c.contextSize = n
		}
	}
}

// New creates the AI feature service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient:   llmClient,
		contextSize: suggestContextSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) SuggestReply(ctx context.Context, messages []ContextMessage) (string, error) {
	if len(messages) > c.contextSize {
		messages = messages[len(messages)-c.contextSize:]
	}

	var sb strings.Builder
	for _, m := range messages {
		speaker := "Them"
		if m.IsOwn {
			speaker = "Me"
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, m.Text)
	}

	userPrompt := fmt.Sprintf("Conversation so far:\n%s\nSuggest my next reply:", sb.String())

	text, err := c.generate(ctx, suggestSystemPrompt, userPrompt)
	if err != nil {
		return "", goerr.Wrap(err, "failed to suggest reply")
	}
	return strings.TrimSpace(text), nil
}

func (c *client) Summarize(ctx context.Context, messages []TranscriptMessage) (string, error) {
	var sb strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&sb, "%s: %s\n", m.SenderID, m.Text)
	}

	text, err := c.generate(ctx, summarizeSystemPrompt, sb.String())
	if err != nil {
		return "", goerr.Wrap(err, "failed to summarize conversation")
	}
	return strings.TrimSpace(text), nil
}

// extractTasksResponse mirrors the JSON response schema given to the model
type extractTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

func (c *client) ExtractTasks(ctx context.Context, text string) ([]Task, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(extractTasksSchema()),
		gollem.WithSessionSystemPrompt(extractTasksSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(text))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content from LLM")
	}
	if len(resp.Texts) == 0 {
		return []Task{}, nil
	}

	tasks, ok := parseTasks(resp.Texts[0])
	if !ok {
		// Degradation policy: a model response that does not parse yields
		// an empty task list instead of an error.
		logging.From(ctx).Warn("unparseable task extraction response, returning empty list",
			"response", resp.Texts[0])
		return []Task{}, nil
	}
	return tasks, nil
}

// parseTasks accepts either the schema object form or a bare JSON array
func parseTasks(raw string) ([]Task, bool) {
	raw = strings.TrimSpace(raw)

	var wrapped extractTasksResponse
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && wrapped.Tasks != nil {
		return wrapped.Tasks, true
	}

	var bare []Task
	if err := json.Unmarshal([]byte(raw), &bare); err == nil {
		return bare, true
	}

	return nil, false
}

// generate runs a single plain-text completion round trip
func (c *client) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content from LLM")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("empty response from LLM")
	}

	return resp.Texts[0], nil
}

func extractTasksSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ExtractedTasks",
		Description: "Tasks, deadlines and reminders found in the text",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"tasks": {
				Type:        gollem.TypeArray,
				Description: "Extracted tasks; empty when none found",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"task": {
							Type:        gollem.TypeString,
							Description: "Short description of the task",
						},
						"date": {
							Type:        gollem.TypeString,
							Description: "Deadline as YYYY-MM-DD, or null when absent",
						},
						"repeat": {
							Type:        gollem.TypeString,
							Description: "Recurrence: none, daily, weekly or yearly",
						},
					},
					Required: []string{"task", "repeat"},
				},
			},
		},
		Required: []string{"tasks"},
	}
}
