package ai_test

import (
	"context"
	"strings"
	"testing"

	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{
		Texts: []string{"mock response"},
	}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

// capturePromptClient records the rendered user prompt passed to the session
func capturePromptClient(response string, prompt *string) *mockLLMClient {
	return &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					for _, in := range input {
						if text, ok := in.(gollem.Text); ok {
							*prompt = string(text)
						}
					}
					return &gollem.Response{Texts: []string{response}}, nil
				},
			}, nil
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("requires LLM client", func(t *testing.T) {
		_, err := ai.New(nil)
		gt.Error(t, err)
	})

	t.Run("creates service", func(t *testing.T) {
		svc, err := ai.New(&mockLLMClient{})
		gt.NoError(t, err).Required()
		gt.Value(t, svc != nil).Equal(true)
	})
}

func TestSuggestReply(t *testing.T) {
	ctx := context.Background()

	t.Run("returns trimmed suggestion", func(t *testing.T) {
		var prompt string
		svc, err := ai.New(capturePromptClient("  Sounds great, see you then!  ", &prompt))
		gt.NoError(t, err).Required()

		reply, err := svc.SuggestReply(ctx, []ai.ContextMessage{
			{IsOwn: false, Text: "Want to grab lunch tomorrow?"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, reply).Equal("Sounds great, see you then!")
		gt.Value(t, strings.Contains(prompt, "Them: Want to grab lunch tomorrow?")).Equal(true)
	})

	t.Run("labels own and other messages", func(t *testing.T) {
		var prompt string
		svc, err := ai.New(capturePromptClient("ok", &prompt))
		gt.NoError(t, err).Required()

		_, err = svc.SuggestReply(ctx, []ai.ContextMessage{
			{IsOwn: true, Text: "hello"},
			{IsOwn: false, Text: "hi there"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(prompt, "Me: hello")).Equal(true)
		gt.Value(t, strings.Contains(prompt, "Them: hi there")).Equal(true)
	})

	t.Run("only includes trailing context window", func(t *testing.T) {
		var prompt string
		svc, err := ai.New(capturePromptClient("ok", &prompt))
		gt.NoError(t, err).Required()

		messages := []ai.ContextMessage{
			{IsOwn: true, Text: "oldest message"},
			{IsOwn: false, Text: "msg-1"},
			{IsOwn: true, Text: "msg-2"},
			{IsOwn: false, Text: "msg-3"},
			{IsOwn: true, Text: "msg-4"},
			{IsOwn: false, Text: "msg-5"},
			{IsOwn: true, Text: "msg-6"},
		}
		_, err = svc.SuggestReply(ctx, messages)
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(prompt, "oldest message")).Equal(false)
		gt.Value(t, strings.Contains(prompt, "msg-1")).Equal(true)
		gt.Value(t, strings.Contains(prompt, "msg-6")).Equal(true)
	})

	t.Run("context window size is configurable", func(t *testing.T) {
		var prompt string
		svc, err := ai.New(capturePromptClient("ok", &prompt), ai.WithContextSize(2))
		gt.NoError(t, err).Required()

		_, err = svc.SuggestReply(ctx, []ai.ContextMessage{
			{IsOwn: true, Text: "msg-1"},
			{IsOwn: false, Text: "msg-2"},
			{IsOwn: true, Text: "msg-3"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(prompt, "msg-1")).Equal(false)
		gt.Value(t, strings.Contains(prompt, "msg-2")).Equal(true)
		gt.Value(t, strings.Contains(prompt, "msg-3")).Equal(true)
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("includes sender and text in transcript", func(t *testing.T) {
		var prompt string
		svc, err := ai.New(capturePromptClient("- bullet one\n- bullet two", &prompt))
		gt.NoError(t, err).Required()

		summary, err := svc.Summarize(ctx, []ai.TranscriptMessage{
			{SenderID: "user-a", Text: "let's plan the trip"},
			{SenderID: "user-b", Text: "I'll book the hotel"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, summary).Equal("- bullet one\n- bullet two")
		gt.Value(t, strings.Contains(prompt, "user-a: let's plan the trip")).Equal(true)
		gt.Value(t, strings.Contains(prompt, "user-b: I'll book the hotel")).Equal(true)
	})
}

func TestExtractTasks(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, response string) ai.Service {
		t.Helper()
		svc, err := ai.New(&mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{Texts: []string{response}}, nil
					},
				}, nil
			},
		})
		gt.NoError(t, err).Required()
		return svc
	}

	t.Run("parses schema object response", func(t *testing.T) {
		svc := newService(t, `{"tasks":[{"task":"buy milk","date":"2026-09-01","repeat":"none"}]}`)
		tasks, err := svc.ExtractTasks(ctx, "don't forget to buy milk by Sep 1")
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(1)
		gt.Value(t, tasks[0].Task).Equal("buy milk")
		gt.Value(t, tasks[0].Date).Equal("2026-09-01")
		gt.Value(t, tasks[0].Repeat).Equal("none")
	})

	t.Run("parses bare array response", func(t *testing.T) {
		svc := newService(t, `[{"task":"water plants","repeat":"daily"}]`)
		tasks, err := svc.ExtractTasks(ctx, "water the plants every day")
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(1)
		gt.Value(t, tasks[0].Task).Equal("water plants")
		gt.Value(t, tasks[0].Repeat).Equal("daily")
	})

	t.Run("malformed response degrades to empty list", func(t *testing.T) {
		svc := newService(t, "sorry, I could not find any tasks here")
		tasks, err := svc.ExtractTasks(ctx, "just chatting")
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(0)
	})

	t.Run("empty response yields empty list", func(t *testing.T) {
		svc, err := ai.New(&mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{}, nil
					},
				}, nil
			},
		})
		gt.NoError(t, err).Required()

		tasks, err := svc.ExtractTasks(ctx, "nothing to do")
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(0)
	})
}
