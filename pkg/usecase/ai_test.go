package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestSuggestReply(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the context to the AI service", func(t *testing.T) {
		var captured []ai.ContextMessage
		aiSvc := &mockAIService{
			suggestReplyFn: func(ctx context.Context, messages []ai.ContextMessage) (string, error) {
				captured = messages
				return "sounds good!", nil
			},
		}
		uc := newTestUseCases(nil, nil, aiSvc)

		reply, err := uc.SuggestReply(ctx, []ai.ContextMessage{
			{IsOwn: true, Text: "are we still on?"},
			{IsOwn: false, Text: "yes, 7pm works"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, reply).Equal("sounds good!")
		gt.Array(t, captured).Length(2)
		gt.Value(t, captured[0].IsOwn).Equal(true)
	})

	t.Run("empty context is rejected", func(t *testing.T) {
		uc := newTestUseCases(nil, nil, nil)
		_, err := uc.SuggestReply(ctx, nil)
		gt.Value(t, errors.Is(err, usecase.ErrInvalidInput)).Equal(true)
	})
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes a transcript", func(t *testing.T) {
		var captured []ai.TranscriptMessage
		aiSvc := &mockAIService{
			summarizeFn: func(ctx context.Context, messages []ai.TranscriptMessage) (string, error) {
				captured = messages
				return "- planned dinner", nil
			},
		}
		uc := newTestUseCases(nil, nil, aiSvc)

		summary, err := uc.Summarize(ctx, []ai.TranscriptMessage{
			{SenderID: "uid-a", Text: "dinner friday?"},
			{SenderID: "uid-b", Text: "yes please"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, summary).Equal("- planned dinner")
		gt.Array(t, captured).Length(2)
	})

	t.Run("too short transcript is rejected", func(t *testing.T) {
		uc := newTestUseCases(nil, nil, nil)
		_, err := uc.Summarize(ctx, []ai.TranscriptMessage{
			{SenderID: "uid-a", Text: "just me"},
		})
		gt.Value(t, errors.Is(err, usecase.ErrInvalidInput)).Equal(true)
	})
}

func TestExtractTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to the AI service", func(t *testing.T) {
		aiSvc := &mockAIService{
			extractTasksFn: func(ctx context.Context, text string) ([]ai.Task, error) {
				return []ai.Task{{Task: "buy milk", Repeat: "none"}}, nil
			},
		}
		uc := newTestUseCases(nil, nil, aiSvc)

		tasks, err := uc.ExtractTasks(ctx, "remember to buy milk")
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(1)
		gt.Value(t, tasks[0].Task).Equal("buy milk")
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		uc := newTestUseCases(nil, nil, nil)
		_, err := uc.ExtractTasks(ctx, "   ")
		gt.Value(t, errors.Is(err, usecase.ErrInvalidInput)).Equal(true)
	})
}
