package usecase

import (
	"context"
	"strings"

	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/m-mizutani/goerr/v2"
)

// SuggestReply proposes the caller's next reply from the supplied
// conversation context. The AI service only sees the trailing window.
func (uc *UseCases) SuggestReply(ctx context.Context, messages []ai.ContextMessage) (string, error) {
	if len(messages) == 0 {
		return "", goerr.Wrap(ErrInvalidInput, "at least one message is required")
	}

	suggestion, err := uc.ai.SuggestReply(ctx, messages)
	if err != nil {
		return "", goerr.Wrap(err, "failed to suggest reply")
	}
	return suggestion, nil
}

// Summarize produces a bullet-point summary of the supplied transcript.
// At least two messages are required to summarize.
func (uc *UseCases) Summarize(ctx context.Context, messages []ai.TranscriptMessage) (string, error) {
	if len(messages) < 2 {
		return "", goerr.Wrap(ErrInvalidInput, "at least two messages are required")
	}

	summary, err := uc.ai.Summarize(ctx, messages)
	if err != nil {
		return "", goerr.Wrap(err, "failed to summarize conversation")
	}
	return summary, nil
}

// ExtractTasks pulls actionable tasks out of free text. An unparseable
// model response yields an empty list rather than an error.
func (uc *UseCases) ExtractTasks(ctx context.Context, text string) ([]ai.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "text is required")
	}

	tasks, err := uc.ai.ExtractTasks(ctx, text)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract tasks")
	}
	return tasks, nil
}
