package usecase_test

import (
	"context"
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/repository/memory"
	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// mockVerifier resolves tokens from a fixed table
type mockVerifier struct {
	tokens map[string]*interfaces.IdentityClaims
}

func (m *mockVerifier) Verify(ctx context.Context, idToken string) (*interfaces.IdentityClaims, error) {
	if claims, ok := m.tokens[idToken]; ok {
		return claims, nil
	}
	return nil, goerr.New("invalid token")
}

// mockAIService returns canned responses
type mockAIService struct {
	suggestReplyFn func(ctx context.Context, messages []ai.ContextMessage) (string, error)
	summarizeFn    func(ctx context.Context, messages []ai.TranscriptMessage) (string, error)
	extractTasksFn func(ctx context.Context, text string) ([]ai.Task, error)
}

func (m *mockAIService) SuggestReply(ctx context.Context, messages []ai.ContextMessage) (string, error) {
	if m.suggestReplyFn != nil {
		return m.suggestReplyFn(ctx, messages)
	}
	return "mock suggestion", nil
}

func (m *mockAIService) Summarize(ctx context.Context, messages []ai.TranscriptMessage) (string, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx, messages)
	}
	return "- mock summary", nil
}

func (m *mockAIService) ExtractTasks(ctx context.Context, text string) ([]ai.Task, error) {
	if m.extractTasksFn != nil {
		return m.extractTasksFn(ctx, text)
	}
	return []ai.Task{}, nil
}

var testTime = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCases(repo interfaces.Repository, verifier *mockVerifier, aiSvc ai.Service) *usecase.UseCases {
	if repo == nil {
		repo = memory.New()
	}
	if verifier == nil {
		verifier = &mockVerifier{}
	}
	if aiSvc == nil {
		aiSvc = &mockAIService{}
	}
	return usecase.New(repo, verifier, aiSvc,
		usecase.WithClock(func() time.Time { return testTime }))
}
