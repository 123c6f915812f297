package usecase

import (
	"time"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/service/ai"
)

// UseCases bundles the application operations behind the HTTP layer
type UseCases struct {
	repo     interfaces.Repository
	verifier interfaces.IdentityVerifier
	ai       ai.Service
	now      func() time.Time
}

type Option func(*UseCases)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, verifier interfaces.IdentityVerifier, aiService ai.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		verifier: verifier,
		ai:       aiService,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
