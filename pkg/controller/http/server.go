package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chatpad-dev/chatpad/pkg/domain/interfaces"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
)

type Server struct {
	router      *chi.Mux
	uc          *usecase.UseCases
	verifier    interfaces.IdentityVerifier
	frontendURL string
}

type Options func(*Server)

// WithFrontendURL restricts CORS to the given origin. Without it any
// origin is accepted, which is only suitable for local development.
func WithFrontendURL(url string) Options {
	return func(s *Server) {
		s.frontendURL = url
	}
}

func New(uc *usecase.UseCases, verifier interfaces.IdentityVerifier, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:   r,
		uc:       uc,
		verifier: verifier,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	allowedOrigins := []string{"*"}
	if s.frontendURL != "" {
		allowedOrigins = []string{s.frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: s.frontendURL != "",
		MaxAge:           300,
	}))

	r.Get("/", healthHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", loginHandler(s.uc))

		// Everything else requires a verified bearer token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(s.verifier))

			r.Route("/auth/profile", func(r chi.Router) {
				r.Get("/", getProfileHandler(s.uc))
				r.Patch("/", updateProfileHandler(s.uc))
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/search", searchUserHandler(s.uc))
				r.Get("/conversations", listConversationsHandler(s.uc))
				r.Post("/conversations", startConversationHandler(s.uc))
				r.Get("/conversations/{conversationID}/messages", listMessagesHandler(s.uc))
				r.Post("/conversations/{conversationID}/messages", sendMessageHandler(s.uc))
			})

			r.Route("/notepad", func(r chi.Router) {
				r.Get("/", listNotesHandler(s.uc))
				r.Post("/", createNoteHandler(s.uc))
				r.Patch("/{noteID}", updateNoteHandler(s.uc))
				r.Delete("/{noteID}", deleteNoteHandler(s.uc))
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Get("/", listRemindersHandler(s.uc))
				r.Post("/", createReminderHandler(s.uc))
				r.Patch("/{reminderID}", updateReminderHandler(s.uc))
				r.Delete("/{reminderID}", deleteReminderHandler(s.uc))
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/suggest", suggestReplyHandler(s.uc))
				r.Post("/summarize", summarizeHandler(s.uc))
				r.Post("/extract-tasks", extractTasksHandler(s.uc))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
