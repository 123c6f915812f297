package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/chatpad-dev/chatpad/pkg/cli/config"
	httpctrl "github.com/chatpad-dev/chatpad/pkg/controller/http"
	"github.com/chatpad-dev/chatpad/pkg/service/ai"
	"github.com/chatpad-dev/chatpad/pkg/service/notify"
	"github.com/chatpad-dev/chatpad/pkg/service/worker"
	"github.com/chatpad-dev/chatpad/pkg/usecase"
	"github.com/chatpad-dev/chatpad/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var frontendURL string
	var checkInterval time.Duration
	var repoCfg config.Repository
	var firebaseCfg config.Firebase
	var openaiCfg config.OpenAI

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CHATPAD_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "frontend-url",
			Usage:       "Frontend origin allowed by CORS (any origin when unset)",
			Sources:     cli.EnvVars("CHATPAD_FRONTEND_URL"),
			Destination: &frontendURL,
		},
		&cli.DurationFlag{
			Name:        "check-interval",
			Usage:       "Reminder due-check interval",
			Value:       time.Minute,
			Sources:     cli.EnvVars("CHATPAD_CHECK_INTERVAL"),
			Destination: &checkInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, firebaseCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			verifier, err := firebaseCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure identity verifier")
			}

			llmClient, err := openaiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			logging.Default().Info("LLM client configured", "openai", &openaiCfg)

			aiSvc, err := ai.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize AI service")
			}

			uc := usecase.New(repo, verifier, aiSvc)

			// Reminder scheduler runs alongside the HTTP server
			reminderWorker := worker.NewReminderWorker(repo, notify.NewLogNotifier(), checkInterval)
			if err := reminderWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start reminder worker")
			}

			srvOpts := []httpctrl.Options{}
			if frontendURL != "" {
				srvOpts = append(srvOpts, httpctrl.WithFrontendURL(frontendURL))
			}
			handler := httpctrl.New(uc, verifier, srvOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				reminderWorker.Stop()
				return err

			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop the reminder worker before closing the server
				reminderWorker.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
