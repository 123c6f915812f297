package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// OpenAI holds CLI flags for the LLM client
type OpenAI struct {
	apiKey string
	model  string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Required:    true,
			Sources:     cli.EnvVars("CHATPAD_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model for all AI features",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("CHATPAD_OPENAI_MODEL"),
			Destination: &o.model,
		},
	}
}

// LogValue renders the configuration for startup logging with the key
// redacted
func (o *OpenAI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", o.apiKey != ""),
		slog.String("model", o.model),
	)
}

// Configure creates the LLM client from the configured flags
func (o *OpenAI) Configure(ctx context.Context) (gollem.LLMClient, error) {
	client, err := openai.New(ctx, o.apiKey, openai.WithModel(o.model))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}
	return client, nil
}
