package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vokinneberg/lawgpt-api/internal/config"
	"github.com/vokinneberg/lawgpt-api/internal/legal"
	"github.com/vokinneberg/lawgpt-api/internal/llm"
)

type askOptions struct {
	apiKey      string
	model       string
	baseURL     string
	secretsFile string
	timeout     time.Duration
}

func newAskCmd() *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a legal question",
		Long: `Ask a legal question. Without arguments the question is read from stdin.
Exits with a non-zero status when no answer could be produced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY and the secrets file)")
	cmd.Flags().StringVar(&opts.model, "model", envOr("OPENAI_MODEL", config.DefaultModel), "Chat model")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", envOr("OPENAI_BASE_URL", ""), "OpenAI API base URL")
	cmd.Flags().StringVar(&opts.secretsFile, "secrets", envOr("SECRETS_FILE", config.DefaultSecretsFile), "YAML secrets file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Request timeout")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string, opts *askOptions) error {
	question := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading question from stdin: %w", err)
		}
		question = string(data)
	}
	question = strings.TrimSpace(question)

	secrets, err := config.LoadSecrets(opts.secretsFile)
	if err != nil {
		return err
	}

	credential, _ := config.Resolve(
		config.Source{Name: config.SourceEnv, Value: envOr("OPENAI_API_KEY", "")},
		config.Source{Name: config.SourceSecrets, Value: secrets.OpenAIAPIKey},
		config.Source{Name: config.SourceField, Value: opts.apiKey},
	)

	assistant := legal.NewAssistant(llm.NewClient(opts.model, opts.baseURL, opts.timeout))
	result := assistant.Ask(cmd.Context(), question, credential)
	if !result.OK() {
		return errors.New(result.Answer)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	return nil
}
