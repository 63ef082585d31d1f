// LawGPT
//
// Ask a hosted chat model a legal question from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lawgpt",
		Short: "LawGPT - legal questions answered by a chat model",
		Long: `LawGPT sends a legal question to the OpenAI chat completions API and prints the answer.

  lawgpt ask "What are my rights as a tenant?"     Ask a question
  echo "Is a verbal contract binding?" | lawgpt ask  Read the question from stdin

The API key is taken from OPENAI_API_KEY, then the secrets file, then --api-key;
the last one set wins.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newAskCmd())
	return rootCmd
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found", "error", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
