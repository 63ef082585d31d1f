// Package legal turns a legal question into a QueryResult by asking a hosted chat model.
package legal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vokinneberg/lawgpt-api/internal/types"
)

// SystemPrompt is the fixed instruction sent ahead of every question
const SystemPrompt = "You are a legal assistant helping with legal questions."

// Messages returned to the caller when no upstream call is made
const (
	MissingCredentialMessage = "An OpenAI API key is required. Set OPENAI_API_KEY, add openai_api_key to the secrets file, or supply the key with your request."
	EmptyQuestionMessage     = "Please enter a legal question."
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrEmptyQuestion     = errors.New("empty question")
)

// UpstreamError wraps any failure surfaced by the chat-completion service
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=assistant.go -destination=mock_completer.go -package=legal Completer

// Completer defines the interface for a single chat completion
type Completer interface {
	Complete(ctx context.Context, apiKey, systemPrompt, question string) (string, error)
}

// Assistant answers legal questions
type Assistant struct {
	completer Completer
}

// NewAssistant creates a new Assistant on top of the given completer
func NewAssistant(completer Completer) *Assistant {
	return &Assistant{
		completer: completer,
	}
}

// Ask sends the question to the upstream model using credential and maps
// the outcome to a QueryResult. Failures never escape as errors.
func (a *Assistant) Ask(ctx context.Context, question, credential string) types.QueryResult {
	if strings.TrimSpace(credential) == "" {
		return failure(MissingCredentialMessage, ErrMissingCredential)
	}
	if strings.TrimSpace(question) == "" {
		return failure(EmptyQuestionMessage, ErrEmptyQuestion)
	}

	answer, err := a.completer.Complete(ctx, credential, SystemPrompt, question)
	if err != nil {
		return failure(fmt.Sprintf("An error occurred: %v", err), &UpstreamError{Err: err})
	}

	return types.QueryResult{
		Answer: answer,
		Status: types.StatusSuccess,
	}
}

func failure(message string, err error) types.QueryResult {
	return types.QueryResult{
		Answer: message,
		Status: types.StatusError,
		Err:    err,
	}
}
