package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vokinneberg/lawgpt-api/internal/config"
	"github.com/vokinneberg/lawgpt-api/internal/types"
)

// APIKeyHeader carries a caller-supplied OpenAI key; it overrides the server credential
const APIKeyHeader = "X-OpenAI-Key"

//go:generate mockgen -source=handlers.go -destination=mock_assistant.go -package=http Assistant

// Assistant defines the interface for answering legal questions
type Assistant interface {
	Ask(ctx context.Context, question, credential string) types.QueryResult
}

type Handler struct {
	assistant   Assistant
	credentials []config.Source
}

// NewHandlers initializes handlers with dependencies.
// credentials are the server-side key sources, lowest precedence first.
func NewHandlers(assistant Assistant, credentials ...config.Source) *Handler {
	return &Handler{
		assistant:   assistant,
		credentials: credentials,
	}
}

func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req types.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		errorResponse(w, http.StatusBadRequest, "Query is required", nil)
		return
	}

	ctx := r.Context()
	logger := slog.With("request_id", requestIDFrom(ctx))

	sources := append([]config.Source{}, h.credentials...)
	sources = append(sources, config.Source{Name: config.SourceField, Value: r.Header.Get(APIKeyHeader)})
	credential, source := config.Resolve(sources...)

	result := h.assistant.Ask(ctx, req.Query, credential)
	if result.OK() {
		logger.Info("Answered query", "credential_source", source, "answer_len", len(result.Answer))
	} else {
		logger.Error("Query failed", "error", result.Err, "credential_source", source)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("Error encoding response", "error", err)
	}
}

// OptionsHandler acknowledges a CORS preflight; the headers come from the cors middleware
func (h *Handler) OptionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   errorMsg,
		Message: http.StatusText(status),
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
