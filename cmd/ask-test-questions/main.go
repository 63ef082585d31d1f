package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/vokinneberg/lawgpt-api/internal/types"

	httphandler "github.com/vokinneberg/lawgpt-api/internal/http"
)

func main() {
	if len(os.Args) < 2 {
		slog.Error("Usage: go run ./cmd/ask-test-questions <server-url>")
		os.Exit(1)
	}

	serverURL := strings.TrimRight(os.Args[1], "/")
	testDataDir := "testdata/questions"

	// Read all .txt files from testdata/questions
	files, err := filepath.Glob(filepath.Join(testDataDir, "*.txt"))
	if err != nil {
		slog.Error("Failed to read testdata directory", "error", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		slog.Error("No .txt files found in testdata/questions")
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		if err := ask(serverURL, file); err != nil {
			slog.Error("Question failed", "file", file, "error", err)
			failed++
		}
	}

	slog.Info("Done", "questions", len(files), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func ask(serverURL, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	jsonData, err := json.Marshal(types.QueryRequest{Query: strings.TrimSpace(string(content))})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, serverURL+"/api/query", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		req.Header.Set(httphandler.APIKeyHeader, key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var result types.QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.OK() {
		return fmt.Errorf("query error: %s", result.Answer)
	}

	slog.Info("Answered", "file", filepath.Base(file), "answer", result.Answer)
	return nil
}
