package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vokinneberg/lawgpt-api/internal/legal"
)

func fakeUpstream(t *testing.T, wantKey string, gotQuestion *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+wantKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
			return
		}

		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) == 2 && gotQuestion != nil {
			*gotQuestion = body.Messages[1].Content
		}

		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-3.5-turbo",`+
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Consult your lease."}}]}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		secrets      string
		stdin        string
		args         []string
		wantOut      string
		wantQuestion string
		errContains  string
	}{
		{
			name:         "question from args with flag key",
			args:         []string{"ask", "--api-key", "sk-good", "Can", "I", "sublet?"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "Can I sublet?",
		},
		{
			name:         "question from stdin with env key",
			env:          "sk-good",
			stdin:        "  Is a verbal contract binding?\n",
			args:         []string{"ask"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "Is a verbal contract binding?",
		},
		{
			name:         "secrets file key alone",
			secrets:      "sk-good",
			args:         []string{"ask", "question"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "question",
		},
		{
			name:         "secrets file overrides env",
			env:          "sk-bad",
			secrets:      "sk-good",
			args:         []string{"ask", "question"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "question",
		},
		{
			name:         "flag overrides secrets file",
			secrets:      "sk-bad",
			args:         []string{"ask", "--api-key", "sk-good", "question"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "question",
		},
		{
			name:         "flag overrides env and secrets file",
			env:          "sk-bad",
			secrets:      "sk-bad",
			args:         []string{"ask", "--api-key", "sk-good", "question"},
			wantOut:      "Consult your lease.\n",
			wantQuestion: "question",
		},
		{
			name:        "rejected flag key wins over accepted env key",
			env:         "sk-good",
			args:        []string{"ask", "--api-key", "sk-bad", "question"},
			errContains: "Incorrect API key provided",
		},
		{
			name:        "rejected secrets key wins over accepted env key",
			env:         "sk-good",
			secrets:     "sk-bad",
			args:        []string{"ask", "question"},
			errContains: "Incorrect API key provided",
		},
		{
			name:        "missing key",
			args:        []string{"ask", "question"},
			errContains: legal.MissingCredentialMessage,
		},
		{
			name:        "empty question",
			args:        []string{"ask", "--api-key", "sk-good"},
			errContains: legal.EmptyQuestionMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuestion string
			upstream := fakeUpstream(t, "sk-good", &gotQuestion)

			secretsFile := filepath.Join(t.TempDir(), "secrets.yaml")
			if tt.secrets != "" {
				content := fmt.Sprintf("openai_api_key: %q\n", tt.secrets)
				if err := os.WriteFile(secretsFile, []byte(content), 0o600); err != nil {
					t.Fatalf("Failed to write secrets file: %v", err)
				}
			}

			t.Setenv("OPENAI_API_KEY", tt.env)
			args := append(tt.args, "--base-url", upstream.URL+"/", "--secrets", secretsFile)

			out, err := execute(t, tt.stdin, args...)

			if tt.errContains != "" {
				if err == nil {
					t.Fatalf("ask expected error, got output %q", out)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ask error = %v, want containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("ask unexpected error: %v", err)
			}
			if out != tt.wantOut {
				t.Errorf("ask output = %q, want %q", out, tt.wantOut)
			}
			if gotQuestion != tt.wantQuestion {
				t.Errorf("upstream question = %q, want %q", gotQuestion, tt.wantQuestion)
			}
		})
	}
}
