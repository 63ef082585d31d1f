package types

import (
	"encoding/json"
	"testing"
)

func TestQueryResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result QueryResult
		want   string
	}{
		{
			name:   "success uses answer key",
			result: QueryResult{Answer: "You have the right to quiet enjoyment.", Status: StatusSuccess},
			want:   `{"answer":"You have the right to quiet enjoyment.","status":"success"}`,
		},
		{
			name:   "error uses answer_or_error key",
			result: QueryResult{Answer: "An error occurred: timeout", Status: StatusError},
			want:   `{"answer_or_error":"An error occurred: timeout","status":"error"}`,
		},
		{
			name:   "zero value is reported as error",
			result: QueryResult{},
			want:   `{"answer_or_error":"","status":"error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			if err != nil {
				t.Fatalf("Marshal() unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQueryResult_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAnswer string
		wantStatus Status
		wantErr    bool
	}{
		{
			name:       "success body",
			body:       `{"answer":"text","status":"success"}`,
			wantAnswer: "text",
			wantStatus: StatusSuccess,
		},
		{
			name:       "error body",
			body:       `{"answer_or_error":"boom","status":"error"}`,
			wantAnswer: "boom",
			wantStatus: StatusError,
		},
		{
			name:    "invalid JSON",
			body:    `{"answer":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got QueryResult
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				if err == nil {
					t.Error("Unmarshal() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", got.Answer, tt.wantAnswer)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}
