package types

import "encoding/json"

// Status is the outcome of a legal query
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// QueryRequest represents a query request
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResult is the uniform record returned for every legal query.
// On success Answer holds the model text, on error a human-readable message.
type QueryResult struct {
	Answer string
	Status Status

	// Err is the underlying failure, kept for logging only.
	Err error
}

type successBody struct {
	Answer string `json:"answer"`
	Status Status `json:"status"`
}

type errorBody struct {
	AnswerOrError string `json:"answer_or_error"`
	Status        Status `json:"status"`
}

// MarshalJSON writes "answer" for successful results and "answer_or_error" otherwise.
func (r QueryResult) MarshalJSON() ([]byte, error) {
	if r.Status == StatusSuccess {
		return json.Marshal(successBody{Answer: r.Answer, Status: r.Status})
	}
	return json.Marshal(errorBody{AnswerOrError: r.Answer, Status: StatusError})
}

// UnmarshalJSON accepts both the success and the error shape.
func (r *QueryResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Answer        string `json:"answer"`
		AnswerOrError string `json:"answer_or_error"`
		Status        Status `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Status = raw.Status
	r.Answer = raw.Answer
	if r.Answer == "" {
		r.Answer = raw.AnswerOrError
	}
	return nil
}

// OK reports whether the result holds a model answer
func (r QueryResult) OK() bool {
	return r.Status == StatusSuccess
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
