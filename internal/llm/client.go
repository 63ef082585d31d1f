package llm

import (
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client for single-shot chat completions.
// It holds no credential: the API key is supplied with every call.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new LLM client for the given model.
// An empty baseURL targets the public OpenAI API; a zero timeout disables the per-request deadline.
func NewClient(model, baseURL string, timeout time.Duration) *Client {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client: &client,
		model:  model,
	}
}

// Model returns the chat model every request is sent to
func (c *Client) Model() string {
	return c.model
}
