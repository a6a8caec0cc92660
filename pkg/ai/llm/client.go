package llm

import "context"

// Client is the interface for LLM clients (OpenAI today; the insight
// service only depends on this so tests can substitute a stub).
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error)
}

// Ensure implementations satisfy the interface
var _ Client = (*OpenAIClient)(nil)
