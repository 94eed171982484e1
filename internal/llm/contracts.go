package llm

import "context"

// ChatRequest is one synchronous structured-output request to the model.
type ChatRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// ChatClient is the interface the evaluators depend on. Implementations must
// classify provider throttling as common.ErrRateLimited so the retry loop can
// tell transient failures from permanent ones.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (content string, err error)
}
