package llm

import "context"

// Client is implemented by LLM provider adapters. The classification
// pipeline issues one-shot completions only, so a single method suffices.
type Client interface {
	// Complete sends the request and returns the model's response.
	// Implementations should honor context cancellation and return an
	// error for any transport, rate-limit, or provider failure.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

// Complete implements Client.
func (f ClientFunc) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	return f(ctx, req)
}
