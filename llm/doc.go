// Package llm provides types and interfaces for working with Large Language
// Models in the Veracomply platform.
//
// The package defines the abstractions the evidence classification pipeline
// uses to talk to an AI provider:
//   - Message types for conversations (system, user, assistant)
//   - Completion requests and responses with functional options
//   - The Client interface implemented by provider adapters
//   - Token usage tracking across models
//
// # Messages and Completions
//
// A classification request is a short conversation: a system prompt
// describing the task and a user message carrying the document excerpt.
//
//	req := llm.NewCompletionRequest([]llm.Message{
//	    {Role: llm.RoleSystem, Content: systemPrompt},
//	    {Role: llm.RoleUser, Content: excerpt},
//	}, llm.WithTemperature(0), llm.WithMaxTokens(300))
//
// # Clients
//
// Client is the single-method interface provider adapters implement. The
// pipeline only ever issues one-shot completions, so there is no streaming
// surface.
//
//	resp, err := client.Complete(ctx, req)
//
// ClientFunc adapts a plain function to the interface, which keeps tests
// and small integrations free of adapter boilerplate.
//
// # Token Tracking
//
// TokenTracker accumulates usage per model so operators can attribute
// classification spend:
//
//	tracker := llm.NewTokenTracker()
//	tracker.Add("claude-haiku", resp.Usage)
//	total := tracker.Total()
package llm
