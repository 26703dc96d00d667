package llm

import "sync"

// TokenTracker tracks token usage across models.
type TokenTracker interface {
	// Add records token usage for a specific model.
	Add(model string, usage TokenUsage)

	// Total returns the aggregate token usage across all models.
	Total() TokenUsage

	// ByModel returns the token usage for a specific model.
	ByModel(model string) TokenUsage

	// Reset clears all tracked token usage.
	Reset()

	// Models returns a list of all tracked model names.
	Models() []string
}

// DefaultTokenTracker is a thread-safe implementation of TokenTracker.
type DefaultTokenTracker struct {
	mu     sync.RWMutex
	models map[string]TokenUsage
	total  TokenUsage
}

// NewTokenTracker creates a new DefaultTokenTracker.
func NewTokenTracker() *DefaultTokenTracker {
	return &DefaultTokenTracker{
		models: make(map[string]TokenUsage),
	}
}

// Add records token usage for a specific model.
func (t *DefaultTokenTracker) Add(model string, usage TokenUsage) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.models[model]
	t.models[model] = current.Add(usage)
	t.total = t.total.Add(usage)
}

// Total returns the aggregate token usage across all models.
func (t *DefaultTokenTracker) Total() TokenUsage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.total
}

// ByModel returns the token usage for a specific model.
// Returns an empty TokenUsage if the model has not been used.
func (t *DefaultTokenTracker) ByModel(model string) TokenUsage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.models[model]
}

// Reset clears all tracked token usage.
func (t *DefaultTokenTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.models = make(map[string]TokenUsage)
	t.total = TokenUsage{}
}

// Models returns a list of all tracked model names.
func (t *DefaultTokenTracker) Models() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	models := make([]string, 0, len(t.models))
	for model := range t.models {
		models = append(models, model)
	}
	return models
}

// Snapshot is a read-only copy of the current token usage state.
type Snapshot struct {
	// Models contains token usage by model name.
	Models map[string]TokenUsage

	// Total contains aggregate token usage.
	Total TokenUsage
}

// Snapshot returns a snapshot of the current token usage state.
func (t *DefaultTokenTracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	models := make(map[string]TokenUsage, len(t.models))
	for model, usage := range t.models {
		models[model] = usage
	}

	return Snapshot{
		Models: models,
		Total:  t.total,
	}
}
