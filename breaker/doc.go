// Package breaker implements the circuit breaker that isolates the AI
// classifier from repeated failures.
//
// The breaker starts closed. Five consecutive failures open it, locking
// out AI attempts for a five minute cool-down; while open, classification
// falls back immediately. Once the cool-down elapses the breaker half-opens
// and admits exactly one probe attempt: success closes it again, failure
// re-opens it and restarts the cool-down.
//
// A Breaker is safe for concurrent use. Lost updates to the failure count
// would silently disable the platform's resilience gating, so every state
// transition happens under the breaker's mutex.
package breaker
