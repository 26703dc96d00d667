// Package health provides health checks for the platform's runtime
// components. Deployments embed these into their readiness endpoints to
// surface degraded classification capacity (an open circuit breaker, an
// unreachable cache) before it turns into silent fallback results.
package health

import (
	"context"
	"fmt"

	"github.com/veracomply/sdk/breaker"
)

// Status constants represent the operational state of a component.
const (
	// StatusHealthy indicates the component is fully operational.
	StatusHealthy = "healthy"

	// StatusDegraded indicates the component is operational but experiencing issues.
	StatusDegraded = "degraded"

	// StatusUnhealthy indicates the component is not operational.
	StatusUnhealthy = "unhealthy"
)

// Status represents the health state of a component or service.
type Status struct {
	// State is the current health state (healthy, degraded, or unhealthy).
	State string `json:"status"`

	// Message provides a human-readable description of the health status.
	Message string `json:"message,omitempty"`

	// Details contains additional context and diagnostic information.
	Details map[string]any `json:"details,omitempty"`
}

// IsHealthy returns true if the state is StatusHealthy.
func (s Status) IsHealthy() bool {
	return s.State == StatusHealthy
}

// IsDegraded returns true if the state is StatusDegraded.
func (s Status) IsDegraded() bool {
	return s.State == StatusDegraded
}

// IsUnhealthy returns true if the state is StatusUnhealthy.
func (s Status) IsUnhealthy() bool {
	return s.State == StatusUnhealthy
}

// Healthy creates a healthy status with an optional message.
func Healthy(message string) Status {
	return Status{
		State:   StatusHealthy,
		Message: message,
	}
}

// Degraded creates a degraded status with a message and optional details.
func Degraded(message string, details map[string]any) Status {
	return Status{
		State:   StatusDegraded,
		Message: message,
		Details: details,
	}
}

// Unhealthy creates an unhealthy status with a message and optional details.
func Unhealthy(message string, details map[string]any) Status {
	return Status{
		State:   StatusUnhealthy,
		Message: message,
		Details: details,
	}
}

// Pinger is implemented by backends that can verify connectivity, such as
// the Redis cache and the etcd document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck verifies connectivity to a named backend.
func PingCheck(ctx context.Context, name string, p Pinger) Status {
	if p == nil {
		return Unhealthy(fmt.Sprintf("%s: no backend configured", name), nil)
	}

	if err := p.Ping(ctx); err != nil {
		return Unhealthy(
			fmt.Sprintf("%s: connectivity check failed", name),
			map[string]any{"error": err.Error()},
		)
	}
	return Healthy(fmt.Sprintf("%s: reachable", name))
}

// BreakerCheck reports the circuit breaker's state. A closed breaker is
// healthy; half-open means the AI path is probing after failures; open
// means classifications are currently degrading to heuristic fallbacks.
func BreakerCheck(b *breaker.Breaker) Status {
	if b == nil {
		return Unhealthy("breaker: not configured", nil)
	}

	details := map[string]any{
		"failure_count": b.FailureCount(),
	}
	if last := b.LastFailureTime(); !last.IsZero() {
		details["last_failure"] = last
	}

	switch b.State() {
	case breaker.StateClosed:
		return Healthy("breaker: closed")
	case breaker.StateHalfOpen:
		return Degraded("breaker: half-open, probing AI classifier", details)
	case breaker.StateOpen:
		return Unhealthy("breaker: open, AI classification disabled", details)
	default:
		return Unhealthy(fmt.Sprintf("breaker: unknown state %s", b.State()), details)
	}
}

// Combine merges multiple statuses into an overall status: unhealthy if
// any check is unhealthy, else degraded if any check is degraded, else
// healthy. Individual messages are collected into the details.
func Combine(checks ...Status) Status {
	if len(checks) == 0 {
		return Healthy("no checks provided")
	}

	var unhealthy, degraded []string
	for _, check := range checks {
		switch check.State {
		case StatusUnhealthy:
			unhealthy = append(unhealthy, check.Message)
		case StatusDegraded:
			degraded = append(degraded, check.Message)
		}
	}

	if len(unhealthy) > 0 {
		return Unhealthy(
			fmt.Sprintf("%d of %d checks unhealthy", len(unhealthy), len(checks)),
			map[string]any{"unhealthy": unhealthy, "degraded": degraded},
		)
	}
	if len(degraded) > 0 {
		return Degraded(
			fmt.Sprintf("%d of %d checks degraded", len(degraded), len(checks)),
			map[string]any{"degraded": degraded},
		)
	}
	return Healthy(fmt.Sprintf("all %d checks passed", len(checks)))
}
