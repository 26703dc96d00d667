package breaker

import (
	"sync"
	"time"
)

// State represents the circuit breaker state.
type State string

const (
	// StateClosed admits all attempts; the dependency is considered healthy.
	StateClosed State = "closed"

	// StateOpen rejects all attempts until the cool-down elapses.
	StateOpen State = "open"

	// StateHalfOpen admits a single probe attempt after the cool-down.
	StateHalfOpen State = "half_open"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// Default breaker tuning. Five consecutive failures open the circuit for
// five minutes.
const (
	DefaultFailureThreshold = 5
	DefaultCoolDown         = 5 * time.Minute
)

// Breaker is a mutex-guarded circuit breaker. The zero value is not usable;
// construct with New.
type Breaker struct {
	mu              sync.Mutex
	failureCount    int
	lastFailureTime time.Time
	state           State

	threshold int
	coolDown  time.Duration
	now       func() time.Time
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithFailureThreshold overrides the number of consecutive failures that
// open the circuit.
func WithFailureThreshold(n int) Option {
	return func(b *Breaker) {
		if n > 0 {
			b.threshold = n
		}
	}
}

// WithCoolDown overrides the open-state cool-down duration.
func WithCoolDown(d time.Duration) Option {
	return func(b *Breaker) {
		if d > 0 {
			b.coolDown = d
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) {
		if now != nil {
			b.now = now
		}
	}
}

// New creates a closed Breaker with the default tuning.
func New(opts ...Option) *Breaker {
	b := &Breaker{
		state:     StateClosed,
		threshold: DefaultFailureThreshold,
		coolDown:  DefaultCoolDown,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Allow reports whether an attempt may proceed. An open breaker whose
// cool-down has elapsed transitions to half-open and admits the caller as
// the single probe.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed, StateHalfOpen:
		return true
	case StateOpen:
		if b.now().Sub(b.lastFailureTime) >= b.coolDown {
			b.state = StateHalfOpen
			return true
		}
		return false
	default:
		return false
	}
}

// RecordSuccess resets the breaker to closed with a zero failure count.
// Success in any state closes the circuit.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount = 0
	b.state = StateClosed
}

// RecordFailure registers a failure. The failure count keeps accumulating
// across open periods; a failure during the half-open probe re-opens the
// circuit and restarts the cool-down.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.lastFailureTime = b.now()

	if b.state == StateHalfOpen || b.failureCount >= b.threshold {
		b.state = StateOpen
	}
}

// State returns the current breaker state without side effects.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// FailureCount returns the current consecutive failure count.
func (b *Breaker) FailureCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failureCount
}

// LastFailureTime returns when the most recent failure was recorded, or the
// zero time if none has been.
func (b *Breaker) LastFailureTime() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastFailureTime
}
