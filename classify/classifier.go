package classify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/veracomply/sdk/breaker"
	"github.com/veracomply/sdk/cache"
	"github.com/veracomply/sdk/docstore"
	"github.com/veracomply/sdk/evidence"
	"github.com/veracomply/sdk/llm"
	"github.com/veracomply/sdk/sdkerr"
)

// defaultAITimeout bounds a single AI classification call. A timeout is
// treated as an AI failure and falls through to the heuristic path.
const defaultAITimeout = 30 * time.Second

// reasonBreakerOpen is returned while the circuit breaker rejects AI
// attempts. The result is not persisted or cached so a later call retries
// the full pipeline.
const reasonBreakerOpen = "Classification skipped - circuit breaker open, defaulting to self-declared tier"

// Classifier runs the evidence classification pipeline. Construct with New;
// the zero value is not usable. A Classifier is safe for concurrent use.
type Classifier struct {
	store   docstore.Store
	fetcher docstore.ContentFetcher
	cache   cache.Cache
	breaker *breaker.Breaker
	ai      llm.Client
	model   string
	tracker llm.TokenTracker

	aiTimeout time.Duration
	logger    *slog.Logger
	now       func() time.Time

	// strategy is fixed at construction: AI-backed when a client is
	// configured, heuristic-only otherwise.
	strategy strategy

	otelTracer  trace.Tracer
	otelMeter   metric.Meter
	otelMetrics *otelMetrics
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithAI sets the AI classification client. Without one, classification is
// purely heuristic.
func WithAI(client llm.Client) Option {
	return func(c *Classifier) {
		c.ai = client
	}
}

// WithModel names the model requested from the AI client.
func WithModel(model string) Option {
	return func(c *Classifier) {
		c.model = model
	}
}

// WithCache replaces the default in-memory result cache.
func WithCache(ca cache.Cache) Option {
	return func(c *Classifier) {
		if ca != nil {
			c.cache = ca
		}
	}
}

// WithBreaker replaces the default circuit breaker. Useful for sharing one
// breaker across classifiers that hit the same AI provider.
func WithBreaker(b *breaker.Breaker) Option {
	return func(c *Classifier) {
		if b != nil {
			c.breaker = b
		}
	}
}

// WithTokenTracker records AI token usage per model.
func WithTokenTracker(t llm.TokenTracker) Option {
	return func(c *Classifier) {
		c.tracker = t
	}
}

// WithAITimeout overrides the per-call AI timeout.
func WithAITimeout(d time.Duration) Option {
	return func(c *Classifier) {
		if d > 0 {
			c.aiTimeout = d
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// OTelOptions carries the OpenTelemetry integration points for a Classifier.
type OTelOptions struct {
	// Tracer creates spans for classification operations.
	Tracer trace.Tracer

	// MeterProvider creates the classification metric instruments.
	MeterProvider metric.MeterProvider
}

// WithOTel enables OpenTelemetry tracing and metrics for classification.
// Instrument creation failures are logged and degrade to no-op rather than
// failing construction.
func WithOTel(opts OTelOptions) Option {
	return func(c *Classifier) {
		c.otelTracer = opts.Tracer
		if opts.MeterProvider != nil {
			c.otelMeter = opts.MeterProvider.Meter("github.com/veracomply/sdk/classify")
		}
	}
}

// New creates a Classifier over the given document store and content
// fetcher. With no options it uses an in-memory cache, a fresh circuit
// breaker, and heuristic-only classification.
func New(store docstore.Store, fetcher docstore.ContentFetcher, opts ...Option) (*Classifier, error) {
	if store == nil {
		return nil, sdkerr.NewConfigurationError("classify.New",
			fmt.Errorf("%w: document store is required", sdkerr.ErrInvalidConfig))
	}
	if fetcher == nil {
		return nil, sdkerr.NewConfigurationError("classify.New",
			fmt.Errorf("%w: content fetcher is required", sdkerr.ErrInvalidConfig))
	}

	c := &Classifier{
		store:     store,
		fetcher:   fetcher,
		cache:     cache.NewMemory(),
		breaker:   breaker.New(),
		aiTimeout: defaultAITimeout,
		logger:    slog.Default(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.ai != nil {
		c.strategy = aiStrategy{c: c}
	} else {
		c.strategy = heuristicStrategy{c: c}
	}

	if c.otelMeter != nil {
		metrics, err := c.initOTelMetrics()
		if err != nil {
			c.logger.Warn("failed to initialize classification metrics", "error", err)
		} else {
			c.otelMetrics = metrics
		}
	}

	return c, nil
}

// Classify resolves a document ID to a classification result.
//
// The only error condition is an unknown document ID, surfaced as a
// not-found error wrapping sdkerr.ErrDocumentNotFound. Every other failure
// (content fetch, AI transport, malformed AI response, descriptor store
// outage) degrades to a result instead of an error.
func (c *Classifier) Classify(ctx context.Context, documentID string) (*evidence.Result, error) {
	start := c.now()

	if cached, err := c.cache.Get(ctx, documentID); err == nil {
		c.logger.Debug("classification cache hit",
			"document_id", documentID,
			"tier", cached.Tier)
		c.recordOTel(ctx, documentID, cached, outcomeCache, c.now().Sub(start))
		return cached, nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		c.logger.Warn("classification cache lookup failed",
			"document_id", documentID,
			"error", err)
	}

	doc, err := c.store.Get(ctx, documentID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, sdkerr.NewNotFoundError("classify.Classify",
				fmt.Errorf("%w: %s", sdkerr.ErrDocumentNotFound, documentID))
		}
		c.breaker.RecordFailure()
		result := fallbackResult(fmt.Sprintf("document store error: %v", err), c.now())
		c.logger.Warn("document descriptor load failed",
			"document_id", documentID,
			"error", err)
		c.recordOTel(ctx, documentID, result, outcomeFallback, c.now().Sub(start))
		return result, nil
	}

	if !c.breaker.Allow() {
		result := &evidence.Result{
			Tier:         evidence.TierSelfDeclared,
			Confidence:   0,
			Reason:       reasonBreakerOpen,
			ClassifiedAt: c.now(),
		}
		c.logger.Info("classification bypassed",
			"document_id", documentID,
			"breaker_state", c.breaker.State())
		c.recordOTel(ctx, documentID, result, outcomeBreakerOpen, c.now().Sub(start))
		return result, nil
	}

	content, err := c.fetcher.Fetch(ctx, doc.ContentLocator)
	if err != nil {
		c.breaker.RecordFailure()
		result := fallbackResult(fmt.Sprintf("content fetch error: %v", err), c.now())
		c.logger.Warn("content fetch failed",
			"document_id", documentID,
			"locator", doc.ContentLocator,
			"error", err)
		c.recordOTel(ctx, documentID, result, outcomeFallback, c.now().Sub(start))
		return result, nil
	}

	result, outcome := c.strategy.classify(ctx, documentID, doc.Filename, content)

	if err := c.store.UpdateClassification(ctx, documentID, *result); err != nil {
		c.logger.Warn("failed to persist classification",
			"document_id", documentID,
			"error", err)
	}
	if err := c.cache.Set(ctx, documentID, *result); err != nil {
		c.logger.Warn("failed to cache classification",
			"document_id", documentID,
			"error", err)
	}

	c.logger.Info("document classified",
		"document_id", documentID,
		"tier", result.Tier,
		"confidence", result.Confidence,
		"outcome", outcome)
	c.recordOTel(ctx, documentID, result, outcome, c.now().Sub(start))
	return result, nil
}

// strategy is the content classification behavior, chosen once during
// construction rather than branched on per call.
type strategy interface {
	classify(ctx context.Context, documentID, filename, content string) (*evidence.Result, string)
}

// heuristicStrategy classifies purely from the filename and content rules.
type heuristicStrategy struct {
	c *Classifier
}

func (s heuristicStrategy) classify(_ context.Context, _, filename, content string) (*evidence.Result, string) {
	result := evidence.Classify(filename, content)
	s.c.breaker.RecordSuccess()
	return &result, outcomeHeuristic
}

// aiStrategy attempts AI classification and falls back to the heuristic
// rules, recording the attempt's outcome on the circuit breaker.
type aiStrategy struct {
	c *Classifier
}

func (s aiStrategy) classify(ctx context.Context, documentID, filename, content string) (*evidence.Result, string) {
	result, err := s.c.classifyWithAI(ctx, filename, content)
	if err == nil {
		s.c.breaker.RecordSuccess()
		return result, outcomeAI
	}
	s.c.breaker.RecordFailure()
	s.c.logger.Warn("AI classification failed, falling back to heuristics",
		"document_id", documentID,
		"error", err)
	heuristic := evidence.Classify(filename, content)
	return &heuristic, outcomeHeuristic
}

// classifyWithAI submits the classification prompt and strictly parses the
// response. Any transport error, truncated generation, or parse failure is
// returned as an error for the caller to treat as an AI failure.
func (c *Classifier) classifyWithAI(ctx context.Context, filename, content string) (*evidence.Result, error) {
	aiCtx, cancel := context.WithTimeout(ctx, c.aiTimeout)
	defer cancel()

	req := buildRequest(filename, content, c.model)
	resp, err := c.ai.Complete(aiCtx, req)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	if c.tracker != nil {
		model := resp.Model
		if model == "" {
			model = c.model
		}
		c.tracker.Add(model, resp.Usage)
	}

	if !resp.HasContent() {
		return nil, fmt.Errorf("empty completion response")
	}

	result, err := parseResponse(resp.Content, c.now())
	if err != nil {
		return nil, fmt.Errorf("response parse failed: %w", err)
	}
	return result, nil
}

// Invalidate removes the cached result for a document, forcing the next
// Classify call to run the full pipeline.
func (c *Classifier) Invalidate(ctx context.Context, documentID string) error {
	return c.cache.Invalidate(ctx, documentID)
}

// BreakerState exposes the circuit breaker state for monitoring.
func (c *Classifier) BreakerState() breaker.State {
	return c.breaker.State()
}

// fallbackResult is the deterministic result returned when classification
// cannot run at all.
func fallbackResult(detail string, at time.Time) *evidence.Result {
	return &evidence.Result{
		Tier:         evidence.TierSelfDeclared,
		Confidence:   0,
		Reason:       fmt.Sprintf("Classification failed - defaulting to self-declared tier. %s", detail),
		ClassifiedAt: at,
	}
}
