package sdk

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/veracomply/sdk/assessment"
	"github.com/veracomply/sdk/breaker"
	"github.com/veracomply/sdk/cache"
	"github.com/veracomply/sdk/classify"
	"github.com/veracomply/sdk/config"
	"github.com/veracomply/sdk/docstore"
	"github.com/veracomply/sdk/evidence"
	"github.com/veracomply/sdk/health"
	"github.com/veracomply/sdk/llm"
	"github.com/veracomply/sdk/scoring"
	"github.com/veracomply/sdk/sdkerr"
)

// Platform is the top-level entry point of the SDK. It assembles the
// scoring engine and the evidence classification pipeline from a single
// configuration and owns the lifecycle of the backends it creates.
//
// Construct with NewPlatform:
//
//	platform, err := sdk.NewPlatform(store, fetcher,
//	    sdk.WithConfig("/etc/veracomply"),
//	    sdk.WithAIClient(client),
//	    sdk.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer platform.Shutdown(context.Background())
type Platform struct {
	cfg        *config.Config
	calculator *scoring.Calculator
	classifier *classify.Classifier
	breaker    *breaker.Breaker
	cache      cache.Cache
	store      docstore.Store
	logger     *slog.Logger

	// closers holds backends the platform created itself and must close
	// on shutdown, in reverse creation order.
	closers []io.Closer
}

// PlatformOption configures a Platform.
type PlatformOption func(*platformConfig)

// platformConfig collects construction inputs before wiring.
type platformConfig struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	ai         llm.Client
	cache      cache.Cache
	tracker    llm.TokenTracker
	otel       *classify.OTelOptions
}

// WithConfig sets the path of the veracomply.yaml file (or a directory
// containing one) to load settings from.
func WithConfig(path string) PlatformOption {
	return func(pc *platformConfig) {
		pc.configPath = path
	}
}

// WithConfigStruct supplies an already-loaded configuration, taking
// precedence over WithConfig.
func WithConfigStruct(cfg *config.Config) PlatformOption {
	return func(pc *platformConfig) {
		pc.cfg = cfg
	}
}

// WithLogger sets the structured logger used by the platform and its
// components. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) PlatformOption {
	return func(pc *platformConfig) {
		pc.logger = logger
	}
}

// WithAIClient sets the AI classification client. Without one,
// classification is purely heuristic.
func WithAIClient(client llm.Client) PlatformOption {
	return func(pc *platformConfig) {
		pc.ai = client
	}
}

// WithCache replaces the cache backend the configuration would otherwise
// select. The platform does not close caches supplied this way.
func WithCache(c cache.Cache) PlatformOption {
	return func(pc *platformConfig) {
		pc.cache = c
	}
}

// WithTokenTracker records AI token usage per model.
func WithTokenTracker(t llm.TokenTracker) PlatformOption {
	return func(pc *platformConfig) {
		pc.tracker = t
	}
}

// WithOTel enables OpenTelemetry tracing and metrics for classification.
func WithOTel(opts classify.OTelOptions) PlatformOption {
	return func(pc *platformConfig) {
		pc.otel = &opts
	}
}

// NewPlatform wires a Platform over the given document store and content
// fetcher. A nil store is built from configuration: etcd when endpoints
// are set, in-memory otherwise. Configuration itself is optional; with no
// options the platform runs with default weights, an in-memory cache, and
// heuristic-only classification.
func NewPlatform(store docstore.Store, fetcher docstore.ContentFetcher, opts ...PlatformOption) (*Platform, error) {
	pc := &platformConfig{}
	for _, opt := range opts {
		opt(pc)
	}

	cfg := pc.cfg
	if cfg == nil && pc.configPath != "" {
		loaded, err := config.Load(pc.configPath)
		if err != nil {
			return nil, sdkerr.NewConfigurationError("sdk.NewPlatform",
				fmt.Errorf("%w: %v", sdkerr.ErrInvalidConfig, err))
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	logger := pc.logger
	if logger == nil {
		logger = slog.Default()
	}

	p := &Platform{
		cfg:        cfg,
		calculator: scoring.NewCalculator(cfg.Scoring.GetWeights()),
		logger:     logger,
	}

	if store == nil {
		built, err := p.buildStore()
		if err != nil {
			return nil, err
		}
		store = built
	}
	p.store = store

	p.breaker = breaker.New(
		breaker.WithFailureThreshold(cfg.Classify.GetFailureThreshold()),
		breaker.WithCoolDown(cfg.Classify.GetCoolDown()),
	)

	resultCache := pc.cache
	if resultCache == nil {
		built, err := p.buildCache()
		if err != nil {
			p.closeAll()
			return nil, err
		}
		resultCache = built
	}
	p.cache = resultCache

	classifierOpts := []classify.Option{
		classify.WithCache(resultCache),
		classify.WithBreaker(p.breaker),
		classify.WithLogger(logger),
		classify.WithAITimeout(cfg.Classify.GetAITimeout()),
	}
	if pc.ai != nil {
		classifierOpts = append(classifierOpts, classify.WithAI(pc.ai))
	}
	if cfg.Classify != nil && cfg.Classify.Model != "" {
		classifierOpts = append(classifierOpts, classify.WithModel(cfg.Classify.Model))
	}
	if pc.tracker != nil {
		classifierOpts = append(classifierOpts, classify.WithTokenTracker(pc.tracker))
	}
	if pc.otel != nil {
		classifierOpts = append(classifierOpts, classify.WithOTel(*pc.otel))
	}

	classifier, err := classify.New(store, fetcher, classifierOpts...)
	if err != nil {
		p.closeAll()
		return nil, err
	}
	p.classifier = classifier

	return p, nil
}

// buildCache selects the cache backend from configuration: Redis when a
// URL is set, in-memory otherwise.
func (p *Platform) buildCache() (cache.Cache, error) {
	cc := p.cfg.Cache
	if cc != nil && cc.RedisURL != "" {
		redisCache, err := cache.NewRedis(cache.RedisOptions{
			URL: cc.RedisURL,
			TTL: cc.GetTTL(),
		})
		if err != nil {
			return nil, sdkerr.NewConfigurationError("sdk.NewPlatform", err)
		}
		p.closers = append(p.closers, redisCache)
		return redisCache, nil
	}

	return cache.NewMemory(
		cache.WithTTL(cc.GetTTL()),
		cache.WithMaxEntries(cc.GetMaxEntries()),
	), nil
}

// buildStore selects the document store from configuration: etcd when
// endpoints are set, in-memory otherwise.
func (p *Platform) buildStore() (docstore.Store, error) {
	dc := p.cfg.Docstore
	if dc != nil && len(dc.EtcdEndpoints) > 0 {
		etcdStore, err := docstore.NewEtcd(context.Background(), docstore.EtcdConfig{
			Endpoints: dc.EtcdEndpoints,
			Namespace: dc.Namespace,
		})
		if err != nil {
			return nil, sdkerr.NewConfigurationError("sdk.NewPlatform", err)
		}
		p.closers = append(p.closers, etcdStore)
		return etcdStore, nil
	}
	return docstore.NewMemory(), nil
}

// Calculator returns the scoring engine.
func (p *Platform) Calculator() *scoring.Calculator {
	return p.calculator
}

// Classifier returns the classification pipeline.
func (p *Platform) Classifier() *classify.Classifier {
	return p.classifier
}

// Score computes the full scoring breakdown for an assessment's gaps and
// risks.
func (p *Platform) Score(gaps []assessment.Gap, risks []assessment.Risk) scoring.Breakdown {
	return p.calculator.Breakdown(gaps, risks)
}

// Insights derives strengths, weaknesses, and remediation priorities from
// an assessment's scores.
func (p *Platform) Insights(gaps []assessment.Gap, risks []assessment.Risk) scoring.Insights {
	breakdown := p.calculator.Breakdown(gaps, risks)
	return p.calculator.GenerateInsights(breakdown.Overall, breakdown.ByCategory, gaps, risks)
}

// ClassifyDocument runs the classification pipeline for a document ID.
func (p *Platform) ClassifyDocument(ctx context.Context, documentID string) (*evidence.Result, error) {
	return p.classifier.Classify(ctx, documentID)
}

// InvalidateClassification drops the cached result for a document so the
// next classification runs the full pipeline.
func (p *Platform) InvalidateClassification(ctx context.Context, documentID string) error {
	return p.classifier.Invalidate(ctx, documentID)
}

// Health reports the combined health of the platform's runtime components.
func (p *Platform) Health(ctx context.Context) health.Status {
	checks := []health.Status{
		health.BreakerCheck(p.breaker),
	}
	if pinger, ok := p.cache.(health.Pinger); ok {
		checks = append(checks, health.PingCheck(ctx, "result cache", pinger))
	}
	if pinger, ok := p.store.(health.Pinger); ok {
		checks = append(checks, health.PingCheck(ctx, "document store", pinger))
	}
	return health.Combine(checks...)
}

// Shutdown releases the backends the platform created. It is safe to call
// once; backends injected by the caller are left open.
func (p *Platform) Shutdown(_ context.Context) error {
	p.closeAll()
	return nil
}

func (p *Platform) closeAll() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		sdkerr.CloseWithLog(p.closers[i], p.logger, "platform backend")
	}
	p.closers = nil
}
