package classify

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/veracomply/sdk/evidence"
)

// Pipeline outcomes recorded as the "outcome" attribute on spans and
// metrics.
const (
	outcomeCache       = "cache"
	outcomeAI          = "ai"
	outcomeHeuristic   = "heuristic"
	outcomeFallback    = "fallback"
	outcomeBreakerOpen = "breaker_open"
)

// otelMetrics holds the OpenTelemetry metric instruments for the
// classification pipeline. They are created once during construction and
// reused for all classifications.
type otelMetrics struct {
	// confidenceHistogram records classification confidence (0.0 to 1.0)
	confidenceHistogram metric.Float64Histogram

	// durationHistogram records classification duration in milliseconds
	durationHistogram metric.Float64Histogram

	// countCounter increments for each classification performed
	countCounter metric.Int64Counter
}

// initOTelMetrics creates all metric instruments. Called once from New when
// a MeterProvider is configured.
func (c *Classifier) initOTelMetrics() (*otelMetrics, error) {
	if c.otelMeter == nil {
		return nil, nil
	}

	metrics := &otelMetrics{}
	var err error

	metrics.confidenceHistogram, err = c.otelMeter.Float64Histogram(
		"classify.confidence",
		metric.WithDescription("Classification confidence from 0.0 (fallback) to 1.0 (certain)"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create confidence histogram: %w", err)
	}

	metrics.durationHistogram, err = c.otelMeter.Float64Histogram(
		"classify.duration",
		metric.WithDescription("Classification duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	metrics.countCounter, err = c.otelMeter.Int64Counter(
		"classify.count",
		metric.WithDescription("Number of classifications performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create count counter: %w", err)
	}

	return metrics, nil
}

// recordOTel creates a span and records metrics for one classification.
// If OTel is not configured this returns silently; observability never
// breaks the classification flow.
func (c *Classifier) recordOTel(ctx context.Context, documentID string, result *evidence.Result, outcome string, duration time.Duration) {
	if c.otelTracer == nil && c.otelMeter == nil {
		return
	}

	if c.otelTracer != nil {
		var span trace.Span
		ctx, span = c.otelTracer.Start(ctx, "classify.document")
		defer span.End()

		span.SetAttributes(
			attribute.String("document.id", documentID),
			attribute.String("classify.tier", result.Tier.String()),
			attribute.Float64("classify.confidence", result.Confidence),
			attribute.String("classify.outcome", outcome),
			attribute.Float64("classify.duration_ms", float64(duration.Milliseconds())),
		)

		if outcome == outcomeFallback || outcome == outcomeBreakerOpen {
			span.SetStatus(codes.Error, result.Reason)
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("Classified as %s via %s", result.Tier, outcome))
		}
	}

	if c.otelMeter != nil && c.otelMetrics != nil {
		opts := metric.WithAttributes(
			attribute.String("classify.tier", result.Tier.String()),
			attribute.String("classify.outcome", outcome),
		)

		if c.otelMetrics.confidenceHistogram != nil {
			c.otelMetrics.confidenceHistogram.Record(ctx, result.Confidence, opts)
		}
		if c.otelMetrics.durationHistogram != nil {
			c.otelMetrics.durationHistogram.Record(ctx, float64(duration.Milliseconds()), opts)
		}
		if c.otelMetrics.countCounter != nil {
			c.otelMetrics.countCounter.Add(ctx, 1, opts)
		}
	}
}
