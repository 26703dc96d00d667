// Package classify orchestrates the evidence classification pipeline.
//
// A Classifier turns a document ID into an evidence tier by composing the
// platform's resilience primitives around an optional AI classifier:
//
//  1. Cache lookup: a live cached result short-circuits the pipeline.
//  2. Descriptor load from the document store. An unknown ID is the only
//     condition that surfaces as an error to the caller.
//  3. Circuit breaker gate: while the breaker is open, classification
//     resolves immediately to a zero-confidence self-declared result
//     without touching the content store or the AI provider.
//  4. Content fetch, AI classification with strict response parsing, and
//     heuristic fallback when AI is unconfigured or fails.
//  5. Persistence of the result to the document store and the cache, and
//     a success/failure record on the breaker.
//
// The pipeline is availability-over-accuracy: apart from the unknown-ID
// case it always returns a result, degrading to a low-confidence
// self-declared tier rather than failing.
//
//	classifier, err := classify.New(store, fetcher,
//	    classify.WithAI(client),
//	    classify.WithCache(cache.NewRedis(ctx, opts)),
//	    classify.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := classifier.Classify(ctx, documentID)
//
// All dependencies are injected at construction. The zero-dependency form
// (in-memory cache, fresh breaker, no AI) works out of the box and
// classifies purely heuristically.
package classify
