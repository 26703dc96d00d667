// Package sdk provides the core library of the Veracomply compliance
// assessment platform.
//
// The SDK implements the two algorithmic centers of the platform: the
// scoring engine, which turns a questionnaire's identified gaps and risks
// into a normalized compliance score, and the evidence classification
// pipeline, which assigns uploaded documents an evidentiary trust tier.
// Everything around them (HTTP routing, persistence engines, billing,
// document parsing) is consumed through narrow interfaces and is out of
// scope for this module.
//
// # Core Concepts
//
//   - Gaps and Risks: the normalized output of a compliance assessment,
//     defined in the assessment package
//   - Scoring: pure, deterministic score math in the scoring package
//   - Evidence tiers: the trust level of an uploaded document (self-declared,
//     policy document, system-generated), defined in the evidence package
//   - Classification: the resilience pipeline in the classify package,
//     combining a TTL cache, a circuit breaker, and an AI-then-heuristic
//     two-stage classifier
//
// # Architecture
//
// Packages are layered leaves-first:
//
//   - sdkerr: the shared error taxonomy
//   - assessment: domain value types and enums
//   - scoring, policy: pure consumers of assessment values
//   - evidence, breaker, cache, docstore, llm: classification building blocks
//   - classify: orchestration of the building blocks
//   - config: YAML configuration for deployments
//   - sdk (this package): the Platform facade tying it all together
//
// # Getting Started
//
// Scoring is a pure function call:
//
//	calc := scoring.NewCalculator(scoring.DefaultWeights())
//	score := calc.OverallScore(gaps, risks)
//
// Classification is built once and injected where documents are processed:
//
//	classifier, err := classify.New(store, fetcher,
//		classify.WithAI(llmClient),
//		classify.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	result, err := classifier.Classify(ctx, docID)
//
// Deployments that want both engines wired from one YAML file use the
// Platform facade instead:
//
//	platform, err := sdk.NewPlatform(store, fetcher, sdk.WithConfig("/etc/veracomply"))
//
// # Error Handling
//
// The SDK uses structured errors (sdkerr.Error) with operation and kind
// metadata, compatible with errors.Is and errors.As. Classification
// deliberately never surfaces transient failures: the only error a caller
// of Classify sees is one wrapping sdkerr.ErrDocumentNotFound.
package sdk
