// Package scoring implements the deterministic compliance scoring engine.
//
// The engine transforms the gaps and risks identified by an assessment into
// a normalized 0-100 score, per-category scores, a composite risk index,
// trend analysis over historical scores, and narrative insights. Every
// operation is a pure function of its inputs: no I/O, no randomness, no
// shared mutable state, safe for any number of concurrent callers.
//
// Edge-case policy is deliberate and load-bearing:
//
//   - A gap whose size was not assessed counts as a full gap (fail closed).
//   - A risk with no control assessment counts as unmitigated.
//   - Unknown enum values degrade to documented default weights, never errors.
//   - An empty assessment scores exactly 0 overall and neutral 50 per category.
package scoring
