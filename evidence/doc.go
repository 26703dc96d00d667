// Package evidence defines evidentiary trust tiers for uploaded documents
// and the heuristic classifier that assigns them.
//
// A document's tier expresses how much its contents should be trusted when
// weighing assessment evidence: self-declared statements rank lowest,
// formal policy documents rank higher, and system-generated artifacts
// (exports, logs, reports with machine timestamps) rank highest.
//
// The heuristic classifier is a pure function over the document's filename
// and content. It evaluates an ordered rule table; the first matching rule
// wins, so system-generated markers always beat policy markers even when a
// document carries both.
package evidence
