package evidence

import "time"

// Indicators captures the structural signals observed while classifying a
// document. They explain why a tier was assigned and are persisted with
// the result.
type Indicators struct {
	// HasTimestamps is true when machine-generated timestamps were found.
	HasTimestamps bool `json:"has_timestamps"`

	// HasVersionControl is true when version markers were found.
	HasVersionControl bool `json:"has_version_control"`

	// HasApprovalSignatures is true when approval markers were found.
	HasApprovalSignatures bool `json:"has_approval_signatures"`

	// IsStructuredData is true when the document is structured machine
	// output (CSV, JSON, XML, log files).
	IsStructuredData bool `json:"is_structured_data"`
}

// Result is the outcome of classifying one document. Results are value
// objects created fresh per classification call and owned by the caller.
type Result struct {
	// Tier is the assigned evidentiary trust tier.
	Tier Tier `json:"tier"`

	// Confidence is the classifier's confidence in the tier, 0.0 to 1.0.
	Confidence float64 `json:"confidence"`

	// Reason is a human-readable explanation of the assignment.
	Reason string `json:"reason"`

	// Indicators are the structural signals backing the assignment.
	Indicators Indicators `json:"indicators"`

	// ClassifiedAt records when the classification was produced.
	ClassifiedAt time.Time `json:"classified_at"`
}
