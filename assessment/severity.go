package assessment

import "fmt"

// Severity represents the severity level of a compliance gap or risk.
type Severity string

const (
	// SeverityCritical indicates a critical gap or risk requiring immediate attention.
	// Examples: Missing mandatory regulatory control, unmitigated sanctions exposure
	SeverityCritical Severity = "critical"

	// SeverityHigh indicates a high-impact gap or risk.
	// Examples: Incomplete KYC procedures, significant control weaknesses
	SeverityHigh Severity = "high"

	// SeverityMedium indicates a moderate gap or risk.
	// Examples: Outdated policy documents, partial control coverage
	SeverityMedium Severity = "medium"

	// SeverityLow indicates a minor gap or risk.
	// Examples: Formatting issues in documentation, cosmetic process deviations
	SeverityLow Severity = "low"
)

// severityWeights maps severity levels to numeric weights for gap and risk
// scoring. Higher weights indicate a larger drag on the score.
var severityWeights = map[Severity]float64{
	SeverityCritical: 25,
	SeverityHigh:     15,
	SeverityMedium:   8,
	SeverityLow:      3,
}

// defaultSeverityWeight is applied when a severity value is unknown.
// Malformed enum values degrade to a moderate weight rather than failing.
const defaultSeverityWeight = 5

// IsValid returns true if the severity level is valid.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Weight returns the numeric weight associated with the severity level.
// Unknown severity levels fall back to the documented default weight of 5.
func (s Severity) Weight() float64 {
	if weight, ok := severityWeights[s]; ok {
		return weight
	}
	return defaultSeverityWeight
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity level.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// CompareSeverity compares two severity levels.
// Returns:
//   - negative if s1 < s2
//   - zero if s1 == s2
//   - positive if s1 > s2
func CompareSeverity(s1, s2 Severity) int {
	w1 := s1.Weight()
	w2 := s2.Weight()
	if w1 < w2 {
		return -1
	}
	if w1 > w2 {
		return 1
	}
	return 0
}

// AllSeverities returns all valid severity levels in order from critical to low.
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}
