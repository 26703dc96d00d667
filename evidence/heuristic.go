package evidence

import (
	"regexp"
	"strings"
	"time"
)

// MaxScanLength bounds how much document content the heuristic classifier
// inspects. Structural markers appear early in real documents; scanning
// further adds cost without signal.
const MaxScanLength = 5000

// Heuristic confidence levels per tier. The heuristic is intentionally
// humble: even its strongest signal is reported well below certainty.
const (
	ConfidenceSystemGenerated = 0.7
	ConfidencePolicy          = 0.6
	ConfidenceSelfDeclared    = 0.5
)

// isoTimestampPattern matches ISO-8601 style timestamps (2024-01-15T10:30
// or 2024-01-15 10:30) that indicate machine-generated content.
var isoTimestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[t ]\d{2}:\d{2}`)

// structuredExtensions are file extensions of machine-produced exports.
var structuredExtensions = []string{".csv", ".json", ".xml", ".log"}

// systemMarkers are content markers left by generating systems.
var systemMarkers = []string{"generated on:", "timestamp:", "system id:"}

// policyMarkers are content markers typical of formal policy documents.
var policyMarkers = []string{"policy", "procedure", "version", "approval", "approved by", "effective date"}

// policyFilenameMarkers are filename fragments typical of policy documents.
var policyFilenameMarkers = []string{"policy", "procedure", "guideline"}

// approvalMarkers is the subset of policy markers that indicate sign-off.
var approvalMarkers = []string{"approval", "approved by", "signature"}

// versionMarkers is the subset of policy markers that indicate versioning.
var versionMarkers = []string{"version", "revision"}

// scanned holds the lower-cased, truncated view of a document that rules
// evaluate against.
type scanned struct {
	filename string
	content  string
}

// rule is one entry in the ordered classification table. The first rule
// whose predicate matches decides the tier.
type rule struct {
	match      func(scanned) bool
	tier       Tier
	confidence float64
	reason     string
}

// ruleTable is evaluated in fixed order: system-generated signals are
// checked before policy signals, so a policy-worded CSV export still
// classifies as system-generated.
var ruleTable = []rule{
	{
		match:      func(s scanned) bool { return hasStructuredExtension(s.filename) },
		tier:       TierSystemGenerated,
		confidence: ConfidenceSystemGenerated,
		reason:     "Structured data file extension indicates system-generated evidence",
	},
	{
		match:      func(s scanned) bool { return isoTimestampPattern.MatchString(s.content) },
		tier:       TierSystemGenerated,
		confidence: ConfidenceSystemGenerated,
		reason:     "Machine timestamps indicate system-generated evidence",
	},
	{
		match:      func(s scanned) bool { return containsAny(s.content, systemMarkers) },
		tier:       TierSystemGenerated,
		confidence: ConfidenceSystemGenerated,
		reason:     "System generation markers found in content",
	},
	{
		match: func(s scanned) bool {
			return containsAny(s.content, policyMarkers) || containsAny(s.filename, policyFilenameMarkers)
		},
		tier:       TierPolicy,
		confidence: ConfidencePolicy,
		reason:     "Policy or procedure markers indicate a formal document",
	},
}

// Classify assigns a tier to a document from its filename and content
// alone. It is a pure function with no I/O and always returns a result;
// a document matching no rule is self-declared evidence.
func Classify(filename, content string) Result {
	s := scanned{
		filename: strings.ToLower(filename),
		content:  strings.ToLower(truncate(content, MaxScanLength)),
	}

	result := Result{
		Tier:         TierSelfDeclared,
		Confidence:   ConfidenceSelfDeclared,
		Reason:       "No structural markers found - treating as self-declared evidence",
		Indicators:   observeIndicators(s),
		ClassifiedAt: time.Now(),
	}

	for _, r := range ruleTable {
		if r.match(s) {
			result.Tier = r.tier
			result.Confidence = r.confidence
			result.Reason = r.reason
			break
		}
	}

	return result
}

// observeIndicators records every structural signal present, independent of
// which rule ultimately decides the tier.
func observeIndicators(s scanned) Indicators {
	return Indicators{
		HasTimestamps:         isoTimestampPattern.MatchString(s.content) || containsAny(s.content, []string{"timestamp:"}),
		HasVersionControl:     containsAny(s.content, versionMarkers),
		HasApprovalSignatures: containsAny(s.content, approvalMarkers),
		IsStructuredData:      hasStructuredExtension(s.filename),
	}
}

func hasStructuredExtension(filename string) bool {
	for _, ext := range structuredExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
