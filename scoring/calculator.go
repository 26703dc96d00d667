package scoring

import (
	"math"
	"strings"

	"github.com/veracomply/sdk/assessment"
)

// Sub-score baselines applied when an input list is empty. An assessment
// with no gaps is good but unproven (85, not 100); one with no identified
// risks gets a cautious 75.
const (
	noGapsComplianceScore = 85
	noRisksRiskScore      = 75
	maturityBaseline      = 50
	noRisksAvgControl     = 70
	noDocGapsDocScore     = 85
)

// maturityKeywords mark gaps that indicate process or documentation
// immaturity; maturityScore rewards their absence.
var maturityKeywords = []string{"documentation", "process"}

// documentationKeywords mark gaps that count against the documentation
// sub-score.
var documentationKeywords = []string{"documentation", "policy", "procedure"}

// documentationWeights is the severity weighting used by the documentation
// sub-score. Softer than the compliance weighting: a documentation gap is
// capped at 20 points of drag.
var documentationWeights = map[assessment.Severity]float64{
	assessment.SeverityCritical: 20,
	assessment.SeverityHigh:     12,
	assessment.SeverityMedium:   6,
	assessment.SeverityLow:      2,
}

// defaultDocumentationWeight is applied for unknown severity values.
const defaultDocumentationWeight = 6

// Calculator computes compliance scores from assessment output. It is
// stateless apart from its weights and safe for concurrent use.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator using the given combination weights.
func NewCalculator(weights Weights) *Calculator {
	return &Calculator{weights: weights}
}

// Weights returns the combination weights the calculator was built with.
func (c *Calculator) Weights() Weights {
	return c.weights
}

// OverallScore computes the overall compliance score in [0,100].
//
// An empty assessment (no gaps and no risks) scores exactly 0: nothing was
// assessed, so nothing is attested. Otherwise the four sub-scores are
// combined linearly with the calculator's weights and clamped to [0,100].
func (c *Calculator) OverallScore(gaps []assessment.Gap, risks []assessment.Risk) int {
	if len(gaps) == 0 && len(risks) == 0 {
		return 0
	}

	combined := float64(c.ComplianceScore(gaps))*c.weights.Compliance +
		float64(c.RiskScore(risks))*c.weights.Risk +
		float64(c.MaturityScore(gaps, risks))*c.weights.Maturity +
		float64(c.DocumentationScore(gaps))*c.weights.Documentation

	return clampScore(int(math.Round(combined)))
}

// ComplianceScore computes the gap-driven sub-score.
//
// Each gap drags the score down by its severity weight scaled by its
// effective size; the total drag is normalized against a worst case of one
// critical full gap per gap (|gaps| x 25). Absent gap sizes count as full
// gaps.
func (c *Calculator) ComplianceScore(gaps []assessment.Gap) int {
	if len(gaps) == 0 {
		return noGapsComplianceScore
	}

	var total float64
	for _, g := range gaps {
		total += g.Severity.Weight() * (g.EffectiveSize() / 100)
	}

	ratio := math.Min(1, total/(float64(len(gaps))*25))
	return 100 - int(math.Round(100*ratio))
}

// RiskScore computes the risk-driven sub-score.
//
// Each risk contributes its level weight scaled by likelihood, impact, and
// the share of exposure its controls do not cover. A risk with no control
// assessment counts as fully unmitigated.
func (c *Calculator) RiskScore(risks []assessment.Risk) int {
	if len(risks) == 0 {
		return noRisksRiskScore
	}

	var total float64
	for _, r := range risks {
		total += r.Level.Weight() *
			r.Likelihood.Multiplier() *
			r.Impact.Multiplier() *
			(1 - r.EffectiveControl()/100)
	}

	ratio := math.Min(1, total/(float64(len(risks))*25))
	return 100 - int(math.Round(100*ratio))
}

// MaturityScore estimates program maturity from indirect signals: how few
// process and documentation gaps exist, how effective controls are on
// average, how many critical gaps remain, and how broadly risk has been
// assessed across categories.
func (c *Calculator) MaturityScore(gaps []assessment.Gap, risks []assessment.Risk) int {
	score := maturityBaseline

	processGaps := 0
	criticalGaps := 0
	for _, g := range gaps {
		if gapMatchesKeywords(g, maturityKeywords) {
			processGaps++
		}
		if g.Severity == assessment.SeverityCritical {
			criticalGaps++
		}
	}

	switch {
	case processGaps == 0:
		score += 15
	case processGaps < 3:
		score += 8
	}

	avgControl := float64(noRisksAvgControl)
	if len(risks) > 0 {
		var sum float64
		for _, r := range risks {
			sum += r.EffectiveControl()
		}
		avgControl = sum / float64(len(risks))
	}
	score += int(math.Round((avgControl - 50) / 5))

	switch {
	case criticalGaps == 0:
		score += 10
	case criticalGaps <= 2:
		score += 5
	default:
		score -= 10
	}

	categories := make(map[assessment.Category]bool)
	for _, r := range risks {
		categories[r.Category] = true
	}
	switch {
	case len(categories) >= 4:
		score += 10
	case len(categories) >= 2:
		score += 5
	}

	return clampScore(score)
}

// DocumentationScore computes the documentation quality sub-score from the
// gaps whose category, title, or description mention documentation, policy,
// or procedure. No matching gaps yields the 85 baseline.
func (c *Calculator) DocumentationScore(gaps []assessment.Gap) int {
	var matching []assessment.Gap
	for _, g := range gaps {
		if gapMatchesKeywords(g, documentationKeywords) {
			matching = append(matching, g)
		}
	}
	if len(matching) == 0 {
		return noDocGapsDocScore
	}

	var total float64
	for _, g := range matching {
		total += documentationWeight(g.Severity)
	}

	return 100 - int(math.Round(100*total/(float64(len(matching))*20)))
}

func documentationWeight(s assessment.Severity) float64 {
	if w, ok := documentationWeights[s]; ok {
		return w
	}
	return defaultDocumentationWeight
}

// gapMatchesKeywords reports whether any keyword appears in the gap's
// category, title, or description. Matching is case-insensitive.
func gapMatchesKeywords(g assessment.Gap, keywords []string) bool {
	haystack := strings.ToLower(string(g.Category) + " " + g.Title + " " + g.Description)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// clampScore bounds a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
