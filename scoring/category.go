package scoring

import (
	"math"

	"github.com/veracomply/sdk/assessment"
)

// neutralCategoryScore is assigned to a category with no gaps and no risks:
// no signal either way.
const neutralCategoryScore = 50

// categoryScale maps severity levels to the 0-100 drag scale used by
// per-category scoring.
var categoryScale = map[assessment.Severity]float64{
	assessment.SeverityCritical: 100,
	assessment.SeverityHigh:     75,
	assessment.SeverityMedium:   50,
	assessment.SeverityLow:      25,
}

// defaultCategoryScale is applied for unknown severity values.
const defaultCategoryScale = 50

// Breakdown is the complete scoring output for one assessment.
type Breakdown struct {
	// Overall is the combined compliance score in [0,100].
	Overall int `json:"overall"`

	// ByCategory holds the per-category scores, always covering all six
	// categories.
	ByCategory map[assessment.Category]int `json:"by_category"`

	// CompositeIndex blends the overall score with the category-weighted
	// average as a secondary risk indicator.
	CompositeIndex int `json:"composite_index"`
}

// Breakdown computes the overall score, per-category scores, and composite
// risk index in one pass.
func (c *Calculator) Breakdown(gaps []assessment.Gap, risks []assessment.Risk) Breakdown {
	overall := c.OverallScore(gaps, risks)
	byCategory := c.CategoryScores(gaps, risks)
	return Breakdown{
		Overall:        overall,
		ByCategory:     byCategory,
		CompositeIndex: c.CompositeRiskIndex(overall, byCategory),
	}
}

// CategoryScores computes a score for each of the six risk categories.
//
// A category with no mapped gaps or risks scores a neutral 50. Otherwise
// its risk items and gap items are scored on the inverted severity scale
// (100 - weight), discounted by control effectiveness and gap size
// respectively, and combined as a count-weighted average.
func (c *Calculator) CategoryScores(gaps []assessment.Gap, risks []assessment.Risk) map[assessment.Category]int {
	scores := make(map[assessment.Category]int, len(assessment.AllCategories()))

	for _, category := range assessment.AllCategories() {
		var catGaps []assessment.Gap
		for _, g := range gaps {
			if g.Category == category {
				catGaps = append(catGaps, g)
			}
		}
		var catRisks []assessment.Risk
		for _, r := range risks {
			if r.Category == category {
				catRisks = append(catRisks, r)
			}
		}

		if len(catGaps) == 0 && len(catRisks) == 0 {
			scores[category] = neutralCategoryScore
			continue
		}

		var weightedSum float64
		if len(catRisks) > 0 {
			weightedSum += riskSubScore(catRisks) * float64(len(catRisks))
		}
		if len(catGaps) > 0 {
			weightedSum += gapSubScore(catGaps) * float64(len(catGaps))
		}

		combined := weightedSum / float64(len(catRisks)+len(catGaps))
		scores[category] = clampScore(int(math.Round(combined)))
	}

	return scores
}

// riskSubScore averages 100 minus each risk's severity-scale weight,
// discounted by how much of the exposure its controls cover.
func riskSubScore(risks []assessment.Risk) float64 {
	var sum float64
	for _, r := range risks {
		weight := severityScale(r.Level) * (1 - r.EffectiveControl()/100)
		sum += 100 - weight
	}
	return sum / float64(len(risks))
}

// gapSubScore averages 100 minus each gap's severity-scale weight, scaled
// by the gap's effective size. Absent sizes count as full gaps.
func gapSubScore(gaps []assessment.Gap) float64 {
	var sum float64
	for _, g := range gaps {
		weight := severityScale(g.Severity) * (g.EffectiveSize() / 100)
		sum += 100 - weight
	}
	return sum / float64(len(gaps))
}

func severityScale(s assessment.Severity) float64 {
	if w, ok := categoryScale[s]; ok {
		return w
	}
	return defaultCategoryScale
}

// CompositeRiskIndex blends the overall score (60%) with the
// category-weighted average (40%) using the default category weights.
func (c *Calculator) CompositeRiskIndex(overall int, categoryScores map[assessment.Category]int) int {
	return c.CompositeRiskIndexWeighted(overall, categoryScores, DefaultCategoryWeights())
}

// CompositeRiskIndexWeighted is CompositeRiskIndex with caller-supplied
// category weights. Categories missing from categoryScores are skipped.
func (c *Calculator) CompositeRiskIndexWeighted(overall int, categoryScores map[assessment.Category]int, weights map[assessment.Category]float64) int {
	var weighted float64
	for category, weight := range weights {
		score, ok := categoryScores[category]
		if !ok {
			continue
		}
		weighted += float64(score) * weight
	}
	return int(math.Round(0.6*float64(overall) + 0.4*weighted))
}
