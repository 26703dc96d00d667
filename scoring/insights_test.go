package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veracomply/sdk/assessment"
)

func TestScoreLevel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, LevelStrong},
		{80, LevelStrong},
		{79, LevelGood},
		{60, LevelGood},
		{59, LevelFair},
		{40, LevelFair},
		{39, LevelPoor},
		{20, LevelPoor},
		{19, LevelCritical},
		{0, LevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreLevel(tt.score), "score %d", tt.score)
	}
}

// TestGenerateInsights_EmptyAssessment covers the empty-input narrative: a
// completed assessment with nothing found reports completion as its sole
// strength.
func TestGenerateInsights_EmptyAssessment(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	scores := calc.CategoryScores(nil, nil)

	insights := calc.GenerateInsights(calc.OverallScore(nil, nil), scores, nil, nil)

	assert.Equal(t, LevelCritical, insights.Level)
	assert.Equal(t, []string{"Comprehensive assessment completed"}, insights.Strengths)
	assert.Empty(t, insights.Weaknesses)
	assert.Empty(t, insights.Priorities)
}

func TestGenerateInsights_StrengthsAndWeaknesses(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	scores := map[assessment.Category]int{
		assessment.CategoryGeographic:   90,
		assessment.CategoryTransaction:  85,
		assessment.CategoryGovernance:   75,
		assessment.CategoryOperational:  70,
		assessment.CategoryRegulatory:   30,
		assessment.CategoryReputational: 45,
	}
	gaps := []assessment.Gap{
		newGap("minor gap", assessment.CategoryRegulatory, assessment.SeverityLow),
	}

	insights := calc.GenerateInsights(65, scores, gaps, nil)

	// Four categories qualify but only three are listed.
	assert.Len(t, insights.Strengths, 3)
	assert.Contains(t, insights.Strengths[0], "Geographic")
	assert.Equal(t, []string{"Regulatory (30)", "Reputational (45)"}, insights.Weaknesses)
	// Low severity gaps are not priorities.
	assert.Empty(t, insights.Priorities)
}

func TestGenerateInsights_PriorityLimits(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	var gaps []assessment.Gap
	for _, title := range []string{"gap 1", "gap 2", "gap 3", "gap 4"} {
		gaps = append(gaps, newGap(title, assessment.CategoryRegulatory, assessment.SeverityCritical))
	}
	var risks []assessment.Risk
	for _, title := range []string{"risk 1", "risk 2", "risk 3"} {
		risks = append(risks, newRisk(title, assessment.CategoryOperational, assessment.SeverityHigh, assessment.LikelihoodLikely, assessment.ImpactMajor))
	}

	insights := calc.GenerateInsights(20, calc.CategoryScores(gaps, risks), gaps, risks)

	// 3 gap priorities + 2 risk priorities, capped at 5 total.
	assert.Len(t, insights.Priorities, 5)
	assert.Contains(t, insights.Priorities[0], "gap 1")
	assert.Contains(t, insights.Priorities[3], "risk 1")
	assert.Contains(t, insights.Priorities[4], "risk 2")
}

func TestGenerateInsights_MixedSeverityPriorities(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	gaps := []assessment.Gap{
		newGap("low gap", assessment.CategoryOperational, assessment.SeverityLow),
		newGap("critical gap", assessment.CategoryRegulatory, assessment.SeverityCritical),
		newGap("medium gap", assessment.CategoryGovernance, assessment.SeverityMedium),
		newGap("high gap", assessment.CategoryTransaction, assessment.SeverityHigh),
	}

	insights := calc.GenerateInsights(40, calc.CategoryScores(gaps, nil), gaps, nil)

	assert.Len(t, insights.Priorities, 2)
	assert.Contains(t, insights.Priorities[0], "critical gap")
	assert.Contains(t, insights.Priorities[1], "high gap")
}
