package scoring

import (
	"fmt"

	"github.com/veracomply/sdk/assessment"
)

// Score level thresholds for the qualitative rating.
const (
	LevelStrong   = "Strong"
	LevelGood     = "Good"
	LevelFair     = "Fair"
	LevelPoor     = "Poor"
	LevelCritical = "Critical"
)

// Selection limits for the narrative lists.
const (
	maxStrengths    = 3
	maxWeaknesses   = 3
	maxGapPriority  = 3
	maxRiskPriority = 2
	maxPriorities   = 5
)

// strengthThreshold and weaknessThreshold bound which category scores count
// as strengths (>= 70) or weaknesses (< 50).
const (
	strengthThreshold = 70
	weaknessThreshold = 50
)

// Insights is the narrative companion to a score: a qualitative level plus
// short lists of strengths, weaknesses, and remediation priorities for
// reporting.
type Insights struct {
	// Level is the qualitative rating of the overall score.
	Level string `json:"level"`

	// Strengths lists up to three categories scoring at or above 70.
	Strengths []string `json:"strengths"`

	// Weaknesses lists up to three categories scoring below 50.
	Weaknesses []string `json:"weaknesses"`

	// Priorities lists up to five remediation priorities drawn from
	// critical and high severity gaps and risks.
	Priorities []string `json:"priorities"`
}

// GenerateInsights builds the narrative summary for a scored assessment.
func (c *Calculator) GenerateInsights(overall int, categoryScores map[assessment.Category]int, gaps []assessment.Gap, risks []assessment.Risk) Insights {
	insights := Insights{Level: ScoreLevel(overall)}

	for _, category := range assessment.AllCategories() {
		score, ok := categoryScores[category]
		if !ok {
			continue
		}
		if score >= strengthThreshold && len(insights.Strengths) < maxStrengths {
			insights.Strengths = append(insights.Strengths,
				fmt.Sprintf("%s (%d)", category.DisplayName(), score))
		}
		if score < weaknessThreshold && len(insights.Weaknesses) < maxWeaknesses {
			insights.Weaknesses = append(insights.Weaknesses,
				fmt.Sprintf("%s (%d)", category.DisplayName(), score))
		}
	}

	// An empty assessment has nothing to praise or fault; report the fact
	// of completion as the sole strength.
	if len(gaps) == 0 && len(risks) == 0 && len(insights.Strengths) == 0 {
		insights.Strengths = append(insights.Strengths, "Comprehensive assessment completed")
	}

	gapCount := 0
	for _, g := range gaps {
		if gapCount >= maxGapPriority {
			break
		}
		if g.Severity == assessment.SeverityCritical || g.Severity == assessment.SeverityHigh {
			insights.Priorities = append(insights.Priorities,
				fmt.Sprintf("Remediate %s gap: %s", g.Severity, g.Title))
			gapCount++
		}
	}

	riskCount := 0
	for _, r := range risks {
		if riskCount >= maxRiskPriority {
			break
		}
		if r.Level == assessment.SeverityCritical || r.Level == assessment.SeverityHigh {
			insights.Priorities = append(insights.Priorities,
				fmt.Sprintf("Mitigate %s risk: %s", r.Level, r.Title))
			riskCount++
		}
	}

	if len(insights.Priorities) > maxPriorities {
		insights.Priorities = insights.Priorities[:maxPriorities]
	}

	return insights
}

// ScoreLevel maps an overall score to its qualitative rating.
func ScoreLevel(score int) string {
	switch {
	case score >= 80:
		return LevelStrong
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	case score >= 20:
		return LevelPoor
	default:
		return LevelCritical
	}
}
