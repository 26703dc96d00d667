package scoring

import "math"

// Direction describes how a score is moving across assessments.
type Direction string

const (
	// DirectionImproving indicates the score rose by more than 2 points.
	DirectionImproving Direction = "improving"

	// DirectionDeclining indicates the score fell by more than 2 points.
	DirectionDeclining Direction = "declining"

	// DirectionStable indicates movement within the +/-2 point noise band.
	DirectionStable Direction = "stable"
)

// Trend summarizes score movement relative to historical scores.
type Trend struct {
	// Direction is the qualitative movement of the latest score.
	Direction Direction `json:"direction"`

	// ChangeRate is the absolute change as a percentage of the previous
	// score.
	ChangeRate float64 `json:"change_rate"`

	// Confidence is 0 with no history, 50 with a short history, and 80 or
	// 40 depending on how directionally consistent the history is.
	Confidence int `json:"confidence"`
}

// CalculateTrend compares the current score against the historical scores,
// oldest first. With no history the trend is stable at zero confidence.
func (c *Calculator) CalculateTrend(currentScore int, previousScores []int) Trend {
	if len(previousScores) == 0 {
		return Trend{Direction: DirectionStable, ChangeRate: 0, Confidence: 0}
	}

	lastScore := previousScores[len(previousScores)-1]
	delta := currentScore - lastScore

	direction := DirectionStable
	switch {
	case delta > 2:
		direction = DirectionImproving
	case delta < -2:
		direction = DirectionDeclining
	}

	var changeRate float64
	if lastScore != 0 {
		changeRate = math.Abs(float64(delta)) / float64(lastScore) * 100
	}

	confidence := 50
	if len(previousScores) >= 3 {
		confidence = consistencyConfidence(append(append([]int{}, previousScores...), currentScore))
	}

	return Trend{
		Direction:  direction,
		ChangeRate: changeRate,
		Confidence: confidence,
	}
}

// consistencyConfidence grades how directionally consistent a score series
// is: at most one reversal between successive deltas earns 80, anything
// choppier earns 40.
func consistencyConfidence(series []int) int {
	flips := 0
	prevSign := 0
	for i := 1; i < len(series); i++ {
		delta := series[i] - series[i-1]
		sign := 0
		if delta > 0 {
			sign = 1
		} else if delta < 0 {
			sign = -1
		}
		if sign != 0 && prevSign != 0 && sign != prevSign {
			flips++
		}
		if sign != 0 {
			prevSign = sign
		}
	}
	if flips <= 1 {
		return 80
	}
	return 40
}
