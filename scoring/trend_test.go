package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTrend(t *testing.T) {
	calc := NewCalculator(DefaultWeights())

	t.Run("no history", func(t *testing.T) {
		trend := calc.CalculateTrend(60, nil)
		assert.Equal(t, DirectionStable, trend.Direction)
		assert.Equal(t, 0.0, trend.ChangeRate)
		assert.Equal(t, 0, trend.Confidence)
	})

	t.Run("short history has half confidence", func(t *testing.T) {
		trend := calc.CalculateTrend(55, []int{50})
		assert.Equal(t, DirectionImproving, trend.Direction)
		assert.InDelta(t, 10.0, trend.ChangeRate, 0.0001)
		assert.Equal(t, 50, trend.Confidence)
	})

	t.Run("movement within the noise band is stable", func(t *testing.T) {
		assert.Equal(t, DirectionStable, calc.CalculateTrend(52, []int{50}).Direction)
		assert.Equal(t, DirectionStable, calc.CalculateTrend(48, []int{50}).Direction)
	})

	t.Run("declining past the noise band", func(t *testing.T) {
		trend := calc.CalculateTrend(40, []int{50})
		assert.Equal(t, DirectionDeclining, trend.Direction)
		assert.InDelta(t, 20.0, trend.ChangeRate, 0.0001)
	})

	t.Run("consistent history earns high confidence", func(t *testing.T) {
		trend := calc.CalculateTrend(56, []int{50, 52, 54})
		assert.Equal(t, 80, trend.Confidence)
	})

	t.Run("choppy history earns low confidence", func(t *testing.T) {
		trend := calc.CalculateTrend(50, []int{50, 60, 50, 60})
		assert.Equal(t, 40, trend.Confidence)
		assert.Equal(t, DirectionDeclining, trend.Direction)
	})

	t.Run("single reversal still counts as consistent", func(t *testing.T) {
		// deltas +4, +4, -2: one direction flip
		trend := calc.CalculateTrend(56, []int{50, 54, 58})
		assert.Equal(t, 80, trend.Confidence)
	})

	t.Run("zero previous score guards the change rate", func(t *testing.T) {
		trend := calc.CalculateTrend(10, []int{0})
		assert.Equal(t, DirectionImproving, trend.Direction)
		assert.Equal(t, 0.0, trend.ChangeRate)
	})
}
