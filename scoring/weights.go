package scoring

import (
	"fmt"
	"math"

	"github.com/veracomply/sdk/assessment"
)

// Weights holds the linear coefficients used to combine the four sub-scores
// into the overall score. Coefficients are expected to sum to 1.0; callers
// own that invariant, the calculator does not renormalize.
type Weights struct {
	// Compliance weights the gap-driven compliance sub-score.
	Compliance float64 `json:"compliance" yaml:"compliance"`

	// Risk weights the risk-driven sub-score.
	Risk float64 `json:"risk" yaml:"risk"`

	// Maturity weights the program maturity sub-score.
	Maturity float64 `json:"maturity" yaml:"maturity"`

	// Documentation weights the documentation quality sub-score.
	Documentation float64 `json:"documentation" yaml:"documentation"`
}

// DefaultWeights returns the platform's standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Compliance:    0.40,
		Risk:          0.30,
		Maturity:      0.20,
		Documentation: 0.10,
	}
}

// Validate checks that all coefficients are non-negative and that they sum
// to 1.0 within a small tolerance.
func (w Weights) Validate() error {
	if w.Compliance < 0 || w.Risk < 0 || w.Maturity < 0 || w.Documentation < 0 {
		return fmt.Errorf("scoring weights must be non-negative: %+v", w)
	}
	sum := w.Compliance + w.Risk + w.Maturity + w.Documentation
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// DefaultCategoryWeights returns the category weights used by the composite
// risk index. Regulatory exposure dominates; geographic exposure carries the
// least weight.
func DefaultCategoryWeights() map[assessment.Category]float64 {
	return map[assessment.Category]float64{
		assessment.CategoryRegulatory:   0.25,
		assessment.CategoryOperational:  0.20,
		assessment.CategoryGovernance:   0.15,
		assessment.CategoryReputational: 0.15,
		assessment.CategoryTransaction:  0.15,
		assessment.CategoryGeographic:   0.10,
	}
}
