package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Likelihood represents how likely a risk is to materialize.
type Likelihood string

const (
	// LikelihoodRare indicates the risk is expected only in exceptional circumstances.
	LikelihoodRare Likelihood = "rare"

	// LikelihoodUnlikely indicates the risk could occur but is not expected.
	LikelihoodUnlikely Likelihood = "unlikely"

	// LikelihoodPossible indicates the risk might occur at some point.
	LikelihoodPossible Likelihood = "possible"

	// LikelihoodLikely indicates the risk will probably occur.
	LikelihoodLikely Likelihood = "likely"

	// LikelihoodCertain indicates the risk is expected to occur.
	LikelihoodCertain Likelihood = "certain"
)

// likelihoodMultipliers maps likelihood levels to score multipliers.
var likelihoodMultipliers = map[Likelihood]float64{
	LikelihoodCertain:  1.0,
	LikelihoodLikely:   0.8,
	LikelihoodPossible: 0.6,
	LikelihoodUnlikely: 0.4,
	LikelihoodRare:     0.2,
}

// defaultLikelihoodMultiplier is applied when a likelihood value is unknown.
const defaultLikelihoodMultiplier = 0.6

// IsValid returns true if the likelihood level is valid.
func (l Likelihood) IsValid() bool {
	switch l {
	case LikelihoodRare, LikelihoodUnlikely, LikelihoodPossible, LikelihoodLikely, LikelihoodCertain:
		return true
	default:
		return false
	}
}

// Multiplier returns the score multiplier for the likelihood level.
// Unknown values fall back to the documented default of 0.6.
func (l Likelihood) Multiplier() float64 {
	if m, ok := likelihoodMultipliers[l]; ok {
		return m
	}
	return defaultLikelihoodMultiplier
}

// String returns the string representation of the likelihood.
func (l Likelihood) String() string {
	return string(l)
}

// ParseLikelihood parses a string into a Likelihood value.
func ParseLikelihood(s string) (Likelihood, error) {
	likelihood := Likelihood(s)
	if !likelihood.IsValid() {
		return "", fmt.Errorf("invalid likelihood: %s", s)
	}
	return likelihood, nil
}

// Impact represents the magnitude of harm if a risk materializes.
type Impact string

const (
	// ImpactNegligible indicates minimal harm with no lasting effect.
	ImpactNegligible Impact = "negligible"

	// ImpactMinor indicates limited harm, recoverable with routine effort.
	ImpactMinor Impact = "minor"

	// ImpactModerate indicates meaningful harm requiring dedicated remediation.
	ImpactModerate Impact = "moderate"

	// ImpactMajor indicates serious harm to operations or standing.
	ImpactMajor Impact = "major"

	// ImpactCatastrophic indicates existential or license-threatening harm.
	ImpactCatastrophic Impact = "catastrophic"
)

// impactMultipliers maps impact levels to score multipliers.
var impactMultipliers = map[Impact]float64{
	ImpactCatastrophic: 1.0,
	ImpactMajor:        0.8,
	ImpactModerate:     0.6,
	ImpactMinor:        0.4,
	ImpactNegligible:   0.2,
}

// defaultImpactMultiplier is applied when an impact value is unknown.
const defaultImpactMultiplier = 0.6

// IsValid returns true if the impact level is valid.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactNegligible, ImpactMinor, ImpactModerate, ImpactMajor, ImpactCatastrophic:
		return true
	default:
		return false
	}
}

// Multiplier returns the score multiplier for the impact level.
// Unknown values fall back to the documented default of 0.6.
func (i Impact) Multiplier() float64 {
	if m, ok := impactMultipliers[i]; ok {
		return m
	}
	return defaultImpactMultiplier
}

// String returns the string representation of the impact.
func (i Impact) String() string {
	return string(i)
}

// ParseImpact parses a string into an Impact value.
func ParseImpact(s string) (Impact, error) {
	impact := Impact(s)
	if !impact.IsValid() {
		return "", fmt.Errorf("invalid impact: %s", s)
	}
	return impact, nil
}

// Risk represents an identified compliance risk: a potential adverse event,
// qualified by likelihood, impact, and the effectiveness of existing controls.
type Risk struct {
	// ID is a unique identifier for the risk.
	ID string `json:"id"`

	// AssessmentID identifies the assessment that produced this risk.
	AssessmentID string `json:"assessment_id,omitempty"`

	// Title is a brief summary of the risk.
	Title string `json:"title"`

	// Description provides detailed information about the risk.
	Description string `json:"description,omitempty"`

	// Category classifies the risk into one of the six risk categories.
	Category Category `json:"category"`

	// Level indicates the overall severity of the risk.
	Level Severity `json:"risk_level"`

	// Likelihood indicates how likely the risk is to materialize.
	Likelihood Likelihood `json:"likelihood"`

	// Impact indicates the magnitude of harm if the risk materializes.
	Impact Impact `json:"impact"`

	// ControlEffectiveness is the percentage (0-100) by which existing
	// controls reduce the risk's effective impact. Nil means no control
	// assessment was made; scoring then assumes 0 (no mitigation).
	ControlEffectiveness *float64 `json:"control_effectiveness,omitempty"`

	// CreatedAt records when the risk was identified.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewRisk creates a new Risk with a generated ID and the current timestamp.
func NewRisk(assessmentID, title string, category Category, level Severity, likelihood Likelihood, impact Impact) *Risk {
	return &Risk{
		ID:           uuid.New().String(),
		AssessmentID: assessmentID,
		Title:        title,
		Category:     category,
		Level:        level,
		Likelihood:   likelihood,
		Impact:       impact,
		CreatedAt:    time.Now(),
	}
}

// WithControlEffectiveness sets the assessed control effectiveness and
// returns the risk for chaining.
func (r *Risk) WithControlEffectiveness(pct float64) *Risk {
	r.ControlEffectiveness = &pct
	return r
}

// EffectiveControl returns the control effectiveness to use in scoring:
// the assessed value when present, 0 (unmitigated) otherwise.
func (r *Risk) EffectiveControl() float64 {
	if r.ControlEffectiveness == nil {
		return 0
	}
	return *r.ControlEffectiveness
}

// Validate checks if the risk has all required fields and valid values.
func (r *Risk) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("risk ID is required")
	}
	if r.Title == "" {
		return fmt.Errorf("risk title is required")
	}
	if !r.Category.IsValid() {
		return fmt.Errorf("invalid risk category: %s", r.Category)
	}
	if !r.Level.IsValid() {
		return fmt.Errorf("invalid risk level: %s", r.Level)
	}
	if !r.Likelihood.IsValid() {
		return fmt.Errorf("invalid likelihood: %s", r.Likelihood)
	}
	if !r.Impact.IsValid() {
		return fmt.Errorf("invalid impact: %s", r.Impact)
	}
	if r.ControlEffectiveness != nil && (*r.ControlEffectiveness < 0 || *r.ControlEffectiveness > 100) {
		return fmt.Errorf("control effectiveness must be between 0 and 100, got %v", *r.ControlEffectiveness)
	}
	return nil
}
