package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FullGapSize is the gap size assumed when a gap's size was not assessed.
// An unmeasured gap is treated as a full gap (100%), never as zero: the
// platform deliberately fails closed on unknown exposure. Do not change
// this default without revisiting every scoring formula that relies on it.
const FullGapSize = 100.0

// Gap represents a compliance gap identified during an assessment: a
// difference between the required state and the observed state of a control.
type Gap struct {
	// ID is a unique identifier for the gap.
	ID string `json:"id"`

	// AssessmentID identifies the assessment that produced this gap.
	AssessmentID string `json:"assessment_id,omitempty"`

	// Title is a brief summary of the gap.
	Title string `json:"title"`

	// Description provides detailed information about the gap.
	Description string `json:"description,omitempty"`

	// Category classifies the gap into one of the six risk categories.
	Category Category `json:"category"`

	// Severity indicates how severe the gap is.
	Severity Severity `json:"severity"`

	// Priority is the remediation priority assigned by the assessor.
	// Lower values indicate higher priority.
	Priority int `json:"priority,omitempty"`

	// GapSize is the percentage (0-100) by which the control deviates from
	// the required state. Nil means the size was not assessed; scoring then
	// assumes FullGapSize.
	GapSize *float64 `json:"gap_size,omitempty"`

	// CreatedAt records when the gap was identified.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewGap creates a new Gap with a generated ID and the current timestamp.
func NewGap(assessmentID, title string, category Category, severity Severity) *Gap {
	return &Gap{
		ID:           uuid.New().String(),
		AssessmentID: assessmentID,
		Title:        title,
		Category:     category,
		Severity:     severity,
		CreatedAt:    time.Now(),
	}
}

// WithSize sets the assessed gap size and returns the gap for chaining.
func (g *Gap) WithSize(size float64) *Gap {
	g.GapSize = &size
	return g
}

// EffectiveSize returns the gap size to use in scoring: the assessed size
// when present, FullGapSize otherwise.
func (g *Gap) EffectiveSize() float64 {
	if g.GapSize == nil {
		return FullGapSize
	}
	return *g.GapSize
}

// Validate checks if the gap has all required fields and valid values.
func (g *Gap) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gap ID is required")
	}
	if g.Title == "" {
		return fmt.Errorf("gap title is required")
	}
	if !g.Category.IsValid() {
		return fmt.Errorf("invalid gap category: %s", g.Category)
	}
	if !g.Severity.IsValid() {
		return fmt.Errorf("invalid gap severity: %s", g.Severity)
	}
	if g.GapSize != nil && (*g.GapSize < 0 || *g.GapSize > 100) {
		return fmt.Errorf("gap size must be between 0 and 100, got %v", *g.GapSize)
	}
	return nil
}
