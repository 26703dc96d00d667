package assessment

import "testing"

func TestLikelihood_Multiplier(t *testing.T) {
	tests := []struct {
		name       string
		likelihood Likelihood
		want       float64
	}{
		{"certain", LikelihoodCertain, 1.0},
		{"likely", LikelihoodLikely, 0.8},
		{"possible", LikelihoodPossible, 0.6},
		{"unlikely", LikelihoodUnlikely, 0.4},
		{"rare", LikelihoodRare, 0.2},
		{"unknown falls back to default", Likelihood("maybe"), 0.6},
		{"empty falls back to default", Likelihood(""), 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.likelihood.Multiplier(); got != tt.want {
				t.Errorf("Likelihood.Multiplier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImpact_Multiplier(t *testing.T) {
	tests := []struct {
		name   string
		impact Impact
		want   float64
	}{
		{"catastrophic", ImpactCatastrophic, 1.0},
		{"major", ImpactMajor, 0.8},
		{"moderate", ImpactModerate, 0.6},
		{"minor", ImpactMinor, 0.4},
		{"negligible", ImpactNegligible, 0.2},
		{"unknown falls back to default", Impact("severe"), 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.impact.Multiplier(); got != tt.want {
				t.Errorf("Impact.Multiplier() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLikelihoodAndImpact(t *testing.T) {
	if _, err := ParseLikelihood("likely"); err != nil {
		t.Errorf("ParseLikelihood(likely) unexpected error: %v", err)
	}
	if _, err := ParseLikelihood("definite"); err == nil {
		t.Error("ParseLikelihood(definite) expected error, got nil")
	}
	if _, err := ParseImpact("catastrophic"); err != nil {
		t.Errorf("ParseImpact(catastrophic) unexpected error: %v", err)
	}
	if _, err := ParseImpact("huge"); err == nil {
		t.Error("ParseImpact(huge) expected error, got nil")
	}
}

func TestNewRisk(t *testing.T) {
	risk := NewRisk("assessment-1", "Sanctions exposure", CategoryRegulatory, SeverityCritical, LikelihoodPossible, ImpactMajor)

	if risk.ID == "" {
		t.Error("NewRisk() did not generate an ID")
	}
	if risk.ControlEffectiveness != nil {
		t.Error("NewRisk() should leave ControlEffectiveness unset")
	}
	if err := risk.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

// TestRisk_EffectiveControl verifies that a missing control assessment
// counts as an unmitigated risk.
func TestRisk_EffectiveControl(t *testing.T) {
	risk := NewRisk("a", "unmitigated", CategoryOperational, SeverityHigh, LikelihoodLikely, ImpactModerate)
	if got := risk.EffectiveControl(); got != 0 {
		t.Errorf("EffectiveControl() with absent value = %v, want 0", got)
	}

	risk.WithControlEffectiveness(75)
	if got := risk.EffectiveControl(); got != 75 {
		t.Errorf("EffectiveControl() = %v, want 75", got)
	}
}

func TestRisk_Validate(t *testing.T) {
	valid := NewRisk("a", "valid risk", CategoryGeographic, SeverityMedium, LikelihoodPossible, ImpactModerate)

	tests := []struct {
		name    string
		mutate  func(*Risk)
		wantErr bool
	}{
		{"valid risk", func(r *Risk) {}, false},
		{"missing ID", func(r *Risk) { r.ID = "" }, true},
		{"missing title", func(r *Risk) { r.Title = "" }, true},
		{"invalid category", func(r *Risk) { r.Category = "cyber" }, true},
		{"invalid level", func(r *Risk) { r.Level = "extreme" }, true},
		{"invalid likelihood", func(r *Risk) { r.Likelihood = "definite" }, true},
		{"invalid impact", func(r *Risk) { r.Impact = "huge" }, true},
		{"control effectiveness over 100", func(r *Risk) { r.WithControlEffectiveness(120) }, true},
		{"control effectiveness at bounds", func(r *Risk) { r.WithControlEffectiveness(100) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := *valid
			tt.mutate(&risk)
			err := risk.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
