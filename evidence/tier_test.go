package evidence

import "testing"

func TestTier_IsValid(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want bool
	}{
		{"self-declared is valid", TierSelfDeclared, true},
		{"policy is valid", TierPolicy, true},
		{"system-generated is valid", TierSystemGenerated, true},
		{"empty is invalid", Tier(""), false},
		{"lowercase is invalid", Tier("tier_0"), false},
		{"unknown is invalid", Tier("TIER_3"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.IsValid(); got != tt.want {
				t.Errorf("Tier.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTier_Weight(t *testing.T) {
	tests := []struct {
		name string
		tier Tier
		want float64
	}{
		{"system-generated weighs full", TierSystemGenerated, 1.0},
		{"policy weighs three quarters", TierPolicy, 0.75},
		{"self-declared weighs half", TierSelfDeclared, 0.5},
		{"unknown weighs as self-declared", Tier("TIER_9"), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.Weight(); got != tt.want {
				t.Errorf("Tier.Weight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTier_DisplayName(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierSelfDeclared, "Self-Declared"},
		{TierPolicy, "Policy Document"},
		{TierSystemGenerated, "System-Generated"},
		{Tier("TIER_9"), "TIER_9"},
	}

	for _, tt := range tests {
		if got := tt.tier.DisplayName(); got != tt.want {
			t.Errorf("Tier(%q).DisplayName() = %q, want %q", tt.tier, got, tt.want)
		}
	}
}

func TestParseTier(t *testing.T) {
	if _, err := ParseTier("TIER_1"); err != nil {
		t.Errorf("ParseTier(TIER_1) unexpected error: %v", err)
	}
	if _, err := ParseTier("gold"); err == nil {
		t.Error("ParseTier(gold) expected error, got nil")
	}
}

func TestAllTiers(t *testing.T) {
	all := AllTiers()
	if len(all) != 3 {
		t.Fatalf("AllTiers() returned %d tiers, want 3", len(all))
	}
	// Increasing order of trust.
	for i := 1; i < len(all); i++ {
		if all[i].Weight() <= all[i-1].Weight() {
			t.Errorf("AllTiers() not in increasing trust order at %d", i)
		}
	}
}
