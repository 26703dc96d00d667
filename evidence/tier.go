package evidence

import "fmt"

// Tier represents the evidentiary trust level of a document.
type Tier string

const (
	// TierSelfDeclared (TIER_0) is unverified, self-declared evidence.
	// Examples: Free-text answers, informal notes, unverifiable claims
	TierSelfDeclared Tier = "TIER_0"

	// TierPolicy (TIER_1) is a formal policy or procedure document.
	// Examples: Signed policies, versioned procedures, approved guidelines
	TierPolicy Tier = "TIER_1"

	// TierSystemGenerated (TIER_2) is machine-produced evidence.
	// Examples: System exports, audit logs, timestamped reports
	TierSystemGenerated Tier = "TIER_2"
)

// tierWeights maps tiers to the evidence weight applied when the document
// supports or contradicts an assessment answer. Higher tiers count more.
var tierWeights = map[Tier]float64{
	TierSystemGenerated: 1.0,
	TierPolicy:          0.75,
	TierSelfDeclared:    0.5,
}

// IsValid returns true if the tier is valid.
func (t Tier) IsValid() bool {
	switch t {
	case TierSelfDeclared, TierPolicy, TierSystemGenerated:
		return true
	default:
		return false
	}
}

// Weight returns the evidence weight for the tier.
// Unknown tiers weigh the same as self-declared evidence.
func (t Tier) Weight() float64 {
	if w, ok := tierWeights[t]; ok {
		return w
	}
	return tierWeights[TierSelfDeclared]
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}

// DisplayName returns a human-readable display name for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierSelfDeclared:
		return "Self-Declared"
	case TierPolicy:
		return "Policy Document"
	case TierSystemGenerated:
		return "System-Generated"
	default:
		return string(t)
	}
}

// ParseTier parses a string into a Tier value.
// Returns an error if the string is not a valid tier.
func ParseTier(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid tier: %s", s)
	}
	return tier, nil
}

// AllTiers returns all valid tiers in increasing order of trust.
func AllTiers() []Tier {
	return []Tier{
		TierSelfDeclared,
		TierPolicy,
		TierSystemGenerated,
	}
}
