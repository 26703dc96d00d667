package assessment

import "fmt"

// Category represents the risk category a gap or risk belongs to.
// The platform scores each of the six fixed categories independently.
type Category string

const (
	// CategoryGeographic covers jurisdiction and location-driven exposure.
	// Examples: Operations in high-risk jurisdictions, cross-border transfers
	CategoryGeographic Category = "geographic"

	// CategoryTransaction covers transaction monitoring and payment exposure.
	// Examples: Unusual transaction patterns, high-value payment flows
	CategoryTransaction Category = "transaction"

	// CategoryGovernance covers oversight, accountability, and board controls.
	// Examples: Missing compliance officer, unclear escalation paths
	CategoryGovernance Category = "governance"

	// CategoryOperational covers day-to-day process and system controls.
	// Examples: Manual reconciliation gaps, missing segregation of duties
	CategoryOperational Category = "operational"

	// CategoryRegulatory covers obligations imposed by regulators.
	// Examples: Unfiled reports, expired licenses, missing mandatory controls
	CategoryRegulatory Category = "regulatory"

	// CategoryReputational covers exposure to public trust damage.
	// Examples: Adverse media findings, unresolved customer complaints
	CategoryReputational Category = "reputational"
)

// IsValid returns true if the category is valid.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGeographic,
		CategoryTransaction,
		CategoryGovernance,
		CategoryOperational,
		CategoryRegulatory,
		CategoryReputational:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// DisplayName returns a human-readable display name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGeographic:
		return "Geographic"
	case CategoryTransaction:
		return "Transaction"
	case CategoryGovernance:
		return "Governance"
	case CategoryOperational:
		return "Operational"
	case CategoryRegulatory:
		return "Regulatory"
	case CategoryReputational:
		return "Reputational"
	default:
		return string(c)
	}
}

// ParseCategory parses a string into a Category value.
// Returns an error if the string is not a valid category.
func ParseCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return category, nil
}

// AllCategories returns all valid categories in scoring order.
func AllCategories() []Category {
	return []Category{
		CategoryGeographic,
		CategoryTransaction,
		CategoryGovernance,
		CategoryOperational,
		CategoryRegulatory,
		CategoryReputational,
	}
}
