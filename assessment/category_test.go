package assessment

import "testing"

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     bool
	}{
		{"geographic is valid", CategoryGeographic, true},
		{"transaction is valid", CategoryTransaction, true},
		{"governance is valid", CategoryGovernance, true},
		{"operational is valid", CategoryOperational, true},
		{"regulatory is valid", CategoryRegulatory, true},
		{"reputational is valid", CategoryReputational, true},
		{"empty is invalid", Category(""), false},
		{"unknown is invalid", Category("financial"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.IsValid(); got != tt.want {
				t.Errorf("Category.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategory_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     string
	}{
		{"geographic display", CategoryGeographic, "Geographic"},
		{"regulatory display", CategoryRegulatory, "Regulatory"},
		{"unknown passthrough", Category("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.DisplayName(); got != tt.want {
				t.Errorf("Category.DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("governance"); err != nil {
		t.Errorf("ParseCategory(governance) unexpected error: %v", err)
	}
	if _, err := ParseCategory("payments"); err == nil {
		t.Error("ParseCategory(payments) expected error, got nil")
	}
}

func TestAllCategories(t *testing.T) {
	all := AllCategories()
	if len(all) != 6 {
		t.Fatalf("AllCategories() returned %d categories, want 6", len(all))
	}
	seen := make(map[Category]bool)
	for _, c := range all {
		if !c.IsValid() {
			t.Errorf("AllCategories() contains invalid category %v", c)
		}
		if seen[c] {
			t.Errorf("AllCategories() contains duplicate category %v", c)
		}
		seen[c] = true
	}
}
