package grocery

import "testing"

func TestCategorizeExactMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"milk", "Dairy"},
		{"chicken", "Meat & Seafood"},
		{"bread", "Bakery"},
		{"rice", "Pantry"},
		{"ice cream", "Frozen"},
		{"coffee", "Beverages"},
		{"chips", "Snacks"},
		{"paper towels", "Household"},
		{"apple", "Produce"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeSubstringMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"boneless chicken thighs", "Meat & Seafood"},
		{"whole wheat bread", "Bakery"},
		{"frozen pizza", "Frozen"},
		{"organic baby spinach", "Produce"},
		{"sparkling water bottles", "Beverages"},
		{"canned tomatoes", "Pantry"},
		{"greek yogurt cups", "Dairy"},
		{"laundry detergent", "Household"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MILK", "Dairy"},
		{"Chicken", "Meat & Seafood"},
		{"  Frozen Pizza  ", "Frozen"},
	}
	for _, tt := range tests {
		got := Categorize(tt.input)
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategorizeFallback(t *testing.T) {
	if got := Categorize("flux capacitor"); got != "Other" {
		t.Errorf("Categorize(unknown) = %q, want Other", got)
	}
	if got := Categorize(""); got != "Other" {
		t.Errorf("Categorize(\"\") = %q, want Other", got)
	}
	if got := Categorize("   "); got != "Other" {
		t.Errorf("Categorize(blank) = %q, want Other", got)
	}
}

func TestDepartmentsCoverCategorizeOutputs(t *testing.T) {
	known := make(map[string]bool, len(Departments))
	for _, d := range Departments {
		known[d] = true
	}
	for name, dept := range exactMatch {
		if !known[dept] {
			t.Errorf("exact match %q maps to unknown department %q", name, dept)
		}
	}
	for _, entry := range substringMatches {
		if !known[entry.department] {
			t.Errorf("substring %q maps to unknown department %q", entry.keyword, entry.department)
		}
	}
}
