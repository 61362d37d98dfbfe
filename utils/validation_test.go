// utils/validation_test.go
package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+38761234567", true},
		{"+387 61 234 567", true},
		{"061-234-567", false}, // leading zero without country code
		{"abc", false},
		{"", false},
		{"+1 (555) 123-4567", true},
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.valid {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.valid)
		}
	}
}
