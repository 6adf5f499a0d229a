package prompts

import "testing"

func TestValidateCurrencyCode(t *testing.T) {
	tests := map[string]bool{
		"INR":  true,
		"usd":  true,
		" ":    false,
		"":     false,
		"ABCD": false,
	}
	for in, ok := range tests {
		err := ValidateCurrencyCode(in)
		if ok && err != nil {
			t.Errorf("ValidateCurrencyCode(%q) unexpected error: %v", in, err)
		}
		if !ok && err == nil {
			t.Errorf("ValidateCurrencyCode(%q) expected error", in)
		}
	}
}
