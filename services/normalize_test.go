package services

import (
	"math"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"already normalized", "surface", "surface"},
		{"upper case", "SURFACE", "surface"},
		{"mixed case with spaces", "  Surface Chauffée ", "surface chauffée"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.input)
			if got != tt.expect {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expect   float64
		expectOK bool
	}{
		{"float64", 42.5, 42.5, true},
		{"int", 7, 7, true},
		{"zero", 0.0, 0, true},
		{"negative", -3.5, -3.5, true},
		{"plain string", "120", 120, true},
		{"decimal comma", "2,5", 2.5, true},
		{"thousands space", "1 250,50", 1250.50, true},
		{"non-breaking space", "1 250", 1250, true},
		{"narrow no-break space", "1 250", 1250, true},
		{"empty string", "", 0, false},
		{"garbage string", "abc", 0, false},
		{"mixed garbage", "12abc", 0, false},
		{"nil", nil, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"infinity", math.Inf(1), 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNumber(tt.input)
			if ok != tt.expectOK {
				t.Fatalf("ToNumber(%v) ok = %v, want %v", tt.input, ok, tt.expectOK)
			}
			if ok && got != tt.expect {
				t.Errorf("ToNumber(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestToPositiveNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expect   float64
		expectOK bool
	}{
		{"positive", 40.0, 40, true},
		{"positive string", "12,5", 12.5, true},
		{"zero rejected", 0.0, 0, false},
		{"negative rejected", -5.0, 0, false},
		{"zero string rejected", "0", 0, false},
		{"unparseable", "pas un nombre", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToPositiveNumber(tt.input)
			if ok != tt.expectOK {
				t.Fatalf("ToPositiveNumber(%v) ok = %v, want %v", tt.input, ok, tt.expectOK)
			}
			if ok && got != tt.expect {
				t.Errorf("ToPositiveNumber(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
