package services

import "testing"

func TestLookupKwhCumac(t *testing.T) {
	entries := []KwhCumacEntry{
		{BuildingType: "Maison individuelle", KwhCumac: 1700},
		{BuildingType: "Appartement", KwhCumac: 1100},
		{BuildingType: "Bâtiment tertiaire", KwhCumac: 0},
	}

	tests := []struct {
		name          string
		entries       []KwhCumacEntry
		buildingType  string
		expectValue   float64
		expectMissing bool
	}{
		{"exact match", entries, "Maison individuelle", 1700, false},
		{"case insensitive", entries, "maison INDIVIDUELLE", 1700, false},
		{"trimmed", entries, "  Appartement  ", 1100, false},
		{"blank building type", entries, "", 0, true},
		{"whitespace building type", entries, "   ", 0, true},
		{"unmatched type is hard missing", entries, "Local commercial", 0, true},
		{"matched row with non-positive value", entries, "Bâtiment tertiaire", 0, true},
		{"no entries", nil, "Appartement", 0, true},
		{
			"later positive row wins over earlier zero",
			[]KwhCumacEntry{
				{BuildingType: "Appartement", KwhCumac: 0},
				{BuildingType: "Appartement", KwhCumac: 900},
			},
			"Appartement", 900, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupKwhCumac(tt.entries, tt.buildingType)
			if got.MissingKwh != tt.expectMissing {
				t.Fatalf("MissingKwh = %v, want %v", got.MissingKwh, tt.expectMissing)
			}
			if got.Value != tt.expectValue {
				t.Errorf("Value = %v, want %v", got.Value, tt.expectValue)
			}
		})
	}
}
