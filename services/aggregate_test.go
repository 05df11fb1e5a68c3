package services

import "testing"

func TestComputeProjectCeeTotals(t *testing.T) {
	tests := []struct {
		name       string
		results    []*PrimeCeeResult
		expectMwh  float64
		expectEur  float64
		expectSum  float64
	}{
		{
			name: "nulls contribute zero and never error",
			results: []*PrimeCeeResult{
				{ValorisationTotalMwh: 20, ValorisationTotalEur: 100, TotalPrime: 100},
				nil,
				{ValorisationTotalMwh: 8, ValorisationTotalEur: 50, TotalPrime: 50},
			},
			expectMwh: 28,
			expectEur: 150,
			expectSum: 150,
		},
		{
			name:    "empty list yields defined zero totals",
			results: nil,
		},
		{
			name:    "all nulls yields zero totals",
			results: []*PrimeCeeResult{nil, nil, nil},
		},
		{
			name: "lighting-preferred prime is what gets summed",
			results: []*PrimeCeeResult{
				{
					ValorisationTotalMwh: 10,
					ValorisationTotalEur: 60,
					TotalPrime:           162,
					Lighting:             &LightingResult{TotalEur: 162},
				},
			},
			expectMwh: 10,
			expectEur: 60,
			expectSum: 162,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProjectCeeTotals(tt.results)
			if got.TotalValorisationMwh != tt.expectMwh {
				t.Errorf("TotalValorisationMwh = %v, want %v", got.TotalValorisationMwh, tt.expectMwh)
			}
			if got.TotalValorisationEur != tt.expectEur {
				t.Errorf("TotalValorisationEur = %v, want %v", got.TotalValorisationEur, tt.expectEur)
			}
			if got.TotalPrime != tt.expectSum {
				t.Errorf("TotalPrime = %v, want %v", got.TotalPrime, tt.expectSum)
			}
		})
	}
}
