package services

// ComputeProjectCeeTotals folds per-line results into project totals.
// Nil entries are lines that could not be valorised; they contribute zero
// and are not errors. The aggregate is defined even for an empty list.
func ComputeProjectCeeTotals(results []*PrimeCeeResult) ProjectCeeTotals {
	var totals ProjectCeeTotals
	for _, r := range results {
		if r == nil {
			continue
		}
		totals.TotalValorisationMwh += r.ValorisationTotalMwh
		totals.TotalValorisationEur += r.ValorisationTotalEur
		totals.TotalPrime += r.TotalPrime
	}
	return totals
}
