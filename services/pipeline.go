package services

// ProjectPrimeInput is the read-only snapshot the pipeline computes from:
// the project's building type and product lines, plus the organization
// financing context. Collaborators supply it fresh on every invocation;
// nothing here is cached or written back.
type ProjectPrimeInput struct {
	BuildingType string
	Lines        []ProductLine
	Delegate     *Delegate
	Settings     PrimeSettings
	// DefaultLedWatt is the externally configured category-default wattage
	// used when a lighting product has no LedWattConstant of its own.
	DefaultLedWatt float64
}

// ProjectPrimeComputation holds the per-line results and project totals.
type ProjectPrimeComputation struct {
	Lines  []LineResult
	Totals ProjectCeeTotals
}

// ComputeProjectPrime runs the full valorisation pipeline over a project
// snapshot. Helper/edge products (reserved "ECO" code prefix) are dropped
// here, before anything else looks at the lines. The computation is a pure
// function of its input: identical snapshots yield identical results.
func ComputeProjectPrime(in ProjectPrimeInput) ProjectPrimeComputation {
	var out ProjectPrimeComputation

	delegatePrice := 0.0
	if in.Delegate != nil && in.Delegate.PriceEurPerMwh > 0 {
		delegatePrice = in.Delegate.PriceEurPerMwh
	}
	bonification := in.Settings.EffectiveBonification()

	for _, line := range in.Lines {
		p := line.Product
		if p == nil || p.IsEdge() {
			continue
		}

		resolution := ResolveMultiplier(p, line)
		lookup := LookupKwhCumac(p.KwhCumac, in.BuildingType)

		lr := LineResult{
			ProductCode:          p.Code,
			ProductName:          p.Name,
			Category:             p.EffectiveCategory(),
			Quantity:             line.Quantity,
			Multiplier:           resolution.Value,
			MultiplierLabel:      resolution.Label,
			MissingDynamicParams: resolution.MissingDynamicParams,
			MissingKwh:           lookup.MissingKwh,
		}

		if !lookup.MissingKwh && resolution.Value != nil {
			lr.Result = ComputeValorisation(ValorisationInput{
				KwhCumac:     lookup.Value,
				Bonification: bonification,
				// The resolver already folded the configured coefficient
				// into the multiplier.
				Coefficient:            1,
				Multiplier:             *resolution.Value,
				DelegatePriceEurPerMwh: delegatePrice,
				Category:               lr.Category,
				LedWatt:                resolveLedWatt(p, in.DefaultLedWatt),
			})
		}

		out.Lines = append(out.Lines, lr)
	}

	results := make([]*PrimeCeeResult, 0, len(out.Lines))
	for _, lr := range out.Lines {
		results = append(results, lr.Result)
	}
	out.Totals = ComputeProjectCeeTotals(results)

	return out
}

// resolveLedWatt picks the wattage of one LED: the product constant wins,
// then the externally configured default. 0 means unresolved.
func resolveLedWatt(p *CatalogProduct, defaultWatt float64) float64 {
	if p.Cee != nil && p.Cee.LedWattConstant > 0 {
		return p.Cee.LedWattConstant
	}
	if defaultWatt > 0 {
		return defaultWatt
	}
	return 0
}

// WarningReason renders the human-readable diagnosis the display layer shows
// next to a line that could not be fully valorised. Empty when nothing is
// wrong.
func (lr LineResult) WarningReason() string {
	switch {
	case lr.MissingKwh && lr.MissingDynamicParams:
		return "Valeur kWh cumac introuvable et paramètre « " + lr.MultiplierLabel + " » non renseigné"
	case lr.MissingKwh:
		return "Valeur kWh cumac introuvable pour ce type de bâtiment"
	case lr.MissingDynamicParams:
		return "Paramètre « " + lr.MultiplierLabel + " » non renseigné sur la ligne produit"
	case lr.Result != nil && lr.Result.Lighting != nil && lr.Result.Lighting.MissingBase:
		return "Puissance LED non configurée : valorisation par LED indisponible"
	case lr.Result == nil:
		return "Aucun multiplicateur configuré pour ce produit"
	}
	return ""
}
