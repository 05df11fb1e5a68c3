package services

// ValorisationInput bundles everything the calculator needs for one line.
// Callers only invoke the calculator once the kWh-cumac reference resolved
// and the multiplier came out positive.
type ValorisationInput struct {
	KwhCumac     float64
	Bonification float64
	Coefficient  float64
	Multiplier   float64
	// DelegatePriceEurPerMwh is 0 when no delegate is configured; monetary
	// figures then compute as zero rather than failing.
	DelegatePriceEurPerMwh float64
	Category               string
	// LedWatt is the resolved wattage of one LED for lighting products
	// (product constant, else the externally configured default). 0 means
	// the base could not be resolved.
	LedWatt float64
}

// ComputeValorisation derives the per-unit and total energy/monetary figures
// for one product line. It returns nil only when its entry conditions do not
// hold (no positive kWh-cumac reference or multiplier).
func ComputeValorisation(in ValorisationInput) *PrimeCeeResult {
	if in.KwhCumac <= 0 || in.Multiplier <= 0 {
		return nil
	}

	bonification := in.Bonification
	if bonification <= 0 {
		bonification = defaultBonification
	}
	coefficient := in.Coefficient
	if coefficient <= 0 {
		coefficient = 1
	}

	// kWh → MWh with the regulatory bonification and coefficient applied
	// per unit.
	perUnitMwh := in.KwhCumac * bonification * coefficient / 1000
	totalMwh := perUnitMwh * in.Multiplier
	perUnitEur := perUnitMwh * in.DelegatePriceEurPerMwh
	totalEur := totalMwh * in.DelegatePriceEurPerMwh

	result := &PrimeCeeResult{
		ValorisationPerUnitMwh: perUnitMwh,
		ValorisationPerUnitEur: perUnitEur,
		ValorisationTotalMwh:   totalMwh,
		ValorisationTotalEur:   totalEur,
		TotalPrime:             totalEur,
	}

	if NormalizeKey(in.Category) == CategoryLighting {
		result.Lighting = computeLighting(in, perUnitMwh)
		if result.Lighting != nil && !result.Lighting.MissingBase {
			result.TotalPrime = result.Lighting.TotalEur
		}
	}

	return result
}

// computeLighting derives the per-LED figures lighting products report
// instead of the generic multiplier label. The kWh-cumac reference for
// lighting is a per-watt figure; one LED's wattage scales it to a per-LED
// base. An unresolved wattage raises MissingBase so the display layer can
// warn instead of silently showing generic figures.
func computeLighting(in ValorisationInput, perUnitMwh float64) *LightingResult {
	if in.LedWatt <= 0 {
		return &LightingResult{MissingBase: true}
	}

	perLedMwh := perUnitMwh * in.LedWatt
	perLedEur := perLedMwh * in.DelegatePriceEurPerMwh
	totalMwh := perLedMwh * in.Multiplier

	return &LightingResult{
		PerLedMwh: perLedMwh,
		PerLedEur: perLedEur,
		TotalMwh:  totalMwh,
		TotalEur:  totalMwh * in.DelegatePriceEurPerMwh,
	}
}
