package services

// KwhLookup is the outcome of the kWh-cumac reference lookup for one product
// in one building-type context.
type KwhLookup struct {
	Value      float64
	MissingKwh bool
}

// LookupKwhCumac finds the applicable kWh-cumac reference for the project's
// building type. Matching is normalized but never partial: an unmatched
// building type is a hard "missing" condition, not a silent default.
// MissingKwh is true whenever the building type is blank or no matching row
// carries a positive value.
func LookupKwhCumac(entries []KwhCumacEntry, buildingType string) KwhLookup {
	want := NormalizeKey(buildingType)
	if want == "" {
		return KwhLookup{MissingKwh: true}
	}
	for _, entry := range entries {
		if NormalizeKey(entry.BuildingType) != want {
			continue
		}
		if v, ok := ToPositiveNumber(entry.KwhCumac); ok {
			return KwhLookup{Value: v}
		}
	}
	return KwhLookup{MissingKwh: true}
}
