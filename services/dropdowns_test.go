package services

import "testing"

// Building-type matching is normalized, so two options that normalize to the
// same key would silently share kWh-cumac rows.
func TestBuildingTypeOptions_DistinctNormalizedKeys(t *testing.T) {
	seen := make(map[string]string, len(BuildingTypeOptions))
	for _, opt := range BuildingTypeOptions {
		key := NormalizeKey(opt)
		if key == "" {
			t.Errorf("option %q normalizes to an empty key", opt)
		}
		if prev, ok := seen[key]; ok {
			t.Errorf("options %q and %q collide on normalized key %q", prev, opt, key)
		}
		seen[key] = opt
	}
}

func TestCategoryOptions_IncludeLighting(t *testing.T) {
	for _, opt := range CategoryOptions {
		if NormalizeKey(opt) == CategoryLighting {
			return
		}
	}
	t.Errorf("category options %v do not include %q", CategoryOptions, CategoryLighting)
}
