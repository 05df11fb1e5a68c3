package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// categoryDefaultMultiplierField maps a product category to the schema field
// that drives its multiplier when the catalog still carries the legacy
// "quantity" sentinel. The rule set lives in data, not in per-category code.
var categoryDefaultMultiplierField = map[string]string{
	"insulation": "surface",
	"heating":    "surface_chauffee",
}

// ResolveMultiplier determines which single numeric quantity drives the
// valorisation of one product line.
//
// Resolution order, first applicable branch wins:
//  1. schema-driven field from CeeConfig.PrimeMultiplierParam (with the
//     category default substituted for the legacy sentinel);
//  2. the product's FormulaConfig;
//  3. the line's raw quantity.
//
// Product configuration went through three generations (raw quantity, then
// schema fields, then formulas); the order must not change or older catalog
// records stop computing.
func ResolveMultiplier(p *CatalogProduct, line ProductLine) MultiplierResolution {
	if res, applied := resolveSchemaMultiplier(p, line); applied {
		return res
	}
	if p.Formula != nil {
		return resolveFormulaMultiplier(p.Formula, line)
	}
	if q, ok := ToPositiveNumber(line.Quantity); ok {
		return MultiplierResolution{Value: &q, Label: "Quantité"}
	}
	// Nothing configured and no usable quantity: not a data-entry problem.
	return MultiplierResolution{}
}

// resolveSchemaMultiplier handles tier 1. The second return value reports
// whether the tier applied at all, i.e. whether the effective multiplier key
// names a real schema field rather than the legacy sentinel.
func resolveSchemaMultiplier(p *CatalogProduct, line ProductLine) (MultiplierResolution, bool) {
	if p.Cee == nil {
		return MultiplierResolution{}, false
	}

	key := strings.TrimSpace(p.Cee.PrimeMultiplierParam)
	if key == "" {
		return MultiplierResolution{}, false
	}
	if NormalizeKey(key) == LegacyQuantityParam {
		// A formula expression marks the product as formula-driven; the
		// sentinel then falls through to tier 2 instead of picking up the
		// category default field.
		if strings.TrimSpace(p.Cee.FormulaExpression) != "" {
			return MultiplierResolution{}, false
		}
		def, ok := categoryDefaultMultiplierField[p.EffectiveCategory()]
		if !ok {
			return MultiplierResolution{}, false
		}
		key = def
	}

	coefficient := 1.0
	if c, ok := ToPositiveNumber(p.Cee.PrimeMultiplierCoefficient); ok {
		coefficient = c
	}

	label := schemaFieldLabel(p.Schema, key)
	display := label
	if display == "" {
		display = key
	}

	value, found := findDynamicParam(line.DynamicParams, key, label)
	if !found {
		return MultiplierResolution{Label: display, MissingDynamicParams: true}, true
	}

	v := value * coefficient
	return MultiplierResolution{Value: &v, Label: withCoefficient(display, coefficient)}, true
}

// resolveFormulaMultiplier handles tier 2.
func resolveFormulaMultiplier(f *FormulaConfig, line ProductLine) MultiplierResolution {
	coefficient := 1.0
	if c, ok := ToPositiveNumber(f.Coefficient); ok {
		coefficient = c
	}

	display := f.VariableLabel
	if display == "" {
		display = f.VariableKey
	}

	if NormalizeKey(f.VariableKey) == FormulaQuantityKey {
		q, ok := ToPositiveNumber(line.Quantity)
		if !ok {
			return MultiplierResolution{Label: display, MissingDynamicParams: true}
		}
		v := q * coefficient
		return MultiplierResolution{Value: &v, Label: withCoefficient(display, coefficient)}
	}

	if value, found := findDynamicParam(line.DynamicParams, f.VariableKey, f.VariableLabel); found {
		v := value * coefficient
		return MultiplierResolution{Value: &v, Label: withCoefficient(display, coefficient)}
	}
	if fallback, ok := ToPositiveNumber(f.VariableValue); ok {
		v := fallback * coefficient
		return MultiplierResolution{Value: &v, Label: withCoefficient(display, coefficient)}
	}
	return MultiplierResolution{Label: display, MissingDynamicParams: true}
}

// schemaFieldLabel returns the human label of the schema field matching key,
// or "" when the schema has no label for it.
func schemaFieldLabel(schema []SchemaField, key string) string {
	want := NormalizeKey(key)
	if want == "" {
		return ""
	}
	for _, f := range schema {
		if NormalizeKey(f.Name) == want {
			return f.Label
		}
	}
	return ""
}

// findDynamicParam searches the dynamic parameters for a positive number
// under any of the candidate keys, tried in order with normalized matching.
// Keys are visited in sorted order so the result does not depend on map
// iteration order.
func findDynamicParam(params map[string]any, candidates ...string) (float64, bool) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, candidate := range candidates {
		want := NormalizeKey(candidate)
		if want == "" {
			continue
		}
		for _, key := range keys {
			if NormalizeKey(key) != want {
				continue
			}
			if v, ok := ToPositiveNumber(params[key]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// withCoefficient suffixes the display label with the coefficient notation
// when the coefficient is not 1.
func withCoefficient(label string, coefficient float64) string {
	if coefficient == 1 {
		return label
	}
	return fmt.Sprintf("%s × %s", label, strconv.FormatFloat(coefficient, 'f', -1, 64))
}
