package services

import "strings"

// Legacy configuration sentinels. Older catalog records predate schema-driven
// multipliers and formula configs; these markers keep them computing the way
// they always did.
const (
	// LegacyQuantityParam is the primeMultiplierParam value meaning
	// "the multiplier is the line's raw quantity".
	LegacyQuantityParam = "quantity"

	// FormulaQuantityKey is the formula variableKey meaning
	// "use the line's raw quantity as the variable".
	FormulaQuantityKey = "quantity"
)

// EdgeProductPrefix marks helper/edge catalog products. Lines whose product
// code starts with this prefix are excluded from every computation and total.
const EdgeProductPrefix = "ECO"

// CategoryLighting is the product category with per-LED reporting.
const CategoryLighting = "lighting"

// SchemaField describes one entry of a product's parameter schema. Only the
// name and the optional display label matter here; validation lives elsewhere.
type SchemaField struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// CeeConfig is the per-product pricing-rule configuration.
type CeeConfig struct {
	PrimeMultiplierParam       string  `json:"primeMultiplierParam,omitempty"`
	PrimeMultiplierCoefficient float64 `json:"primeMultiplierCoefficient,omitempty"`
	Category                   string  `json:"category,omitempty"`
	FormulaExpression          string  `json:"formulaExpression,omitempty"`
	LedWattConstant            float64 `json:"ledWattConstant,omitempty"`
}

// FormulaConfig is the formula-driven multiplier resolution path.
// VariableKey is either a dynamic-parameter key or FormulaQuantityKey.
type FormulaConfig struct {
	VariableKey   string  `json:"variableKey"`
	VariableLabel string  `json:"variableLabel,omitempty"`
	VariableValue float64 `json:"variableValue,omitempty"`
	Coefficient   float64 `json:"coefficient,omitempty"`
}

// KwhCumacEntry is the regulatory energy-savings reference for one product in
// one building-type context, in kWh cumac per unit.
type KwhCumacEntry struct {
	BuildingType string
	KwhCumac     float64
}

// CatalogProduct is the read-only catalog snapshot a line computation needs.
type CatalogProduct struct {
	Code          string
	Name          string
	Category      string
	Schema        []SchemaField
	DefaultParams map[string]any
	Cee           *CeeConfig
	Formula       *FormulaConfig
	KwhCumac      []KwhCumacEntry
}

// EffectiveCategory returns the CEE category override when configured,
// otherwise the product's own category, normalized for comparisons.
func (p *CatalogProduct) EffectiveCategory() string {
	if p.Cee != nil && p.Cee.Category != "" {
		return NormalizeKey(p.Cee.Category)
	}
	return NormalizeKey(p.Category)
}

// IsEdge reports whether the product is a reserved helper/edge product.
func (p *CatalogProduct) IsEdge() bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(p.Code)), EdgeProductPrefix)
}

// ProductLine joins a project and a catalog product: the user-entered
// quantity plus the schema-described dynamic parameters.
type ProductLine struct {
	Product       *CatalogProduct
	Quantity      float64
	DynamicParams map[string]any
}

// Delegate is the financing partner buying normalized energy units.
type Delegate struct {
	Name           string
	PriceEurPerMwh float64
}

// PrimeSettings carries the organization-wide bonification factor.
type PrimeSettings struct {
	Bonification float64
}

// defaultBonification applies when the organization setting is unset or
// non-positive.
const defaultBonification = 2

// EffectiveBonification returns the configured bonification, or the default
// when it is unset or non-positive.
func (s PrimeSettings) EffectiveBonification() float64 {
	if s.Bonification > 0 {
		return s.Bonification
	}
	return defaultBonification
}

// MultiplierResolution is the outcome of the three-tier multiplier lookup.
// Value is nil when no multiplier could be determined; MissingDynamicParams
// distinguishes "the configured parameter is absent from the line" (a
// data-entry warning) from "nothing is configured at all".
type MultiplierResolution struct {
	Value                *float64
	Label                string
	MissingDynamicParams bool
}

// LightingResult is the per-LED sub-result for lighting-category products.
type LightingResult struct {
	PerLedMwh   float64
	PerLedEur   float64
	TotalMwh    float64
	TotalEur    float64
	MissingBase bool
}

// PrimeCeeResult holds the computed valorisation for one product line.
// It is derived fresh on every invocation and never persisted.
type PrimeCeeResult struct {
	ValorisationPerUnitMwh float64
	ValorisationPerUnitEur float64
	ValorisationTotalMwh   float64
	ValorisationTotalEur   float64
	TotalPrime             float64
	Lighting               *LightingResult
}

// LineResult pairs a product line with its computed result and the advisory
// flags the display layer turns into warnings. Result is nil when the line
// could not be valorised; that is never an error.
type LineResult struct {
	ProductCode          string
	ProductName          string
	Category             string
	Quantity             float64
	Multiplier           *float64
	MultiplierLabel      string
	MissingDynamicParams bool
	MissingKwh           bool
	Result               *PrimeCeeResult
}

// ProjectCeeTotals aggregates per-line results at the project level.
type ProjectCeeTotals struct {
	TotalValorisationMwh float64
	TotalValorisationEur float64
	TotalPrime           float64
}
