package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type kwhDef struct {
	buildingType string
	kwhCumac     float64
}

type productDef struct {
	code          string
	name          string
	category      string
	paramsSchema  []map[string]any
	defaultParams map[string]any
	ceeConfig     map[string]any
	formulaConfig map[string]any
	kwhCumac      []kwhDef
}

type lineDef struct {
	productCode   string
	quantity      float64
	dynamicParams map[string]any
	sortOrder     int
}

// seedProducts is a small but representative slice of the renovation
// catalog: one product per multiplier generation (schema field, formula,
// raw quantity), one lighting product and one reserved ECO helper.
var seedProducts = []productDef{
	{
		code:     "ISO100",
		name:     "Isolation combles perdus",
		category: "insulation",
		paramsSchema: []map[string]any{
			{"name": "surface", "label": "Surface (m²)"},
			{"name": "epaisseur", "label": "Épaisseur (mm)"},
		},
		defaultParams: map[string]any{"epaisseur": 300},
		ceeConfig:     map[string]any{"primeMultiplierParam": "surface"},
		kwhCumac: []kwhDef{
			{"Maison individuelle", 1700},
			{"Appartement", 1100},
			{"Immeuble collectif", 1200},
		},
	},
	{
		code:     "PAC200",
		name:     "Pompe à chaleur air/eau",
		category: "heating",
		paramsSchema: []map[string]any{
			{"name": "surface_chauffee", "label": "Surface chauffée (m²)"},
		},
		// Legacy record: the sentinel is substituted by the heating
		// category default (surface_chauffee).
		ceeConfig: map[string]any{"primeMultiplierParam": "quantity"},
		kwhCumac: []kwhDef{
			{"Maison individuelle", 250},
			{"Appartement", 180},
		},
	},
	{
		code:     "ECL300",
		name:     "Luminaires LED extérieurs",
		category: "lighting",
		ceeConfig: map[string]any{
			"ledWattConstant":   9,
			"formulaExpression": "nombre_led * kwh_base",
		},
		formulaConfig: map[string]any{
			"variableKey":   "quantity",
			"variableLabel": "Nombre de LED",
		},
		kwhCumac: []kwhDef{
			{"Maison individuelle", 15},
			{"Bâtiment tertiaire", 21},
		},
	},
	{
		code:     "VMC400",
		name:     "VMC double flux",
		category: "ventilation",
		kwhCumac: []kwhDef{
			{"Maison individuelle", 4400},
		},
	},
	{
		// Reserved helper product: excluded from every display and
		// computation.
		code:     "ECO001",
		name:     "Frais de gestion dossier",
		category: "misc",
	},
}

var seedLines = []lineDef{
	{productCode: "ISO100", quantity: 1, dynamicParams: map[string]any{"surface": 80, "epaisseur": 300}, sortOrder: 1},
	{productCode: "PAC200", quantity: 1, dynamicParams: map[string]any{"surface_chauffee": 110}, sortOrder: 2},
	{productCode: "ECL300", quantity: 24, sortOrder: 3},
	{productCode: "ECO001", quantity: 1, sortOrder: 4},
}

// Seed populates the catalog, one delegate, the organization prime settings
// and a demo project. The bonification argument seeds the organization
// settings; pass 0 to leave it to the computation default. It is safe to
// call on every startup because it returns early if any project records
// already exist.
func Seed(app *pocketbase.PocketBase, bonification float64) error {
	// ── idempotency: skip if projects already exist ──────────────────
	projectsCol, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	existing, err := app.FindAllRecords(projectsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query projects: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: projects collection is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	kwhCol, err := app.FindCollectionByNameOrId("kwh_cumac")
	if err != nil {
		return fmt.Errorf("seed: could not find kwh_cumac collection: %w", err)
	}
	delegatesCol, err := app.FindCollectionByNameOrId("delegates")
	if err != nil {
		return fmt.Errorf("seed: could not find delegates collection: %w", err)
	}
	settingsCol, err := app.FindCollectionByNameOrId("prime_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find prime_settings collection: %w", err)
	}
	linesCol, err := app.FindCollectionByNameOrId("project_products")
	if err != nil {
		return fmt.Errorf("seed: could not find project_products collection: %w", err)
	}

	// ── catalog products + kwh references ────────────────────────────
	productIDs := make(map[string]string, len(seedProducts))
	for _, def := range seedProducts {
		record := core.NewRecord(productsCol)
		record.Set("code", def.code)
		record.Set("name", def.name)
		record.Set("category", def.category)
		if def.paramsSchema != nil {
			record.Set("params_schema", def.paramsSchema)
		}
		if def.defaultParams != nil {
			record.Set("default_params", def.defaultParams)
		}
		if def.ceeConfig != nil {
			record.Set("cee_config", def.ceeConfig)
		}
		if def.formulaConfig != nil {
			record.Set("formula_config", def.formulaConfig)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save product %s: %w", def.code, err)
		}
		productIDs[def.code] = record.Id

		for _, k := range def.kwhCumac {
			row := core.NewRecord(kwhCol)
			row.Set("product", record.Id)
			row.Set("building_type", k.buildingType)
			row.Set("kwh_cumac", k.kwhCumac)
			if err := app.Save(row); err != nil {
				return fmt.Errorf("seed: could not save kwh row for %s: %w", def.code, err)
			}
		}
	}

	// ── delegate + organization settings ─────────────────────────────
	delegate := core.NewRecord(delegatesCol)
	delegate.Set("name", "Objectif EcoEnergie")
	delegate.Set("price_eur_per_mwh", 5.35)
	if err := app.Save(delegate); err != nil {
		return fmt.Errorf("seed: could not save delegate: %w", err)
	}

	settings := core.NewRecord(settingsCol)
	settings.Set("bonification", bonification)
	if err := app.Save(settings); err != nil {
		return fmt.Errorf("seed: could not save prime settings: %w", err)
	}

	// ── demo project with one line per catalog generation ────────────
	project := core.NewRecord(projectsCol)
	project.Set("name", "Rénovation globale — Maison Dupont")
	project.Set("client_name", "M. et Mme Dupont")
	project.Set("building_type", "Maison individuelle")
	project.Set("delegate", delegate.Id)
	if err := app.Save(project); err != nil {
		return fmt.Errorf("seed: could not save project: %w", err)
	}

	for _, def := range seedLines {
		productID, ok := productIDs[def.productCode]
		if !ok {
			return fmt.Errorf("seed: unknown product code %s", def.productCode)
		}
		line := core.NewRecord(linesCol)
		line.Set("project", project.Id)
		line.Set("product", productID)
		line.Set("quantity", def.quantity)
		if def.dynamicParams != nil {
			line.Set("dynamic_params", def.dynamicParams)
		}
		line.Set("sort_order", def.sortOrder)
		if err := app.Save(line); err != nil {
			return fmt.Errorf("seed: could not save project line %s: %w", def.productCode, err)
		}
	}

	log.Printf("seed: inserted %d products and 1 demo project", len(seedProducts))
	return nil
}
