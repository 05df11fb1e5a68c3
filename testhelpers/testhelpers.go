// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renodesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProject creates a project record and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, name, buildingType string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("projects")
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("building_type", buildingType)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return record
}

// CreateTestProduct creates a catalog product record. The schema, CEE config
// and formula config maps may be nil.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, code, name, category string,
	paramsSchema []map[string]any, ceeConfig, formulaConfig map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("name", name)
	record.Set("category", category)
	if paramsSchema != nil {
		record.Set("params_schema", paramsSchema)
	}
	if ceeConfig != nil {
		record.Set("cee_config", ceeConfig)
	}
	if formulaConfig != nil {
		record.Set("formula_config", formulaConfig)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestKwhCumac creates a kWh-cumac reference row for a product.
func CreateTestKwhCumac(t *testing.T, app *pocketbase.PocketBase, productID, buildingType string, kwhCumac float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("kwh_cumac")
	if err != nil {
		t.Fatalf("failed to find kwh_cumac collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("product", productID)
	record.Set("building_type", buildingType)
	record.Set("kwh_cumac", kwhCumac)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test kwh_cumac row: %v", err)
	}

	return record
}

// CreateTestProjectLine creates a project-product line record.
func CreateTestProjectLine(t *testing.T, app *pocketbase.PocketBase, projectID, productID string,
	quantity float64, dynamicParams map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("project_products")
	if err != nil {
		t.Fatalf("failed to find project_products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project", projectID)
	record.Set("product", productID)
	record.Set("quantity", quantity)
	if dynamicParams != nil {
		record.Set("dynamic_params", dynamicParams)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test project line: %v", err)
	}

	return record
}

// CreateTestDelegate creates a delegate record and links it to the project.
func CreateTestDelegate(t *testing.T, app *pocketbase.PocketBase, project *core.Record,
	name string, priceEurPerMwh float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("delegates")
	if err != nil {
		t.Fatalf("failed to find delegates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("price_eur_per_mwh", priceEurPerMwh)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test delegate: %v", err)
	}

	project.Set("delegate", record.Id)
	if err := app.Save(project); err != nil {
		t.Fatalf("failed to link delegate to project: %v", err)
	}

	return record
}

// CreateTestPrimeSettings creates the organization prime settings record.
func CreateTestPrimeSettings(t *testing.T, app *pocketbase.PocketBase, bonification float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("prime_settings")
	if err != nil {
		t.Fatalf("failed to find prime_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("bonification", bonification)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test prime settings: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
