package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renodesk/config"
	"renodesk/services"
	"renodesk/templates"
)

// LoadedProject bundles the project record with the computation snapshot
// built from it.
type LoadedProject struct {
	Record *core.Record
	Input  services.ProjectPrimeInput
}

// BuildPrimeInput fetches a project and everything its valorisation depends
// on: product lines with their catalog products, kWh cumac references, the
// delegate and the organization prime settings. The snapshot is read-only;
// nothing computed from it is written back.
func BuildPrimeInput(app *pocketbase.PocketBase, cfg config.Config, projectID string) (LoadedProject, error) {
	projectRecord, err := app.FindRecordById("projects", projectID)
	if err != nil {
		return LoadedProject{}, fmt.Errorf("project not found: %w", err)
	}

	linesCol, err := app.FindCollectionByNameOrId("project_products")
	if err != nil {
		return LoadedProject{}, fmt.Errorf("collection not found: %w", err)
	}

	kwhCol, err := app.FindCollectionByNameOrId("kwh_cumac")
	if err != nil {
		return LoadedProject{}, fmt.Errorf("collection not found: %w", err)
	}

	lineRecords, err := app.FindRecordsByFilter(linesCol, "project = {:projectId}", "sort_order", 0, 0, map[string]any{"projectId": projectID})
	if err != nil {
		lineRecords = nil
	}

	var lines []services.ProductLine
	for _, lr := range lineRecords {
		productID := lr.GetString("product")
		if productID == "" {
			continue
		}
		productRecord, err := app.FindRecordById("products", productID)
		if err != nil {
			log.Printf("prime_input: product %s referenced by line %s not found: %v", productID, lr.Id, err)
			continue
		}

		product := &services.CatalogProduct{
			Code:     productRecord.GetString("code"),
			Name:     productRecord.GetString("name"),
			Category: productRecord.GetString("category"),
		}
		if err := productRecord.UnmarshalJSONField("params_schema", &product.Schema); err != nil {
			product.Schema = nil
		}
		if err := productRecord.UnmarshalJSONField("default_params", &product.DefaultParams); err != nil {
			product.DefaultParams = nil
		}
		var cee services.CeeConfig
		if err := productRecord.UnmarshalJSONField("cee_config", &cee); err == nil {
			product.Cee = &cee
		}
		var formula services.FormulaConfig
		if err := productRecord.UnmarshalJSONField("formula_config", &formula); err == nil && formula != (services.FormulaConfig{}) {
			product.Formula = &formula
		}

		kwhRecords, err := app.FindRecordsByFilter(kwhCol, "product = {:productId}", "", 0, 0, map[string]any{"productId": productRecord.Id})
		if err != nil {
			kwhRecords = nil
		}
		for _, kr := range kwhRecords {
			product.KwhCumac = append(product.KwhCumac, services.KwhCumacEntry{
				BuildingType: kr.GetString("building_type"),
				KwhCumac:     kr.GetFloat("kwh_cumac"),
			})
		}

		var dynamicParams map[string]any
		if err := lr.UnmarshalJSONField("dynamic_params", &dynamicParams); err != nil {
			dynamicParams = nil
		}
		dynamicParams = mergeDefaultParams(dynamicParams, product.DefaultParams)

		lines = append(lines, services.ProductLine{
			Product:       product,
			Quantity:      lr.GetFloat("quantity"),
			DynamicParams: dynamicParams,
		})
	}

	input := services.ProjectPrimeInput{
		BuildingType:   projectRecord.GetString("building_type"),
		Lines:          lines,
		Settings:       loadPrimeSettings(app),
		DefaultLedWatt: cfg.DefaultLedWatt,
	}

	if delegateID := projectRecord.GetString("delegate"); delegateID != "" {
		delegateRecord, err := app.FindRecordById("delegates", delegateID)
		if err != nil {
			log.Printf("prime_input: delegate %s not found: %v", delegateID, err)
		} else {
			input.Delegate = &services.Delegate{
				Name:           delegateRecord.GetString("name"),
				PriceEurPerMwh: delegateRecord.GetFloat("price_eur_per_mwh"),
			}
		}
	}

	return LoadedProject{Record: projectRecord, Input: input}, nil
}

// mergeDefaultParams fills line parameters the user left empty with the
// catalog defaults. Line values always win.
func mergeDefaultParams(params, defaults map[string]any) map[string]any {
	if len(defaults) == 0 {
		return params
	}
	if params == nil {
		params = make(map[string]any, len(defaults))
	}
	for key, value := range defaults {
		if _, ok := params[key]; !ok {
			params[key] = value
		}
	}
	return params
}

// loadPrimeSettings reads the organization bonification; an empty collection
// leaves the zero value, which the core replaces with its default.
func loadPrimeSettings(app *pocketbase.PocketBase) services.PrimeSettings {
	settingsCol, err := app.FindCollectionByNameOrId("prime_settings")
	if err != nil {
		return services.PrimeSettings{}
	}
	records, err := app.FindRecordsByFilter(settingsCol, "", "-created", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return services.PrimeSettings{}
	}
	return services.PrimeSettings{Bonification: records[0].GetFloat("bonification")}
}

// HandleProjectPrime returns a handler that renders the CEE valorisation
// summary for one project.
func HandleProjectPrime(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		loaded, err := BuildPrimeInput(app, cfg, projectID)
		if err != nil {
			log.Printf("prime_view: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		computation := services.ComputeProjectPrime(loaded.Input)
		rows := services.BuildPrimeExportRows(computation.Lines)

		data := templates.PrimeSummaryData{
			ProjectID:    loaded.Record.Id,
			ProjectName:  loaded.Record.GetString("name"),
			BuildingType: loaded.Input.BuildingType,
			Rows:         make([]templates.PrimeRow, 0, len(rows)),
			TotalMwh:     services.FormatMWh(computation.Totals.TotalValorisationMwh),
			TotalEur:     services.FormatEUR(computation.Totals.TotalValorisationEur),
			TotalPrime:   services.FormatEUR(computation.Totals.TotalPrime),
		}
		if loaded.Input.Delegate != nil {
			data.DelegateName = loaded.Input.Delegate.Name
		}
		for _, r := range rows {
			data.Rows = append(data.Rows, templates.PrimeRow{
				ProductCode:     r.ProductCode,
				ProductName:     r.ProductName,
				MultiplierLabel: r.MultiplierLabel,
				Multiplier:      r.Multiplier,
				PerUnitMwh:      r.PerUnitMwh,
				PerUnitEur:      r.PerUnitEur,
				TotalMwh:        r.TotalMwh,
				TotalEur:        r.TotalEur,
				TotalPrime:      r.TotalPrime,
				Warning:         r.Warning,
			})
		}

		component := templates.PrimeSummaryPage(data)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}
