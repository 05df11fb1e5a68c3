package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renodesk/config"
	"renodesk/services"
)

// buildPrimeExportData loads a project, runs the valorisation and packages
// the formatted rows for the file generators.
func buildPrimeExportData(app *pocketbase.PocketBase, cfg config.Config, projectID string) (services.PrimeExportData, error) {
	loaded, err := BuildPrimeInput(app, cfg, projectID)
	if err != nil {
		return services.PrimeExportData{}, err
	}

	computation := services.ComputeProjectPrime(loaded.Input)

	createdDate := "—"
	if dt := loaded.Record.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02/01/2006")
	}

	data := services.PrimeExportData{
		ProjectName:  loaded.Record.GetString("name"),
		BuildingType: loaded.Input.BuildingType,
		CreatedDate:  createdDate,
		Rows:         services.BuildPrimeExportRows(computation.Lines),
		TotalMwh:     services.FormatMWh(computation.Totals.TotalValorisationMwh),
		TotalEur:     services.FormatEUR(computation.Totals.TotalValorisationEur),
		TotalPrime:   services.FormatEUR(computation.Totals.TotalPrime),
	}
	if loaded.Input.Delegate != nil {
		data.DelegateName = loaded.Input.Delegate.Name
	}
	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandlePrimeExportExcel returns a handler that generates and downloads the
// Excel valorisation summary for a project.
func HandlePrimeExportExcel(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildPrimeExportData(app, cfg, projectID)
		if err != nil {
			log.Printf("prime_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		xlsxBytes, err := services.GeneratePrimeExcel(data)
		if err != nil {
			log.Printf("prime_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("CEE_%s_%d.xlsx", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandlePrimeExportPDF returns a handler that generates and downloads the
// PDF valorisation summary for a project.
func HandlePrimeExportPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.String(http.StatusBadRequest, "Missing project ID")
		}

		data, err := buildPrimeExportData(app, cfg, projectID)
		if err != nil {
			log.Printf("prime_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Project not found")
		}

		pdfBytes, err := services.GeneratePrimePDF(&data)
		if err != nil {
			log.Printf("prime_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("CEE_%s_%d.pdf", sanitizeFilename(data.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
