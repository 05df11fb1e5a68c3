package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"renodesk/config"
	"renodesk/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Maison Dupont", "Maison-Dupont"},
		{"slashes to hyphens", "lot/a", "lot-a"},
		{"backslashes", "lot\\a", "lot-a"},
		{"colons", "lot:a", "lot-a"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandlePrimeExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Maison Dupont", "Maison individuelle")
	testhelpers.CreateTestDelegate(t, app, proj, "Objectif EcoEnergie", 5)
	testhelpers.CreateTestPrimeSettings(t, app, 2)

	product := testhelpers.CreateTestProduct(t, app, "ISO100", "Isolation combles", "insulation",
		[]map[string]any{{"name": "surface", "label": "Surface isolée (m²)"}},
		map[string]any{"primeMultiplierParam": "surface"},
		nil)
	testhelpers.CreateTestKwhCumac(t, app, product.Id, "Maison individuelle", 250)
	testhelpers.CreateTestProjectLine(t, app, proj.Id, product.Id, 1, map[string]any{"surface": 40})

	req := httptest.NewRequest(http.MethodGet, "/projects/"+proj.Id+"/prime/export/excel", nil)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePrimeExportExcel(app, config.Config{})(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid xlsx: %v", err)
	}
	defer f.Close()
}

func TestHandlePrimeExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	proj := testhelpers.CreateTestProject(t, app, "Maison Dupont", "Maison individuelle")
	testhelpers.CreateTestPrimeSettings(t, app, 2)

	product := testhelpers.CreateTestProduct(t, app, "ISO100", "Isolation combles", "insulation",
		[]map[string]any{{"name": "surface"}},
		map[string]any{"primeMultiplierParam": "surface"},
		nil)
	testhelpers.CreateTestKwhCumac(t, app, product.Id, "Maison individuelle", 250)
	testhelpers.CreateTestProjectLine(t, app, proj.Id, product.Id, 1, map[string]any{"surface": 40})

	req := httptest.NewRequest(http.MethodGet, "/projects/"+proj.Id+"/prime/export/pdf", nil)
	req.SetPathValue("id", proj.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePrimeExportPDF(app, config.Config{})(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("response does not start with a PDF header")
	}
}

func TestHandlePrimeExport_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/nonexistent/prime/export/excel", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandlePrimeExportExcel(app, config.Config{})(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
