package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func samplePrimeExportData() PrimeExportData {
	lines := []LineResult{
		{
			ProductCode:     "ISO100",
			ProductName:     "Isolation combles perdus",
			MultiplierLabel: "Surface (m²)",
			Multiplier:      ptr(40.0),
			Result: &PrimeCeeResult{
				ValorisationPerUnitMwh: 0.5,
				ValorisationPerUnitEur: 2.5,
				ValorisationTotalMwh:   20,
				ValorisationTotalEur:   100,
				TotalPrime:             100,
			},
		},
		{
			ProductCode:          "PAC300",
			ProductName:          "Pompe à chaleur",
			MultiplierLabel:      "Puissance (kW)",
			MissingDynamicParams: true,
		},
	}

	return PrimeExportData{
		ProjectName:  "Rénovation Dupont",
		BuildingType: "Maison individuelle",
		DelegateName: "Delegataire A",
		CreatedDate:  "15 janv. 2026",
		Rows:         BuildPrimeExportRows(lines),
		TotalMwh:     FormatMWh(20),
		TotalEur:     FormatEUR(100),
		TotalPrime:   FormatEUR(100),
	}
}

func TestBuildPrimeExportRows(t *testing.T) {
	data := samplePrimeExportData()
	if len(data.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(data.Rows))
	}

	ok := data.Rows[0]
	if ok.Multiplier != "40" {
		t.Errorf("multiplier = %q, want 40", ok.Multiplier)
	}
	if ok.TotalEur != FormatEUR(100) {
		t.Errorf("totalEur = %q, want %q", ok.TotalEur, FormatEUR(100))
	}
	if ok.Warning != "" {
		t.Errorf("unexpected warning: %q", ok.Warning)
	}

	degraded := data.Rows[1]
	if degraded.Multiplier != "—" || degraded.TotalEur != "—" {
		t.Errorf("degraded row should show dashes: %+v", degraded)
	}
	if !strings.Contains(degraded.Warning, "Puissance (kW)") {
		t.Errorf("warning should name the missing parameter: %q", degraded.Warning)
	}
}

func TestBuildPrimeExportRows_LightingUsesPerLedFigures(t *testing.T) {
	lines := []LineResult{
		{
			ProductCode:     "ECL200",
			ProductName:     "Luminaires LED",
			MultiplierLabel: "Nombre de LED",
			Multiplier:      ptr(100.0),
			Result: &PrimeCeeResult{
				ValorisationPerUnitMwh: 0.03,
				ValorisationTotalMwh:   3,
				TotalPrime:             162,
				Lighting: &LightingResult{
					PerLedMwh: 0.27,
					PerLedEur: 1.62,
					TotalMwh:  27,
					TotalEur:  162,
				},
			},
		},
	}

	rows := BuildPrimeExportRows(lines)
	if rows[0].MultiplierLabel != "LED" {
		t.Errorf("lighting rows report per-LED units, got label %q", rows[0].MultiplierLabel)
	}
	if rows[0].PerUnitMwh != FormatMWh(0.27) {
		t.Errorf("per-unit MWh = %q, want per-LED figure %q", rows[0].PerUnitMwh, FormatMWh(0.27))
	}
	if rows[0].TotalPrime != FormatEUR(162) {
		t.Errorf("totalPrime = %q, want %q", rows[0].TotalPrime, FormatEUR(162))
	}
}

func TestGeneratePrimeExcel(t *testing.T) {
	data := samplePrimeExportData()

	result, err := GeneratePrimeExcel(data)
	if err != nil {
		t.Fatalf("GeneratePrimeExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePrimeExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Rénovation Dupont" {
		t.Errorf("expected sheet name 'Rénovation Dupont', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if !strings.Contains(title, "Rénovation Dupont") {
		t.Errorf("title cell = %q, want project name", title)
	}

	code, _ := f.GetCellValue(sheets[0], "A6")
	if code != "ISO100" {
		t.Errorf("first data row code = %q, want ISO100", code)
	}
}

func TestGeneratePrimeExcel_EmptyRows(t *testing.T) {
	data := PrimeExportData{
		ProjectName: "Projet vide",
		CreatedDate: "15 janv. 2026",
		TotalMwh:    FormatMWh(0),
		TotalEur:    FormatEUR(0),
		TotalPrime:  FormatEUR(0),
	}

	result, err := GeneratePrimeExcel(data)
	if err != nil {
		t.Fatalf("GeneratePrimeExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("empty summary should still produce a workbook")
	}
}

func TestGeneratePrimePDF(t *testing.T) {
	data := samplePrimeExportData()

	result, err := GeneratePrimePDF(&data)
	if err != nil {
		t.Fatalf("GeneratePrimePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePrimePDF() returned empty bytes")
	}
	if !bytes.HasPrefix(result, []byte("%PDF")) {
		t.Error("result does not look like a PDF document")
	}
}
