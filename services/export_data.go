package services

// PrimeExportRow is one product line of the valorisation summary export.
type PrimeExportRow struct {
	ProductCode     string
	ProductName     string
	MultiplierLabel string
	Multiplier      string // formatted; "—" when unresolved
	PerUnitMwh      string
	PerUnitEur      string
	TotalMwh        string
	TotalEur        string
	TotalPrime      string
	Warning         string // human-readable reason, empty when fully computed
}

// PrimeExportData holds everything the Excel/PDF generators need.
type PrimeExportData struct {
	ProjectName  string
	BuildingType string
	DelegateName string
	CreatedDate  string

	Rows []PrimeExportRow

	TotalMwh   string
	TotalEur   string
	TotalPrime string
}

// BuildPrimeExportRows converts computed line results into formatted export
// rows. Lines that could not be valorised keep their warning text and dashes
// instead of figures.
func BuildPrimeExportRows(lines []LineResult) []PrimeExportRow {
	rows := make([]PrimeExportRow, 0, len(lines))
	for _, lr := range lines {
		row := PrimeExportRow{
			ProductCode:     lr.ProductCode,
			ProductName:     lr.ProductName,
			MultiplierLabel: lr.MultiplierLabel,
			Multiplier:      "—",
			PerUnitMwh:      "—",
			PerUnitEur:      "—",
			TotalMwh:        "—",
			TotalEur:        "—",
			TotalPrime:      "—",
			Warning:         lr.WarningReason(),
		}
		if lr.Multiplier != nil {
			row.Multiplier = FormatQuantity(*lr.Multiplier)
		}
		if r := lr.Result; r != nil {
			if l := r.Lighting; l != nil && !l.MissingBase {
				// Lighting products report per-LED figures.
				row.MultiplierLabel = "LED"
				row.PerUnitMwh = FormatMWh(l.PerLedMwh)
				row.PerUnitEur = FormatEUR(l.PerLedEur)
				row.TotalMwh = FormatMWh(l.TotalMwh)
				row.TotalEur = FormatEUR(l.TotalEur)
			} else {
				row.PerUnitMwh = FormatMWh(r.ValorisationPerUnitMwh)
				row.PerUnitEur = FormatEUR(r.ValorisationPerUnitEur)
				row.TotalMwh = FormatMWh(r.ValorisationTotalMwh)
				row.TotalEur = FormatEUR(r.ValorisationTotalEur)
			}
			row.TotalPrime = FormatEUR(r.TotalPrime)
		}
		rows = append(rows, row)
	}
	return rows
}
