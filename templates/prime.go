package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PrimeRow is one product line of the valorisation summary, pre-formatted
// by the handler.
type PrimeRow struct {
	ProductCode     string
	ProductName     string
	MultiplierLabel string
	Multiplier      string
	PerUnitMwh      string
	PerUnitEur      string
	TotalMwh        string
	TotalEur        string
	TotalPrime      string
	Warning         string
}

// PrimeSummaryData feeds the CEE valorisation summary page.
type PrimeSummaryData struct {
	ProjectID    string
	ProjectName  string
	BuildingType string
	DelegateName string

	Rows []PrimeRow

	TotalMwh   string
	TotalEur   string
	TotalPrime string
}

// PrimeSummaryPage renders the full valorisation summary page.
func PrimeSummaryPage(data PrimeSummaryData) templ.Component {
	return page("Valorisation CEE — "+data.ProjectName, PrimeSummaryContent(data))
}

// PrimeSummaryContent renders the summary without the document shell.
func PrimeSummaryContent(data PrimeSummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>Valorisation CEE — %s</h1>
<p class="context">Type de bâtiment : <strong>%s</strong>`,
			templ.EscapeString(data.ProjectName),
			templ.EscapeString(buildingTypeOrDash(data.BuildingType)),
		)
		if err != nil {
			return err
		}
		if data.DelegateName != "" {
			if _, err := fmt.Fprintf(w, ` — Délégataire : <strong>%s</strong>`, templ.EscapeString(data.DelegateName)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</p>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<p class="actions">
<a href="/projects/%s/prime/export/excel">Export Excel</a>
<a href="/projects/%s/prime/export/pdf">Export PDF</a>
</p>`, templ.EscapeString(data.ProjectID), templ.EscapeString(data.ProjectID)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="prime">
<thead><tr>
<th>Code</th><th>Produit</th><th>Multiplicateur</th><th>Valeur</th>
<th>MWh / unité</th><th>€ / unité</th><th>MWh total</th><th>€ total</th><th>Prime</th>
</tr></thead>
<tbody>`); err != nil {
			return err
		}

		for _, r := range data.Rows {
			rowClass := ""
			if r.Warning != "" {
				rowClass = ` class="warning"`
			}
			_, err := fmt.Fprintf(w, `<tr%s><td>%s</td><td>%s`,
				rowClass,
				templ.EscapeString(r.ProductCode),
				templ.EscapeString(r.ProductName),
			)
			if err != nil {
				return err
			}
			if r.Warning != "" {
				if _, err := fmt.Fprintf(w, `<span class="warning-icon" title="%s">⚠</span>`, templ.EscapeString(r.Warning)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(w, `</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(r.MultiplierLabel),
				templ.EscapeString(r.Multiplier),
				templ.EscapeString(r.PerUnitMwh),
				templ.EscapeString(r.PerUnitEur),
				templ.EscapeString(r.TotalMwh),
				templ.EscapeString(r.TotalEur),
				templ.EscapeString(r.TotalPrime),
			)
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w, `</tbody>
<tfoot>
<tr><th colspan="6">Totaux</th><th>%s</th><th>%s</th><th>%s</th></tr>
</tfoot>
</table>`,
			templ.EscapeString(data.TotalMwh),
			templ.EscapeString(data.TotalEur),
			templ.EscapeString(data.TotalPrime),
		)
		return err
	})
}

func buildingTypeOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
