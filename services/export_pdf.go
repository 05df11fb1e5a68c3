package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePrimePDF creates the CEE valorisation summary PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePrimePDF(data *PrimeExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPrimeHeader(m, data)
	addPrimeLinesTable(m, data)
	addPrimeTotals(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPrimeHeader adds the project name, document title and context line.
func addPrimeHeader(m core.Maroto, data *PrimeExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.ProjectName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("VALORISATION CEE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	context := "Type de bâtiment : " + data.BuildingType
	if data.DelegateName != "" {
		context += " | Délégataire : " + data.DelegateName
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(context, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New("Date : "+data.CreatedDate, props.Text{
					Size:  8,
					Align: align.Right,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	// Divider spacer
	m.AddRows(row.New(3))
}

// addPrimeLinesTable adds the per-line valorisation table.
func addPrimeLinesTable(m core.Maroto, data *PrimeExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("Code", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Produit", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Multiplicateur", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Valeur", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("MWh / unité", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("€ / unité", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("MWh total", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("€ total", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Avertissement", headerTextLeft)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	warningColor := &props.Color{Red: 180, Green: 83, Blue: 9}

	for i, r := range data.Rows {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}
		warningText := props.Text{Size: 7, Align: align.Left, Color: warningColor}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(r.ProductCode, bodyTextLeft)),
			col.New(2).Add(text.New(r.ProductName, bodyTextLeft)),
			col.New(1).Add(text.New(r.MultiplierLabel, bodyText)),
			col.New(1).Add(text.New(r.Multiplier, bodyTextRight)),
			col.New(1).Add(text.New(r.PerUnitMwh, bodyTextRight)),
			col.New(1).Add(text.New(r.PerUnitEur, bodyTextRight)),
			col.New(1).Add(text.New(r.TotalMwh, bodyTextRight)),
			col.New(1).Add(text.New(r.TotalEur, bodyTextRight)),
			col.New(3).Add(text.New(r.Warning, warningText)),
		}
		if cellStyle != nil {
			for _, c := range cols {
				c.WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
}

// addPrimeTotals adds the project-level totals block.
func addPrimeTotals(m core.Maroto, data *PrimeExportData) {
	m.AddRows(row.New(4))

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Total MWh cumac :", labelStyle)),
			col.New(3).Add(text.New(data.TotalMwh, valueStyle)),
		),
		row.New(7).Add(
			col.New(9).Add(text.New("Total valorisation :", labelStyle)),
			col.New(3).Add(text.New(data.TotalEur, valueStyle)),
		),
		row.New(7).Add(
			col.New(9).Add(text.New("Prime CEE totale :", labelStyle)),
			col.New(3).Add(text.New(data.TotalPrime, valueStyle)),
		),
	)
}
