package builder

import (
	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

// Unit-square plotting region with a small margin on each side.
var (
	unitAxisMin = -0.05
	unitAxisMax = 1.05
)

// scatterSize is the edge of the square scatter plots in pixels before scaling.
const scatterSize = 480

const pointMarkerSize = 3

const curveWidth = 1.5

func text(s string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: s}}
}

func unitAxis(title string) excelize.ChartAxis {
	return excelize.ChartAxis{
		Title:   text(title),
		Minimum: &unitAxisMin,
		Maximum: &unitAxisMax,
	}
}

// scatterChart lays out a Monte Carlo plot over the unit square.
func scatterChart(title string, scale float64, series ...excelize.ChartSeries) *excelize.Chart {
	return &excelize.Chart{
		Type:      excelize.Scatter,
		Series:    series,
		Format:    excelize.GraphicOptions{ScaleX: scale, ScaleY: scale},
		Dimension: excelize.ChartDimension{Width: scatterSize, Height: scatterSize},
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Title:     text(title),
		XAxis:     unitAxis("x"),
		YAxis:     unitAxis("y"),
	}
}

// pointSeries plots the x/y column pair of the data rows as bare markers.
// rows of 0 leaves the degenerate range $X$2:$X$1 in place.
func pointSeries(name, sheet, xCol, yCol string, rows int) excelize.ChartSeries {
	last := rows + formula.HeaderRows
	return excelize.ChartSeries{
		Name:       name,
		Categories: formula.SheetRange(sheet, xCol, formula.FirstDataRow, last),
		Values:     formula.SheetRange(sheet, yCol, formula.FirstDataRow, last),
		Marker:     excelize.ChartMarker{Symbol: "circle", Size: pointMarkerSize},
		Line:       excelize.ChartLine{Type: excelize.ChartLineNone},
	}
}

// quarterCircleSeries draws the cos/sin columns of the circle sheet as a line.
func quarterCircleSeries(name string) excelize.ChartSeries {
	return excelize.ChartSeries{
		Name:       name,
		Categories: formula.SheetRange(CircleSheet, circleCos, formula.FirstDataRow, CircleLastRow),
		Values:     formula.SheetRange(CircleSheet, circleSin, formula.FirstDataRow, CircleLastRow),
		Marker:     excelize.ChartMarker{Symbol: "none"},
		Line:       excelize.ChartLine{Type: excelize.ChartLineSolid, Width: curveWidth},
	}
}
