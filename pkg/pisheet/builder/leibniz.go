package builder

import (
	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

// LeibnizSheet is the name of the series sheet.
const LeibnizSheet = "Leibniz"

// LeibnizColumns is the width of the series table.
const LeibnizColumns = 4

// LeibnizEstimateCell holds the estimate of the last partial sum.
const LeibnizEstimateCell = "G20"

const (
	leibnizIndex    = "A"
	leibnizTerm     = "B"
	leibnizSum      = "C"
	leibnizEstimate = "D"
)

var leibnizHeader = []string{
	"k", "Člen a_k = (-1)^k/(2k+1)", "Suma S_n = Σ a_k", "π̂_n = 4*S_n",
}

// Leibniz writes terms rows of the series Σ(-1)^k/(2k+1) with partial sums
// and their π estimates, a convergence line chart at F2 and the final
// estimate in G20. Rows are written top-down since each partial sum reads
// the row above it.
func Leibniz(f *excelize.File, s Styles, terms int) error {
	w, err := openSheet(f, LeibnizSheet)
	if err != nil {
		return err
	}
	w.header(leibnizHeader, s.Header)
	for k := 0; k < terms; k++ {
		row := formula.FirstDataRow + k
		w.value(leibnizIndex, row, k)
		w.formula(leibnizTerm, row, formula.LeibnizTerm(leibnizIndex, row))
		w.formula(leibnizSum, row, formula.PartialSum(leibnizTerm, leibnizSum, row))
		w.formula(leibnizEstimate, row, formula.Quadruple(leibnizSum, row))
	}
	last := terms + formula.HeaderRows

	w.chart("F2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "π̂_n (Leibniz)",
			Categories: formula.SheetRange(LeibnizSheet, leibnizIndex, formula.FirstDataRow, last),
			Values:     formula.SheetRange(LeibnizSheet, leibnizEstimate, formula.FirstDataRow, last),
			Marker:     excelize.ChartMarker{Symbol: "none"},
		}},
		Format: excelize.GraphicOptions{ScaleX: 1.45, ScaleY: 1.2},
		Legend: excelize.ChartLegend{Position: "none"},
		Title:  text("Leibniz – konvergence k π"),
		XAxis:  excelize.ChartAxis{Title: text("k")},
		YAxis:  excelize.ChartAxis{Title: text("Odhad π")},
	})
	w.label("F20", "Aktuální odhad π (poslední řádek):", s.Header)
	w.summary(LeibnizEstimateCell, formula.LastValue(leibnizEstimate), s.Decimal)
	w.width(leibnizIndex, leibnizEstimate, 24)
	w.width("F", "G", 28)
	w.printArea(leibnizIndex, 1, leibnizEstimate, last)
	return w.err
}
