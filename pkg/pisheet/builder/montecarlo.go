package builder

import (
	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

// MonteCarloSheet is the name of the sampling sheet of both variants.
const MonteCarloSheet = "MonteCarlo"

const monteCarloTitle = "Monte Carlo – aproximace π"

// Column counts of the two sampling layouts.
const (
	MinimalColumns = 7
	FullColumns    = 11
)

var minimalHeader = []string{
	"x = NÁHČÍSLO()", "y = NÁHČÍSLO()", "Uvnitř (0/1)",
	"X_uvnitř", "Y_uvnitř", "X_vně", "Y_vně",
}

var fullHeader = []string{
	"x = NÁHČÍSLO()", "y = NÁHČÍSLO()", "r² = x^2 + y^2",
	"Uvnitř (≤1)", "Kumulativně uvnitř", "n (počet bodů)",
	"π̂ = 4 * uvnitř / n", "X_uvnitř", "Y_uvnitř", "X_vně", "Y_vně",
}

// split holds the four columns that separate inside and outside points for
// charting, and the flag column they test.
type split struct {
	flag, x, y           string
	xIn, yIn, xOut, yOut string
}

func (s split) write(w *sheetWriter, row int) {
	w.formula(s.xIn, row, formula.Member(s.flag, 1, s.x, row))
	w.formula(s.yIn, row, formula.Member(s.flag, 1, s.y, row))
	w.formula(s.xOut, row, formula.Member(s.flag, 0, s.x, row))
	w.formula(s.yOut, row, formula.Member(s.flag, 0, s.y, row))
}

var minimalSplit = split{flag: "C", x: "A", y: "B", xIn: "D", yIn: "E", xOut: "F", yOut: "G"}

// MonteCarloMinimal writes rows sampled points with an inside flag and the
// inside/outside split, then a scatter chart anchored at I2.
func MonteCarloMinimal(f *excelize.File, s Styles, rows int) error {
	w, err := openSheet(f, MonteCarloSheet)
	if err != nil {
		return err
	}
	sp := minimalSplit
	w.header(minimalHeader, s.Header)
	for i := 1; i <= rows; i++ {
		row := formula.HeaderRows + i
		w.formula(sp.x, row, formula.Rand())
		w.formula(sp.y, row, formula.Rand())
		w.formula(sp.flag, row, formula.InsideFlag(sp.x, sp.y, row))
		sp.write(w, row)
	}
	w.width("A", "G", 16)
	w.printArea("A", 1, "G", rows+formula.HeaderRows)
	w.chart("I2", scatterChart(monteCarloTitle, 1.2,
		pointSeries("Uvnitř", MonteCarloSheet, sp.xIn, sp.yIn, rows),
		pointSeries("Vně", MonteCarloSheet, sp.xOut, sp.yOut, rows),
		quarterCircleSeries("Čtvrtkružnice"),
	))
	return w.err
}

const (
	fullDistance = "C"
	fullInside   = "D"
	fullCumul    = "E"
	fullCount    = "F"
	fullEstimate = "G"
)

var fullSplit = split{flag: fullInside, x: "A", y: "B", xIn: "H", yIn: "I", xOut: "J", yOut: "K"}

// Summary block cells of the full layout.
const (
	SummaryEstimateCell = "N2"
	SummaryCountCell    = "N3"
	SummaryRatioCell    = "N4"
)

// MonteCarloFull extends the minimal layout with the squared distance, the
// running inside count, the point count and a running π estimate on every
// row, a summary block in M2:N4 and a scatter chart anchored at M6.
func MonteCarloFull(f *excelize.File, s Styles, rows int) error {
	w, err := openSheet(f, MonteCarloSheet)
	if err != nil {
		return err
	}
	sp := fullSplit
	w.header(fullHeader, s.Header)
	for i := 1; i <= rows; i++ {
		row := formula.HeaderRows + i
		w.formula(sp.x, row, formula.Rand())
		w.formula(sp.y, row, formula.Rand())
		w.formula(fullDistance, row, formula.SumOfSquares(sp.x, sp.y, row))
		w.formula(fullInside, row, formula.InsideFromDistance(fullDistance, row))
		w.formula(fullCumul, row, formula.CumulativeSum(fullInside, row))
		w.formula(fullCount, row, formula.PointIndex())
		w.formula(fullEstimate, row, formula.Estimate(fullCumul, fullCount, row))
		sp.write(w, row)
	}
	w.width("A", "K", 16)
	w.width("M", "N", 24)

	w.label("M2", "Aktuální odhad π:", s.Header)
	w.summary(SummaryEstimateCell, formula.LastValue(fullEstimate), 0)
	w.label("M3", "Bodů celkem:", s.Header)
	w.summary(SummaryCountCell, formula.CountNumbers(sp.x), 0)
	w.label("M4", "Podíl uvnitř kruhu:", s.Header)
	w.summary(SummaryRatioCell, formula.Ratio(fullCumul, fullCount), s.Percent)

	w.printArea("A", 1, "K", rows+formula.HeaderRows)
	w.chart("M6", scatterChart(monteCarloTitle, 1.25,
		pointSeries("Uvnitř kruhu", MonteCarloSheet, sp.xIn, sp.yIn, rows),
		pointSeries("Vně kruhu", MonteCarloSheet, sp.xOut, sp.yOut, rows),
		quarterCircleSeries("Jednotková čtvrtkružnice"),
	))
	return w.err
}
