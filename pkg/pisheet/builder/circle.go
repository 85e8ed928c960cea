package builder

import (
	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

// CircleSheet is the name of the trigonometric reference sheet.
const CircleSheet = "Kružnice"

// CircleDegrees is the last degree value of the table; the first is 0.
const CircleDegrees = 90

// CircleLastRow is the row holding the 90° entry.
const CircleLastRow = formula.FirstDataRow + CircleDegrees

const (
	circleDeg = "A"
	circleCos = "B"
	circleSin = "C"
)

var circleHeader = []string{"Stupeň", "x=cos", "y=sin"}

// Circle writes the 0..90° cosine/sine table the Monte Carlo charts use for
// their quarter-circle curve.
func Circle(f *excelize.File, s Styles) error {
	w, err := openSheet(f, CircleSheet)
	if err != nil {
		return err
	}
	w.header(circleHeader, s.Header)
	for deg := 0; deg <= CircleDegrees; deg++ {
		row := formula.FirstDataRow + deg
		w.value(circleDeg, row, deg)
		w.formula(circleCos, row, formula.Cos(circleDeg, row))
		w.formula(circleSin, row, formula.Sin(circleDeg, row))
	}
	w.width(circleDeg, circleSin, 14)
	w.printArea(circleDeg, 1, circleSin, CircleLastRow)
	return w.err
}
