// Package formula builds the formula text written into generated workbooks.
//
// Every template is a pure function of its row and column arguments. The text
// uses the OOXML invariant vocabulary (English function names, comma argument
// separators), which is the form .xlsx files store; spreadsheet applications
// translate it to the user's locale on display.
package formula

import (
	"fmt"
	"strconv"
	"strings"
)

// HeaderRows is the number of header rows above the data of every sheet.
const HeaderRows = 1

// FirstDataRow is the 1-based row of the first data row.
const FirstDataRow = HeaderRows + 1

// Cell returns a relative cell reference such as A2.
func Cell(col string, row int) string {
	return col + strconv.Itoa(row)
}

// AbsCell returns an absolute cell reference such as $D$2.
func AbsCell(col string, row int) string {
	return "$" + col + "$" + strconv.Itoa(row)
}

// Column returns a whole-column reference such as G:G.
func Column(col string) string {
	return col + ":" + col
}

// QuoteSheet quotes a sheet name for use in a cross-sheet reference.
func QuoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// SheetRange returns an absolute single-column range on sheet, for example
// 'MonteCarlo'!$D$2:$D$11. A last row below first is kept as written.
func SheetRange(sheet, col string, first, last int) string {
	return QuoteSheet(sheet) + "!" + AbsCell(col, first) + ":" + AbsCell(col, last)
}

// Rand samples a uniform value in [0,1) on every recalculation.
func Rand() string {
	return "RAND()"
}

// Cos is the cosine of the degree value in col.
func Cos(col string, row int) string {
	return "COS(RADIANS(" + Cell(col, row) + "))"
}

// Sin is the sine of the degree value in col.
func Sin(col string, row int) string {
	return "SIN(RADIANS(" + Cell(col, row) + "))"
}

// SumOfSquares is x²+y² over the two coordinate cells of row.
func SumOfSquares(x, y string, row int) string {
	return fmt.Sprintf("%s^2+%s^2", Cell(x, row), Cell(y, row))
}

// InsideFlag is 1 when the point (x, y) of row lies in the unit quarter-circle.
func InsideFlag(x, y string, row int) string {
	return withinUnit(SumOfSquares(x, y, row))
}

// InsideFromDistance is 1 when the squared distance in col is at most 1.
func InsideFromDistance(col string, row int) string {
	return withinUnit(Cell(col, row))
}

func withinUnit(expr string) string {
	return "IF(" + expr + "<=1,1,0)"
}

// Member copies src when the flag cell equals want and yields #N/A
// otherwise, so chart series skip the point instead of plotting it at 0.
func Member(flag string, want int, src string, row int) string {
	return fmt.Sprintf("IF(%s=%d,%s,NA())", Cell(flag, row), want, Cell(src, row))
}

// CumulativeSum sums col from the first data row through row.
func CumulativeSum(col string, row int) string {
	return "SUM(" + AbsCell(col, FirstDataRow) + ":" + Cell(col, row) + ")"
}

// PointIndex is the 1-based point number derived from the row position.
func PointIndex() string {
	return "ROW()-" + strconv.Itoa(HeaderRows)
}

// Estimate is the running π estimate 4·inside/total of row.
func Estimate(inside, total string, row int) string {
	return "4*" + Cell(inside, row) + "/" + Cell(total, row)
}

// LastValue reads the last numeric value of a column whose numbers start
// right under the header.
func LastValue(col string) string {
	c := Column(col)
	return fmt.Sprintf("INDEX(%s,COUNT(%s)+%d)", c, c, HeaderRows)
}

// CountNumbers counts the numeric cells of col.
func CountNumbers(col string) string {
	return "COUNT(" + Column(col) + ")"
}

// Ratio divides the last value of num by the last value of den.
func Ratio(num, den string) string {
	return LastValue(num) + "/" + LastValue(den)
}

// LeibnizTerm is (-1)^k/(2k+1) for the index k held in idx.
func LeibnizTerm(idx string, row int) string {
	k := Cell(idx, row)
	return "(-1)^" + k + "/(2*" + k + "+1)"
}

// PartialSum is the running series sum: the first data row takes its own
// term, later rows add their term to the previous row's sum.
func PartialSum(term, sum string, row int) string {
	if row <= FirstDataRow {
		return Cell(term, row)
	}
	return Cell(sum, row-1) + "+" + Cell(term, row)
}

// Quadruple is 4 times the value in col.
func Quadruple(col string, row int) string {
	return "4*" + Cell(col, row)
}
