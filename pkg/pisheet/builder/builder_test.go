package builder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

func newFile(t *testing.T) (*excelize.File, Styles) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	s, err := NewStyles(f)
	require.NoError(t, err)
	return f, s
}

func cellFormula(t *testing.T, f *excelize.File, sheet, col string, row int) string {
	t.Helper()
	got, err := f.GetCellFormula(sheet, formula.Cell(col, row))
	require.NoError(t, err)
	return got
}

func cellValue(t *testing.T, f *excelize.File, sheet, col string, row int) string {
	t.Helper()
	got, err := f.GetCellValue(sheet, formula.Cell(col, row))
	require.NoError(t, err)
	return got
}

func printArea(t *testing.T, f *excelize.File, sheet string) string {
	t.Helper()
	for _, dn := range f.GetDefinedName() {
		if dn.Name == printAreaName && dn.Scope == sheet {
			return dn.RefersTo
		}
	}
	return ""
}

// checkFormulas walks the cells of sheet and asserts every formula uses the
// fixed vocabulary and reads no later row.
func checkFormulas(t *testing.T, f *excelize.File, sheet string, lastRow, lastCol int) {
	t.Helper()
	for row := 1; row <= lastRow; row++ {
		for col := 1; col <= lastCol; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			require.NoError(t, err)
			text, err := f.GetCellFormula(sheet, cell)
			require.NoError(t, err)
			if text == "" {
				continue
			}
			require.Empty(t, formula.UnknownFunctions(text), "%s!%s: %s", sheet, cell, text)
			require.Empty(t, formula.ForwardReferences(row, text), "%s!%s: %s", sheet, cell, text)
		}
	}
}

func TestNewStyles(t *testing.T) {
	f, s := newFile(t)

	header, err := f.GetStyle(s.Header)
	require.NoError(t, err)
	require.True(t, header.Font.Bold)
	require.Equal(t, "pattern", header.Fill.Type)
	require.Equal(t, 1, header.Fill.Pattern)
	require.Len(t, header.Border, 4)

	pct, err := f.GetStyle(s.Percent)
	require.NoError(t, err)
	require.Equal(t, builtInPercent, pct.NumFmt)

	dec, err := f.GetStyle(s.Decimal)
	require.NoError(t, err)
	require.NotNil(t, dec.CustomNumFmt)
	require.Equal(t, DecimalFormat, *dec.CustomNumFmt)
}

func TestCircle(t *testing.T) {
	f, s := newFile(t)
	require.NoError(t, Circle(f, s))

	require.Equal(t, "Stupeň", cellValue(t, f, CircleSheet, "A", 1))
	require.Equal(t, "y=sin", cellValue(t, f, CircleSheet, "C", 1))
	require.Equal(t, "0", cellValue(t, f, CircleSheet, "A", 2))
	require.Equal(t, "90", cellValue(t, f, CircleSheet, "A", CircleLastRow))
	require.Equal(t, "COS(RADIANS(A2))", cellFormula(t, f, CircleSheet, "B", 2))
	require.Equal(t, "SIN(RADIANS(A92))", cellFormula(t, f, CircleSheet, "C", 92))
	require.Empty(t, cellValue(t, f, CircleSheet, "A", CircleLastRow+1))
	require.Empty(t, cellFormula(t, f, CircleSheet, "B", CircleLastRow+1))

	style, err := f.GetCellStyle(CircleSheet, "B1")
	require.NoError(t, err)
	require.Equal(t, s.Header, style)

	width, err := f.GetColWidth(CircleSheet, "C")
	require.NoError(t, err)
	require.Equal(t, 14.0, width)

	require.Equal(t, "'Kružnice'!$A$1:$C$92", printArea(t, f, CircleSheet))
	checkFormulas(t, f, CircleSheet, CircleLastRow, 3)
}

func TestMonteCarloMinimal(t *testing.T) {
	f, s := newFile(t)
	const rows = 10
	require.NoError(t, MonteCarloMinimal(f, s, rows))

	require.Equal(t, "x = NÁHČÍSLO()", cellValue(t, f, MonteCarloSheet, "A", 1))
	require.Equal(t, "Y_vně", cellValue(t, f, MonteCarloSheet, "G", 1))
	require.Empty(t, cellValue(t, f, MonteCarloSheet, "H", 1))

	for row := 2; row <= rows+1; row++ {
		require.Equal(t, "RAND()", cellFormula(t, f, MonteCarloSheet, "A", row))
		require.Equal(t, "RAND()", cellFormula(t, f, MonteCarloSheet, "B", row))
		require.Equal(t, fmt.Sprintf("IF(A%d^2+B%d^2<=1,1,0)", row, row), cellFormula(t, f, MonteCarloSheet, "C", row))
		require.Equal(t, fmt.Sprintf("IF(C%d=1,A%d,NA())", row, row), cellFormula(t, f, MonteCarloSheet, "D", row))
		require.Equal(t, fmt.Sprintf("IF(C%d=1,B%d,NA())", row, row), cellFormula(t, f, MonteCarloSheet, "E", row))
		require.Equal(t, fmt.Sprintf("IF(C%d=0,A%d,NA())", row, row), cellFormula(t, f, MonteCarloSheet, "F", row))
		require.Equal(t, fmt.Sprintf("IF(C%d=0,B%d,NA())", row, row), cellFormula(t, f, MonteCarloSheet, "G", row))
		require.Empty(t, cellFormula(t, f, MonteCarloSheet, "H", row))
	}
	require.Empty(t, cellFormula(t, f, MonteCarloSheet, "A", rows+2))
	require.Equal(t, "'MonteCarlo'!$A$1:$G$11", printArea(t, f, MonteCarloSheet))
	checkFormulas(t, f, MonteCarloSheet, rows+2, MinimalColumns+1)
}

func TestMonteCarloMinimalZeroRows(t *testing.T) {
	f, s := newFile(t)
	require.NoError(t, MonteCarloMinimal(f, s, 0))

	require.Equal(t, "X_uvnitř", cellValue(t, f, MonteCarloSheet, "D", 1))
	require.Empty(t, cellFormula(t, f, MonteCarloSheet, "A", 2))
	require.Equal(t, "'MonteCarlo'!$A$1:$G$1", printArea(t, f, MonteCarloSheet))
}

func TestMonteCarloFull(t *testing.T) {
	f, s := newFile(t)
	const rows = 10
	require.NoError(t, MonteCarloFull(f, s, rows))

	require.Equal(t, "Y_vně", cellValue(t, f, MonteCarloSheet, "K", 1))
	require.Equal(t, "A2^2+B2^2", cellFormula(t, f, MonteCarloSheet, "C", 2))
	require.Equal(t, "IF(C2<=1,1,0)", cellFormula(t, f, MonteCarloSheet, "D", 2))
	require.Equal(t, "SUM($D$2:D2)", cellFormula(t, f, MonteCarloSheet, "E", 2))
	require.Equal(t, "SUM($D$2:D11)", cellFormula(t, f, MonteCarloSheet, "E", 11))
	require.Equal(t, "ROW()-1", cellFormula(t, f, MonteCarloSheet, "F", 7))
	require.Equal(t, "4*E11/F11", cellFormula(t, f, MonteCarloSheet, "G", 11))
	require.Equal(t, "IF(D5=1,A5,NA())", cellFormula(t, f, MonteCarloSheet, "H", 5))
	require.Equal(t, "IF(D5=0,B5,NA())", cellFormula(t, f, MonteCarloSheet, "K", 5))
	require.Empty(t, cellFormula(t, f, MonteCarloSheet, "L", 5))
	require.Empty(t, cellFormula(t, f, MonteCarloSheet, "A", 12))

	require.Equal(t, "Aktuální odhad π:", cellValue(t, f, MonteCarloSheet, "M", 2))
	require.Equal(t, "Bodů celkem:", cellValue(t, f, MonteCarloSheet, "M", 3))
	require.Equal(t, "Podíl uvnitř kruhu:", cellValue(t, f, MonteCarloSheet, "M", 4))
	require.Equal(t, "INDEX(G:G,COUNT(G:G)+1)", cellFormula(t, f, MonteCarloSheet, "N", 2))
	require.Equal(t, "COUNT(A:A)", cellFormula(t, f, MonteCarloSheet, "N", 3))
	require.Equal(t, "INDEX(E:E,COUNT(E:E)+1)/INDEX(F:F,COUNT(F:F)+1)", cellFormula(t, f, MonteCarloSheet, "N", 4))

	style, err := f.GetCellStyle(MonteCarloSheet, SummaryRatioCell)
	require.NoError(t, err)
	require.Equal(t, s.Percent, style)

	width, err := f.GetColWidth(MonteCarloSheet, "N")
	require.NoError(t, err)
	require.Equal(t, 24.0, width)

	require.Equal(t, "'MonteCarlo'!$A$1:$K$11", printArea(t, f, MonteCarloSheet))
	checkFormulas(t, f, MonteCarloSheet, rows+2, 14)
}

func TestLeibniz(t *testing.T) {
	f, s := newFile(t)
	const terms = 5
	require.NoError(t, Leibniz(f, s, terms))

	require.Equal(t, "k", cellValue(t, f, LeibnizSheet, "A", 1))
	require.Equal(t, "0", cellValue(t, f, LeibnizSheet, "A", 2))
	require.Equal(t, "4", cellValue(t, f, LeibnizSheet, "A", terms+1))
	require.Empty(t, cellValue(t, f, LeibnizSheet, "A", terms+2))

	require.Equal(t, "(-1)^A2/(2*A2+1)", cellFormula(t, f, LeibnizSheet, "B", 2))
	require.Equal(t, "B2", cellFormula(t, f, LeibnizSheet, "C", 2))
	require.Equal(t, "C2+B3", cellFormula(t, f, LeibnizSheet, "C", 3))
	require.Equal(t, "C5+B6", cellFormula(t, f, LeibnizSheet, "C", 6))
	require.Equal(t, "4*C6", cellFormula(t, f, LeibnizSheet, "D", 6))

	require.Equal(t, "Aktuální odhad π (poslední řádek):", cellValue(t, f, LeibnizSheet, "F", 20))
	require.Equal(t, "INDEX(D:D,COUNT(D:D)+1)", cellFormula(t, f, LeibnizSheet, "G", 20))
	style, err := f.GetCellStyle(LeibnizSheet, LeibnizEstimateCell)
	require.NoError(t, err)
	require.Equal(t, s.Decimal, style)

	require.Equal(t, "'Leibniz'!$A$1:$D$6", printArea(t, f, LeibnizSheet))
	checkFormulas(t, f, LeibnizSheet, 20, 7)
}

func TestHeaderWidths(t *testing.T) {
	require.Len(t, minimalHeader, MinimalColumns)
	require.Len(t, fullHeader, FullColumns)
	require.Len(t, leibnizHeader, LeibnizColumns)
	require.Len(t, circleHeader, 3)
}

func TestBuildersReuseExistingSheet(t *testing.T) {
	f, s := newFile(t)
	require.NoError(t, f.SetSheetName("Sheet1", CircleSheet))
	require.NoError(t, Circle(f, s))
	require.Equal(t, []string{CircleSheet}, f.GetSheetList())
}
