package builder

import (
	"fmt"

	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/xuri/excelize/v2"
)

// printAreaName is the reserved defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// sheetWriter writes into one worksheet and keeps the first error, so a
// builder can issue its writes in row order and check once at the end.
type sheetWriter struct {
	f    *excelize.File
	name string
	err  error
}

// openSheet returns a writer for sheet, creating the sheet when missing.
func openSheet(f *excelize.File, sheet string) (*sheetWriter, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	return &sheetWriter{f: f, name: sheet}, nil
}

func (w *sheetWriter) fail(component string, err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("%s: %w", component, err)
	}
}

func (w *sheetWriter) value(col string, row int, v interface{}) {
	if w.err != nil {
		return
	}
	w.fail("cells", w.f.SetCellValue(w.name, formula.Cell(col, row), v))
}

func (w *sheetWriter) formula(col string, row int, text string) {
	if w.err != nil {
		return
	}
	w.fail("cells", w.f.SetCellFormula(w.name, formula.Cell(col, row), text))
}

// header writes labels into row 1 starting at column A and styles them.
func (w *sheetWriter) header(labels []string, style int) {
	if w.err != nil {
		return
	}
	row := make([]interface{}, len(labels))
	for i, l := range labels {
		row[i] = l
	}
	w.fail("header", w.f.SetSheetRow(w.name, "A1", &row))
	last, err := excelize.ColumnNumberToName(len(labels))
	w.fail("header", err)
	if w.err == nil {
		w.fail("header", w.f.SetCellStyle(w.name, "A1", last+"1", style))
	}
}

// label writes a styled text cell outside the table.
func (w *sheetWriter) label(cell, text string, style int) {
	if w.err != nil {
		return
	}
	w.fail("summary", w.f.SetCellValue(w.name, cell, text))
	w.style(cell, style)
}

// summary writes a formula cell, styled when style is non-zero.
func (w *sheetWriter) summary(cell, text string, style int) {
	if w.err != nil {
		return
	}
	w.fail("summary", w.f.SetCellFormula(w.name, cell, text))
	if style != 0 {
		w.style(cell, style)
	}
}

func (w *sheetWriter) style(cell string, style int) {
	if w.err != nil {
		return
	}
	w.fail("styles", w.f.SetCellStyle(w.name, cell, cell, style))
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.fail("layout", w.f.SetColWidth(w.name, from, to, width))
}

// printArea sets the sheet's print area to ref, such as $A$1:$C$92.
func (w *sheetWriter) printArea(fromCol string, fromRow int, toCol string, toRow int) {
	if w.err != nil {
		return
	}
	ref := formula.QuoteSheet(w.name) + "!" + formula.AbsCell(fromCol, fromRow) + ":" + formula.AbsCell(toCol, toRow)
	w.fail("print_areas", w.f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: ref,
		Scope:    w.name,
	}))
}

func (w *sheetWriter) chart(anchor string, c *excelize.Chart) {
	if w.err != nil {
		return
	}
	w.fail("charts", w.f.AddChart(w.name, anchor, c))
}
