package models

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Ref returns the area in A1:B2 notation.
func (p PrintArea) Ref() string {
	from, err := excelize.CoordinatesToCellName(p.C1, p.R1)
	if err != nil {
		return ""
	}
	to, err := excelize.CoordinatesToCellName(p.C2, p.R2)
	if err != nil {
		return ""
	}
	return from + ":" + to
}

// Contains reports whether the cell at col, row lies inside the area.
func (p PrintArea) Contains(col, row int) bool {
	return col >= p.C1 && col <= p.C2 && row >= p.R1 && row <= p.R2
}

// Intersects reports whether the A1:B2 range ref overlaps the area.
func (p PrintArea) Intersects(ref string) bool {
	from, to, ok := strings.Cut(ref, ":")
	if !ok {
		to = from
	}
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return false
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return false
	}
	return c1 <= p.C2 && c2 >= p.C1 && r1 <= p.R2 && r2 >= p.R1
}

// PrintAreaView represents a slice of a sheet restricted to a print area.
type PrintAreaView struct {
	// BookName is the workbook name owning the area.
	BookName string `json:"book_name"`
	// SheetName is the sheet name owning the area.
	SheetName string `json:"sheet_name"`
	// Area is the print area bounds.
	Area PrintArea `json:"area"`
	// Rows contains rows within the area bounds.
	Rows []CellRow `json:"rows,omitempty"`
	// Charts contains charts anchored inside the area.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates contains table candidates intersecting the area.
	TableCandidates []string `json:"table_candidates,omitempty"`
}

// NewPrintAreaView restricts sheet to area.
func NewPrintAreaView(bookName, sheetName string, sheet SheetData, area PrintArea) PrintAreaView {
	view := PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		clipped := CellRow{R: row.R, C: make(map[string]interface{})}
		for col, v := range row.C {
			if n, err := excelize.ColumnNameToNumber(col); err == nil && n >= area.C1 && n <= area.C2 {
				clipped.C[col] = v
			}
		}
		if len(clipped.C) > 0 {
			view.Rows = append(view.Rows, clipped)
		}
	}

	for _, chart := range sheet.Charts {
		col, row, err := excelize.CellNameToCoordinates(chart.Anchor)
		if err == nil && area.Contains(col, row) {
			view.Charts = append(view.Charts, chart)
		}
	}

	for _, ref := range sheet.TableCandidates {
		if area.Intersects(ref) {
			view.TableCandidates = append(view.TableCandidates, ref)
		}
	}

	return view
}
