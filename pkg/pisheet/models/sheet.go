package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// RowCount is the last occupied row.
	RowCount int `json:"row_count"`
	// ColumnCount is the last occupied column.
	ColumnCount int `json:"column_count"`
	// Rows contains cell values and formulas (verbose mode only).
	Rows []CellRow `json:"rows,omitempty"`
	// Charts contains charts detected on the sheet.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// ForwardRefs lists formulas that read a later row.
	ForwardRefs []ForwardRef `json:"forward_refs,omitempty"`
}
