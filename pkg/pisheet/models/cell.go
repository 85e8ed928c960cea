// Package models defines the data structures reported when a generated
// workbook is inspected.
package models

// CellRow represents a single row of cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter to cell value. Formula cells carry their text
	// prefixed with "=".
	C map[string]interface{} `json:"c"`
}

// ForwardRef records a formula that reads a row below its own.
type ForwardRef struct {
	// Cell is the formula cell (e.g. "C5").
	Cell string `json:"cell"`
	// Formula is the formula text without the leading "=".
	Formula string `json:"formula"`
	// Refs lists the offending references.
	Refs []string `json:"refs"`
}
