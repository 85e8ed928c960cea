// Package builder writes the worksheets and charts of a π approximation
// workbook into an excelize file.
package builder

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DecimalFormat is the number format of the Leibniz estimate cell.
const DecimalFormat = "0.000000"

// builtInPercent is the excelize built-in number format 0.00%.
const builtInPercent = 10

// Styles holds the style IDs shared by all builders of one workbook.
// IDs belong to the file that created them.
type Styles struct {
	Header  int
	Percent int
	Decimal int
}

// NewStyles registers the header, percentage and decimal styles in f.
func NewStyles(f *excelize.File) (Styles, error) {
	var s Styles
	var err error

	s.Header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return Styles{}, fmt.Errorf("header style: %w", err)
	}

	s.Percent, err = f.NewStyle(&excelize.Style{NumFmt: builtInPercent})
	if err != nil {
		return Styles{}, fmt.Errorf("percent style: %w", err)
	}

	decimal := DecimalFormat
	s.Decimal, err = f.NewStyle(&excelize.Style{CustomNumFmt: &decimal})
	if err != nil {
		return Styles{}, fmt.Errorf("decimal style: %w", err)
	}

	return s, nil
}
