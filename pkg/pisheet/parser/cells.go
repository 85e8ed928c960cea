package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/pisheet-go/pkg/pisheet/models"
	"github.com/xuri/excelize/v2"
)

// Cell is one occupied worksheet cell.
type Cell struct {
	Col int
	Row int
	// Value is the stored value with shared strings resolved. Formula cells
	// saved without a cached result have none.
	Value string
	// Formula is the formula text without the leading "=".
	Formula string
}

// Name returns the A1-style name of the cell.
func (c Cell) Name() string {
	name, _ := excelize.CoordinatesToCellName(c.Col, c.Row)
	return name
}

type xlsxInline struct {
	T    string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

type xlsxCell struct {
	R  string      `xml:"r,attr"`
	T  string      `xml:"t,attr"`
	F  *string     `xml:"f"`
	V  string      `xml:"v"`
	IS *xlsxInline `xml:"is"`
}

// Cells returns the occupied cells of sheet in row-major order.
func (p *Package) Cells(sheet string) ([]Cell, error) {
	part, ok := p.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	data, err := p.read(part)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("missing worksheet part %s", part)
	}
	return parseWorksheetCells(data, p.sst)
}

func parseWorksheetCells(data []byte, sst []string) ([]Cell, error) {
	var cells []Cell
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "c" {
			continue
		}
		var xc xlsxCell
		if err := decoder.DecodeElement(&xc, &se); err != nil {
			return nil, err
		}
		cell, err := xc.resolve(sst)
		if err != nil {
			return nil, err
		}
		if cell.Value == "" && cell.Formula == "" {
			continue // styled but empty
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

func (xc xlsxCell) resolve(sst []string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(xc.R)
	if err != nil {
		return Cell{}, err
	}
	cell := Cell{Col: col, Row: row}
	if xc.F != nil {
		cell.Formula = strings.TrimSpace(*xc.F)
	}

	switch xc.T {
	case "s":
		if idx, err := strconv.Atoi(strings.TrimSpace(xc.V)); err == nil && idx >= 0 && idx < len(sst) {
			cell.Value = sst[idx]
		}
	case "inlineStr":
		if xc.IS != nil {
			cell.Value = xc.IS.T
			for _, r := range xc.IS.Runs {
				cell.Value += r.T
			}
		}
	default:
		cell.Value = xc.V
	}
	return cell, nil
}

func parseSharedStrings(data []byte) []string {
	var result []string
	if data == nil {
		return result
	}
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "si" {
			result = append(result, parseStringItem(decoder))
		}
	}

	return result
}

// parseStringItem concatenates the text runs of an si element, ignoring
// phonetic hints.
func parseStringItem(decoder *xml.Decoder) string {
	var b strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t":
				if txt, err := readElementText(decoder); err == nil {
					b.WriteString(txt)
				}
				depth--
			case "rPh":
				_ = decoder.Skip()
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return b.String()
}

// Extent returns the last occupied row and column.
func Extent(cells []Cell) (rows, cols int) {
	for _, c := range cells {
		if c.Row > rows {
			rows = c.Row
		}
		if c.Col > cols {
			cols = c.Col
		}
	}
	return rows, cols
}

// ToCellRows groups cells by row. Formula cells are reported as "=formula",
// other values are parsed as numbers where possible.
func ToCellRows(cells []Cell) []models.CellRow {
	var result []models.CellRow
	index := make(map[int]int)

	for _, c := range cells {
		i, ok := index[c.Row]
		if !ok {
			i = len(result)
			index[c.Row] = i
			result = append(result, models.CellRow{R: c.Row, C: make(map[string]interface{})})
		}
		col, err := excelize.ColumnNumberToName(c.Col)
		if err != nil {
			continue
		}
		if c.Formula != "" {
			result[i].C[col] = "=" + c.Formula
		} else {
			result[i].C[col] = parseValue(c.Value)
		}
	}

	return result
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
