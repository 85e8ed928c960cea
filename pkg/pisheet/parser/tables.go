package parser

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 2,
	}
}

// block is a run of adjacent occupied columns.
type block struct {
	minCol, maxCol int
	minRow, maxRow int
	count          int
}

// DetectTables splits the occupied columns of a sheet into runs separated by
// empty columns and returns the bounding range of each run that is dense
// enough, e.g. "A1:K11" and "M2:N4".
func DetectTables(cells []Cell, params TableDetectionParams) []string {
	if len(cells) == 0 {
		return nil
	}

	byCol := make(map[int][]Cell)
	for _, c := range cells {
		byCol[c.Col] = append(byCol[c.Col], c)
	}
	cols := make([]int, 0, len(byCol))
	for col := range byCol {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	var blocks []*block
	for _, col := range cols {
		var b *block
		if n := len(blocks); n > 0 && blocks[n-1].maxCol == col-1 {
			b = blocks[n-1]
			b.maxCol = col
		} else {
			b = &block{minCol: col, maxCol: col, minRow: -1}
			blocks = append(blocks, b)
		}
		for _, c := range byCol[col] {
			if b.minRow < 0 || c.Row < b.minRow {
				b.minRow = c.Row
			}
			if c.Row > b.maxRow {
				b.maxRow = c.Row
			}
			b.count++
		}
	}

	var result []string
	for _, b := range blocks {
		if b.count < params.MinNonemptyCells {
			continue
		}
		total := (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
		if float64(b.count)/float64(total) < params.DensityMin {
			continue
		}
		startCell, _ := excelize.CoordinatesToCellName(b.minCol, b.minRow)
		endCell, _ := excelize.CoordinatesToCellName(b.maxCol, b.maxRow)
		result = append(result, fmt.Sprintf("%s:%s", startCell, endCell))
	}
	return result
}
