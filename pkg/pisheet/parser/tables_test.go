package parser

import (
	"reflect"
	"testing"
)

// grid returns one cell per position of the inclusive range.
func grid(c1, r1, c2, r2 int) []Cell {
	var cells []Cell
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			cells = append(cells, Cell{Col: c, Row: r, Value: "x"})
		}
	}
	return cells
}

func TestDetectTables(t *testing.T) {
	tests := []struct {
		name     string
		cells    []Cell
		expected []string
	}{
		{"empty", nil, nil},
		{"single block", grid(1, 1, 3, 92), []string{"A1:C92"}},
		{"block and summary", append(grid(1, 1, 11, 11), grid(13, 2, 14, 4)...), []string{"A1:K11", "M2:N4"}},
		{"label pair", append(grid(1, 1, 4, 6), grid(6, 20, 7, 20)...), []string{"A1:D6", "F20:G20"}},
		{"lone cell dropped", append(grid(1, 1, 2, 2), Cell{Col: 5, Row: 1, Value: "x"}), []string{"A1:B2"}},
	}

	for _, tt := range tests {
		got := DetectTables(tt.cells, DefaultTableParams())
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: DetectTables() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestDetectTablesDensity(t *testing.T) {
	cells := []Cell{{Col: 1, Row: 1, Value: "x"}, {Col: 2, Row: 100, Value: "y"}}
	params := TableDetectionParams{DensityMin: 0.5, MinNonemptyCells: 2}
	if got := DetectTables(cells, params); got != nil {
		t.Errorf("Expected sparse block to be dropped, got %v", got)
	}
}
