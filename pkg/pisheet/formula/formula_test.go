package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cos", Cos("A", 2), "COS(RADIANS(A2))"},
		{"sin", Sin("A", 92), "SIN(RADIANS(A92))"},
		{"rand", Rand(), "RAND()"},
		{"inside flag", InsideFlag("A", "B", 5), "IF(A5^2+B5^2<=1,1,0)"},
		{"sum of squares", SumOfSquares("A", "B", 3), "A3^2+B3^2"},
		{"inside from distance", InsideFromDistance("C", 7), "IF(C7<=1,1,0)"},
		{"member inside", Member("C", 1, "A", 4), "IF(C4=1,A4,NA())"},
		{"member outside", Member("D", 0, "B", 9), "IF(D9=0,B9,NA())"},
		{"cumulative", CumulativeSum("D", 11), "SUM($D$2:D11)"},
		{"point index", PointIndex(), "ROW()-1"},
		{"estimate", Estimate("E", "F", 6), "4*E6/F6"},
		{"last value", LastValue("G"), "INDEX(G:G,COUNT(G:G)+1)"},
		{"count", CountNumbers("A"), "COUNT(A:A)"},
		{"ratio", Ratio("E", "F"), "INDEX(E:E,COUNT(E:E)+1)/INDEX(F:F,COUNT(F:F)+1)"},
		{"leibniz term", LeibnizTerm("A", 2), "(-1)^A2/(2*A2+1)"},
		{"first partial sum", PartialSum("B", "C", 2), "B2"},
		{"partial sum", PartialSum("B", "C", 3), "C2+B3"},
		{"quadruple", Quadruple("C", 8), "4*C8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSheetRange(t *testing.T) {
	require.Equal(t, "'MonteCarlo'!$D$2:$D$11", SheetRange("MonteCarlo", "D", 2, 11))
	require.Equal(t, "'Kružnice'!$B$2:$B$92", SheetRange("Kružnice", "B", 2, 92))
	require.Equal(t, "'O''Brien'!$A$1:$A$1", SheetRange("O'Brien", "A", 1, 1))
	// Zero data rows keep the degenerate range.
	require.Equal(t, "'MonteCarlo'!$D$2:$D$1", SheetRange("MonteCarlo", "D", 2, 1))
}

func TestReferences(t *testing.T) {
	require.Equal(t, []string{"A5", "B5"}, References(InsideFlag("A", "B", 5)))
	require.Equal(t, []string{"$D$2:D11"}, References(CumulativeSum("D", 11)))
	require.Equal(t, []string{"G:G", "G:G"}, References(LastValue("G")))
	require.Empty(t, References(Rand()))
}

func TestFunctions(t *testing.T) {
	require.Equal(t, []string{"IF", "NA"}, Functions(Member("C", 1, "A", 2)))
	require.Equal(t, []string{"COS", "RADIANS"}, Functions(Cos("A", 2)))
	require.Empty(t, Functions(Estimate("E", "F", 2)))
	require.Empty(t, UnknownFunctions(Ratio("E", "F")))
	require.Equal(t, []string{"KDYŽ"}, UnknownFunctions("KDYŽ(A2=1,1,0)"))
}

func TestForwardReferences(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		formula string
		want    []string
	}{
		{"own row", 3, InsideFlag("A", "B", 3), nil},
		{"previous row", 3, PartialSum("B", "C", 3), nil},
		{"next row", 2, InsideFlag("A", "B", 3), []string{"A3", "B3"}},
		{"range through own row", 11, CumulativeSum("D", 11), nil},
		{"range past own row", 4, "SUM($D$2:D5)", []string{"$D$2:D5"}},
		{"whole column", 2, LastValue("G"), nil},
		{"cross sheet", 1, "'Kružnice'!B50", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ForwardReferences(tt.row, tt.formula))
		})
	}
}

func TestVocabularySorted(t *testing.T) {
	require.IsIncreasing(t, Vocabulary)
}
