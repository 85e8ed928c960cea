package formula

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/efp"
)

// Vocabulary lists the functions generated formulas may call.
var Vocabulary = []string{
	"COS", "COUNT", "IF", "INDEX", "NA", "RADIANS", "RAND", "ROW", "SIN", "SUM",
}

func tokens(formula string) []efp.Token {
	ps := efp.ExcelParser()
	return ps.Parse(formula)
}

// References returns the range operands of formula in order of appearance.
func References(formula string) []string {
	var refs []string
	for _, t := range tokens(formula) {
		if t.TType == efp.TokenTypeOperand && t.TSubType == efp.TokenSubTypeRange {
			refs = append(refs, t.TValue)
		}
	}
	return refs
}

// Functions returns the distinct upper-cased function names called by
// formula, sorted.
func Functions(formula string) []string {
	seen := make(map[string]bool)
	for _, t := range tokens(formula) {
		if t.TType != efp.TokenTypeFunction || t.TSubType != efp.TokenSubTypeStart {
			continue
		}
		name := strings.ToUpper(t.TValue)
		if name == "ARRAY" || name == "ARRAYROW" {
			continue
		}
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownFunctions returns the functions of formula outside Vocabulary.
func UnknownFunctions(formula string) []string {
	var unknown []string
	for _, name := range Functions(formula) {
		if !inVocabulary(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func inVocabulary(name string) bool {
	i := sort.SearchStrings(Vocabulary, name)
	return i < len(Vocabulary) && Vocabulary[i] == name
}

// ForwardReferences returns the same-sheet references of a formula at row
// that reach a row below it. Cross-sheet and whole-column references are
// ignored.
func ForwardReferences(row int, formula string) []string {
	var forward []string
	for _, ref := range References(formula) {
		if strings.Contains(ref, "!") {
			continue
		}
		last := 0
		whole := false
		for _, part := range strings.Split(ref, ":") {
			r, ok := rowOf(part)
			if !ok {
				whole = true
				break
			}
			if r > last {
				last = r
			}
		}
		if !whole && last > row {
			forward = append(forward, ref)
		}
	}
	return forward
}

// rowOf extracts the row number of a cell reference like $D$12.
func rowOf(cell string) (int, bool) {
	cell = strings.ReplaceAll(cell, "$", "")
	i := strings.IndexFunc(cell, func(r rune) bool { return r >= '0' && r <= '9' })
	if i <= 0 {
		return 0, false
	}
	n, err := strconv.Atoi(cell[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
