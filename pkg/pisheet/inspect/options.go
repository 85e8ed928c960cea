// Package inspect reports the structure of a generated workbook: sheet
// extents, table blocks, print areas, charts and formulas that read ahead of
// their own row.
package inspect

// Mode represents the inspection mode.
type Mode string

const (
	// ModeLight reports extents, table candidates and print areas only.
	ModeLight Mode = "light"
	// ModeStandard adds charts and the forward reference check.
	ModeStandard Mode = "standard"
	// ModeVerbose adds every cell value and formula.
	ModeVerbose Mode = "verbose"
)

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	}
	return "", &ModeError{Value: s}
}

// Options configures inspection behavior.
type Options struct {
	// Mode specifies the inspection mode (light, standard, verbose).
	Mode Mode
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to true.
	IncludePrintAreas *bool
}

// DefaultOptions returns default inspection options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return true
}

// ShouldIncludeCharts returns whether charts and formula checks are reported.
func (o Options) ShouldIncludeCharts() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeCells returns whether every cell is reported.
func (o Options) ShouldIncludeCells() bool {
	return o.Mode == ModeVerbose
}
