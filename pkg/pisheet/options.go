// Package pisheet generates spreadsheet workbooks that approximate π with a
// Monte Carlo simulation and the Leibniz series.
package pisheet

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Variant selects the layout of the Monte Carlo sheet.
type Variant string

const (
	// VariantMinimal writes points, the inside flag and the inside/outside split.
	VariantMinimal Variant = "minimal"
	// VariantFull adds squared distances, running counts, a running π estimate
	// and a summary block.
	VariantFull Variant = "full"
)

var _ pflag.Value = (*Variant)(nil)

// Variants lists the accepted variants in display order.
var Variants = []Variant{VariantMinimal, VariantFull}

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", newConfigError("type", s, ErrInvalidVariant)
}

// String implements pflag.Value.
func (v *Variant) String() string {
	return string(*v)
}

// Set implements pflag.Value.
func (v *Variant) Set(s string) error {
	parsed, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Type implements pflag.Value.
func (v *Variant) Type() string {
	names := make([]string, len(Variants))
	for i, variant := range Variants {
		names[i] = string(variant)
	}
	return strings.Join(names, "|")
}

// Defaults of the generator.
const (
	DefaultRows = 3000
	// MinLeibnizTerms is the floor of the Leibniz term count.
	MinLeibnizTerms = 2000
)

// Options configures generation.
type Options struct {
	// Rows is the number of Monte Carlo points. Zero gives a header-only sheet.
	Rows int
	// Variant selects the Monte Carlo layout.
	Variant Variant
	// WithLeibniz adds the Leibniz series sheet.
	WithLeibniz bool
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Rows:    DefaultRows,
		Variant: VariantMinimal,
	}
}

// LeibnizTerms returns the number of series terms written when the Leibniz
// sheet is enabled, never fewer than MinLeibnizTerms.
func (o Options) LeibnizTerms() int {
	if o.Rows > MinLeibnizTerms {
		return o.Rows
	}
	return MinLeibnizTerms
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if _, err := ParseVariant(string(o.Variant)); err != nil {
		return err
	}
	if o.Rows < 0 {
		return newConfigError("rows", fmt.Sprint(o.Rows), ErrNegativeRows)
	}
	return nil
}
