package pisheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pisheet-go/pkg/pisheet/builder"
	"github.com/xuri/excelize/v2"
)

// step is one sheet builder of a generation pass.
type step struct {
	sheet     string
	component string
	run       func(f *excelize.File, s builder.Styles) error
}

// steps returns the builders for o in the order they must run. The circle
// sheet comes first because both Monte Carlo charts read its ranges.
func (o Options) steps() []step {
	steps := []step{{builder.CircleSheet, "circle", builder.Circle}}

	rows := o.Rows
	if o.Variant == VariantFull {
		steps = append(steps, step{builder.MonteCarloSheet, "montecarlo", func(f *excelize.File, s builder.Styles) error {
			return builder.MonteCarloFull(f, s, rows)
		}})
	} else {
		steps = append(steps, step{builder.MonteCarloSheet, "montecarlo", func(f *excelize.File, s builder.Styles) error {
			return builder.MonteCarloMinimal(f, s, rows)
		}})
	}

	if o.WithLeibniz {
		terms := o.LeibnizTerms()
		steps = append(steps, step{builder.LeibnizSheet, "leibniz", func(f *excelize.File, s builder.Styles) error {
			return builder.Leibniz(f, s, terms)
		}})
	}
	return steps
}

// Sheets returns the names of the sheets generated for o, in workbook order.
func (o Options) Sheets() []string {
	var names []string
	for _, s := range o.steps() {
		names = append(names, s.sheet)
	}
	return names
}

// Build writes every sheet selected by opts into a new in-memory workbook.
// The caller owns the returned file and must close it.
func Build(opts Options) (*excelize.File, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	// The default sheet is renamed so the circle sheet stays first.
	if err := f.SetSheetName(f.GetSheetName(0), builder.CircleSheet); err != nil {
		_ = f.Close()
		return nil, NewBuildError(builder.CircleSheet, "circle", err)
	}

	styles, err := builder.NewStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, NewBuildError("", "styles", err)
	}

	for _, s := range opts.steps() {
		if err := s.run(f, styles); err != nil {
			_ = f.Close()
			return nil, NewBuildError(s.sheet, s.component, err)
		}
	}
	return f, nil
}

// Generate builds the workbook for opts and writes it to path. Options and
// the output path are checked before any sheet is built. The file at path is
// replaced only once the workbook has been written completely.
func Generate(path string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if err := CheckOutput(path); err != nil {
		return err
	}

	f, err := Build(opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return save(f, path)
}

// CheckOutput verifies that path names an .xlsx file inside an existing,
// writable directory.
func CheckOutput(path string) error {
	if path == "" || !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return newConfigError("output", path, ErrInvalidOutput)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return newConfigError("output", path, ErrInvalidOutput)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return newConfigError("output", path, fmt.Errorf("%w: %v", ErrOutputNotWritable, err))
	}
	if !info.IsDir() {
		return newConfigError("output", path, fmt.Errorf("%w: %s is not a directory", ErrOutputNotWritable, dir))
	}

	probe, err := os.CreateTemp(dir, ".pisheet-probe-*")
	if err != nil {
		return newConfigError("output", path, fmt.Errorf("%w: %v", ErrOutputNotWritable, err))
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}

// save writes f next to path and renames it into place.
func save(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := f.Write(tmp); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
