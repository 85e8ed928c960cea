package pisheet

import (
	"errors"
	"fmt"
)

// ErrInvalidVariant indicates a Monte Carlo variant other than minimal or full.
var ErrInvalidVariant = errors.New("invalid variant (must be minimal or full)")

// ErrNegativeRows indicates a negative Monte Carlo row count.
var ErrNegativeRows = errors.New("row count must not be negative")

// ErrInvalidOutput indicates an empty output path or one without the .xlsx
// extension.
var ErrInvalidOutput = errors.New("output must be an .xlsx file path")

// ErrOutputNotWritable indicates the output directory is missing or read-only.
var ErrOutputNotWritable = errors.New("output directory is not writable")

// ErrWrite indicates the finished workbook could not be persisted.
var ErrWrite = errors.New("failed to write workbook")

// ConfigError reports an option rejected before any sheet is built.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// BuildError represents a failure while writing one sheet.
type BuildError struct {
	SheetName string
	Component string // "styles", "circle", "montecarlo", "leibniz"
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(sheetName, component string, err error) *BuildError {
	return &BuildError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
