package inspect

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidMode indicates an unknown inspection mode.
var ErrInvalidMode = errors.New("invalid mode (must be light, standard, or verbose)")

// ModeError reports an unknown mode name.
type ModeError struct {
	Value string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidMode, e.Value)
}

func (e *ModeError) Unwrap() error {
	return ErrInvalidMode
}

// InspectionError represents an error while reading one sheet.
type InspectionError struct {
	SheetName string
	Component string // "cells", "charts"
	Err       error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("inspection error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// NewInspectionError creates a new InspectionError.
func NewInspectionError(sheetName, component string, err error) *InspectionError {
	return &InspectionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
