package inspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/pisheet-go/pkg/pisheet/formula"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/models"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads the workbook at path and reports its structure.
func Inspect(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	pkg, err := parser.OpenPackage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer pkg.Close()

	var printAreas map[string][]models.PrintArea
	if opts.ShouldIncludePrintAreas() {
		printAreas = parser.ExtractPrintAreas(f)
	}

	names := pkg.SheetNames()
	sheets := make(map[string]models.SheetData, len(names))
	for _, name := range names {
		sheet, err := inspectSheet(pkg, name, opts)
		if err != nil {
			return nil, err
		}
		sheet.PrintAreas = printAreas[name]
		sheets[name] = sheet
	}

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetNames: names,
		Sheets:     sheets,
	}, nil
}

func inspectSheet(pkg *parser.Package, name string, opts Options) (models.SheetData, error) {
	cells, err := pkg.Cells(name)
	if err != nil {
		return models.SheetData{}, NewInspectionError(name, "cells", err)
	}

	rows, cols := parser.Extent(cells)
	sheet := models.SheetData{
		RowCount:        rows,
		ColumnCount:     cols,
		TableCandidates: parser.DetectTables(cells, parser.DefaultTableParams()),
	}

	if opts.ShouldIncludeCharts() {
		charts, err := pkg.Charts(name)
		if err != nil {
			return models.SheetData{}, NewInspectionError(name, "charts", err)
		}
		sheet.Charts = charts
		sheet.ForwardRefs = forwardRefs(cells)
	}

	if opts.ShouldIncludeCells() {
		sheet.Rows = parser.ToCellRows(cells)
	}
	return sheet, nil
}

// forwardRefs returns the formulas that reference a later row of their own
// sheet.
func forwardRefs(cells []parser.Cell) []models.ForwardRef {
	var result []models.ForwardRef
	for _, c := range cells {
		if c.Formula == "" {
			continue
		}
		if refs := formula.ForwardReferences(c.Row, c.Formula); len(refs) > 0 {
			result = append(result, models.ForwardRef{
				Cell:    c.Name(),
				Formula: c.Formula,
				Refs:    refs,
			})
		}
	}
	return result
}
