// Package main provides the CLI entry point for pisheet.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pisheet-go/pkg/pisheet"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/inspect"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/models"
	"github.com/ukaji3/pisheet-go/pkg/pisheet/output"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a text logger on w at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := pisheet.DefaultOptions()
	var (
		outPath string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "pisheet --out <file.xlsx>",
		Short: "Generate a workbook that approximates π",
		Long: `pisheet writes an xlsx workbook with a unit-circle reference sheet, a
Monte Carlo estimate of π driven by RAND() formulas and, optionally, the
Leibniz series. The workbook recalculates in the spreadsheet application.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, verbose)
			logger.Info("generating workbook",
				"path", outPath,
				"rows", opts.Rows,
				"variant", string(opts.Variant),
				"leibniz", opts.WithLeibniz,
			)
			if opts.WithLeibniz {
				logger.Debug("leibniz sheet enabled", "terms", opts.LeibnizTerms())
			}
			for _, sheet := range opts.Sheets() {
				logger.Debug("sheet scheduled", "sheet", sheet)
			}

			if err := pisheet.Generate(outPath, opts); err != nil {
				return err
			}

			logger.Info("workbook written", "path", outPath)
			fmt.Fprintf(stdout, "Hotovo → %s\n", outPath)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVar(&outPath, "out", "", "Output .xlsx path")
	rootCmd.Flags().IntVar(&opts.Rows, "rows", pisheet.DefaultRows, "Number of Monte Carlo points")
	rootCmd.Flags().Var(&opts.Variant, "type", "Monte Carlo layout: minimal or full")
	rootCmd.Flags().BoolVar(&opts.WithLeibniz, "with-leibniz", false, "Add the Leibniz series sheet")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = rootCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(newInspectCmd(stdout))
	return rootCmd
}

type inspectFlags struct {
	outputPath    string
	pretty        bool
	mode          string
	sheetsDir     string
	printAreasDir string
}

func newInspectCmd(stdout io.Writer) *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Report the structure of a generated workbook as JSON",
		Long: `inspect reads a workbook and reports sheet extents, table blocks, print
areas, charts and formulas that read ahead of their own row.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(stdout, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&flags.mode, "mode", string(inspect.ModeStandard), "Inspection mode: light, standard, verbose")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&flags.printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func runInspect(stdout io.Writer, inputPath string, flags inspectFlags) error {
	mode, err := inspect.ParseMode(flags.mode)
	if err != nil {
		return err
	}

	wb, err := inspect.Inspect(inputPath, inspect.Options{Mode: mode})
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if flags.sheetsDir == "" && flags.printAreasDir == "" {
		fmt.Fprintln(stdout, string(jsonData))
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(wb, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if flags.printAreasDir != "" {
		if err := writePrintAreaFiles(wb, flags.printAreasDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range wb.SheetNames {
		sheet := wb.Sheets[sheetName]
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(wb *models.WorkbookData, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheetName := range wb.SheetNames {
		sheet := wb.Sheets[sheetName]
		for i, area := range sheet.PrintAreas {
			view := models.NewPrintAreaView(wb.BookName, sheetName, sheet, area)
			jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", sheetName, i+1))
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}
