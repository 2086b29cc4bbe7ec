// Package main provides the CLI entry point for extab-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/extab-go/pkg/extab"
	"github.com/ukaji3/extab-go/pkg/extab/models"
	"github.com/ukaji3/extab-go/pkg/extab/workbook"
	"github.com/xuri/excelize/v2"
)

var (
	outputPath string
	modeName   string
	sheetName  string
	sheetsDir  string
	cellRange  string
	trim       bool
	useCRLF    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "extab",
		Short: "Convert Excel sheets to and from delimited text",
		Long: `extab-go converts Excel sheets to CSV or tab-separated text and back,
keeping full numeric precision and escaping line breaks inside cells.`,
	}

	exportCmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Write a sheet as delimited text",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().StringVar(&modeName, "mode", "", "Output mode: csv, tab (default: inferred from output path)")
	exportCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: active sheet)")
	exportCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	exportCmd.Flags().StringVar(&cellRange, "range", "", "Cell range to export (e.g. A1:D10)")
	exportCmd.Flags().BoolVar(&trim, "trim", false, "Drop empty margin rows and columns")
	exportCmd.Flags().BoolVar(&useCRLF, "crlf", false, "Terminate rows with CRLF")

	importCmd := &cobra.Command{
		Use:   "import [input.csv]",
		Short: "Write delimited text into an Excel sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: input name with .xlsx)")
	importCmd.Flags().StringVar(&modeName, "mode", "", "Input mode: csv, tab (default: inferred from input path)")
	importCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Sheet name to write")

	rootCmd.AddCommand(exportCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	opts := extab.Options{UseCRLF: useCRLF}

	if sheetsDir != "" {
		mode, err := resolveMode("")
		if err != nil {
			return err
		}
		return writeSheetFiles(f, sheetsDir, mode, opts)
	}

	sheet := sheetName
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	grid, err := prepareGrid(f, sheet)
	if err != nil {
		return err
	}

	mode, err := resolveMode(outputPath)
	if err != nil {
		return err
	}
	if outputPath == "" || outputPath == "-" {
		return extab.Export(os.Stdout, grid, mode, opts)
	}
	if err := extab.ExportFile(outputPath, grid, mode, opts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if outputPath == "" {
		if inputPath == "-" {
			return fmt.Errorf("output xlsx path is required when reading from stdin")
		}
		base := strings.TrimSuffix(inputPath, ".gz")
		outputPath = strings.TrimSuffix(base, filepath.Ext(base)) + ".xlsx"
	}

	mode, err := resolveMode(inputPath)
	if err != nil {
		return err
	}

	var grid models.StringGrid
	if inputPath == "-" {
		grid, err = extab.Import(os.Stdin, mode)
	} else {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		grid, err = extab.ImportFile(inputPath, mode)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	f, err := openOrCreateWorkbook(outputPath, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := workbook.WriteSheet(f, sheetName, grid); err != nil {
		return err
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// resolveMode picks the delimiter mode from the --mode flag, falling back to
// the file extension of path.
func resolveMode(path string) (extab.Mode, error) {
	if modeName != "" {
		mode, err := extab.ModeFromString(modeName)
		if err != nil {
			return "", fmt.Errorf("invalid mode: %s (must be csv, tab, or tsv)", modeName)
		}
		return mode, nil
	}
	if path == "" || path == "-" {
		return extab.ModeCSV, nil
	}
	return extab.ModeFromPath(path), nil
}

// prepareGrid reads one sheet and applies the --range and --trim filters.
func prepareGrid(f *excelize.File, sheet string) (models.Grid, error) {
	grid, err := workbook.ReadSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	if cellRange != "" {
		r, err := workbook.ParseRange(cellRange)
		if err != nil {
			return nil, err
		}
		grid = workbook.Crop(grid, r)
	}
	if trim {
		grid = workbook.UsedRange(grid)
	}
	return grid, nil
}

// writeSheetFiles exports every sheet of the workbook to its own file under
// dir, named after the sheet.
func writeSheetFiles(f *excelize.File, dir string, mode extab.Mode, opts extab.Options) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ext := ".csv"
	if mode == extab.ModeTab {
		ext = ".tsv"
	}
	for _, sheet := range f.GetSheetList() {
		grid, err := prepareGrid(f, sheet)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, sheet+ext)
		if err := extab.ExportFile(filename, grid, mode, opts); err != nil {
			return fmt.Errorf("failed to write sheet file %s: %w", filename, err)
		}
	}
	return nil
}

// openOrCreateWorkbook opens an existing workbook or starts a new one whose
// default sheet is renamed to sheet.
func openOrCreateWorkbook(path, sheet string) (*excelize.File, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return f, nil
	}
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
	}
	return f, nil
}
