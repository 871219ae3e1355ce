package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParametersSheet is the workbook sheet the run paths are read from.
const ParametersSheet = "etl_parameters"

// ErrMalformedParameters reports a parameter workbook that does not carry
// the expected sheet, columns or row count. Parameter errors are fatal at
// startup; they are never skipped.
var ErrMalformedParameters = errors.New("malformed parameter workbook")

// Parameters holds the three run paths from the parameter workbook, in the
// fixed row order the sheet uses.
type Parameters struct {
	RawDataDir string
	RegionFile string
	ExportDir  string
}

// LoadParameters reads the run paths from the parameter workbook. The
// "etl_parameters" sheet must have Description and Path header columns and
// exactly three data rows: raw-data folder, region-reference file, export
// folder, in that order.
func LoadParameters(path string) (Parameters, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("failed to open parameter workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(ParametersSheet)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: missing sheet %q: %v", ErrMalformedParameters, ParametersSheet, err)
	}
	if len(rows) == 0 {
		return Parameters{}, fmt.Errorf("%w: sheet %q is empty", ErrMalformedParameters, ParametersSheet)
	}

	descCol, pathCol := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case "Description":
			descCol = i
		case "Path":
			pathCol = i
		}
	}
	if descCol < 0 || pathCol < 0 {
		return Parameters{}, fmt.Errorf("%w: sheet %q must have Description and Path columns", ErrMalformedParameters, ParametersSheet)
	}

	var paths []string
	for _, row := range rows[1:] {
		if pathCol >= len(row) && descCol >= len(row) {
			continue
		}
		paths = append(paths, rowCell(row, pathCol))
	}
	if len(paths) != 3 {
		return Parameters{}, fmt.Errorf("%w: sheet %q must contain exactly three rows, got %d", ErrMalformedParameters, ParametersSheet, len(paths))
	}

	return Parameters{
		RawDataDir: paths[0],
		RegionFile: paths[1],
		ExportDir:  paths[2],
	}, nil
}

func rowCell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
