package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"armetl/pkg/contracts/domain"
)

// Raw report layout: rows 0-15 are a header block, row 16 carries the
// column headers, row 17 is skipped, and the last 15 rows are a footer
// block. Indices are 0-based sheet rows.
const (
	headerRowIndex = 16
	firstDataRow   = 18
	footerRows     = 15
)

var (
	// ErrFilenameFormat reports a file name that does not match ARM_YYYY-MM-DD.xlsx.
	ErrFilenameFormat = errors.New("file name does not match format ARM_YYYY-MM-DD.xlsx")

	// ErrDateParse reports a file name whose embedded date is not a valid calendar date.
	ErrDateParse = errors.New("embedded date is not a valid calendar date")

	filenamePattern = regexp.MustCompile(`^ARM_\d{4}-\d{2}-\d{2}\.xlsx$`)
)

// DateFromFilename validates the report file name and returns the embedded
// date string. No file is opened; validation is purely on the name.
func DateFromFilename(name string) (string, error) {
	if !filenamePattern.MatchString(name) {
		return "", fmt.Errorf("%q: %w", name, ErrFilenameFormat)
	}
	dateStr := strings.TrimSuffix(strings.TrimPrefix(name, "ARM_"), ".xlsx")
	return dateStr, nil
}

// ReportDateFromFilename validates the file name and parses the embedded
// date, returning it in both string and calendar form.
func ReportDateFromFilename(name string) (domain.ReportDate, error) {
	dateStr, err := DateFromFilename(name)
	if err != nil {
		return domain.ReportDate{}, err
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return domain.ReportDate{}, fmt.Errorf("%q: %w: %v", dateStr, ErrDateParse, err)
	}
	return domain.ReportDate{String: dateStr, Time: date}, nil
}

// ReadReport reads the fixed data region of a raw report spreadsheet:
// the header row plus every data row between the header and footer blocks.
func ReadReport(path string) (domain.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to open spreadsheet %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.RawTable{}, fmt.Errorf("spreadsheet %s has no sheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) < firstDataRow+footerRows {
		return domain.RawTable{}, fmt.Errorf("spreadsheet %s too short: %d rows, need at least %d",
			filepath.Base(path), len(rows), firstDataRow+footerRows)
	}

	table := domain.RawTable{
		Headers: rows[headerRowIndex],
		Rows:    rows[firstDataRow : len(rows)-footerRows],
	}

	slog.Debug("Read raw report region",
		slog.String("sheet", sheet),
		slog.Int("total_rows", len(rows)),
		slog.Int("data_rows", len(table.Rows)))

	return table, nil
}

// Extract validates the file name, parses the reporting date and reads the
// raw table from the spreadsheet. Directory and file name are trimmed of
// stray whitespace first.
func Extract(dir, name string) (domain.RawTable, domain.ReportDate, error) {
	dir, name = strings.TrimSpace(dir), strings.TrimSpace(name)

	date, err := ReportDateFromFilename(name)
	if err != nil {
		return domain.RawTable{}, domain.ReportDate{}, err
	}

	table, err := ReadReport(filepath.Join(dir, name))
	if err != nil {
		return domain.RawTable{}, domain.ReportDate{}, err
	}
	return table, date, nil
}
