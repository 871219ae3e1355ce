package load

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"armetl/pkg/contracts/domain"
)

// Writer serializes summary tables to delimited files under a destination
// directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at the export directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteOptions configures delimited-file writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Delimiter rune
}

// WriteCSV writes a delimited file with the given options, creating the
// destination directory if needed. No row-index column is emitted.
func (w *Writer) WriteCSV(filename string, options WriteOptions) error {
	fullPath := filepath.Join(w.dir, filename)

	slog.Info("Writing report file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if options.Delimiter != 0 {
		writer.Comma = options.Delimiter
	}
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Sync()
}

// ReportFileName builds the export name for one summary report:
// arm_<report_type>_<date>.csv.
func ReportFileName(reportType domain.ReportType, dateStr string) string {
	return fmt.Sprintf("arm_%s_%s.csv", reportType, dateStr)
}

// WriteSummary serializes one summary table to its ';'-delimited report
// file named by report type and date.
func (w *Writer) WriteSummary(table domain.SummaryTable, date domain.ReportDate) error {
	name := ReportFileName(table.Type, date.String)
	if err := w.WriteCSV(name, WriteOptions{
		Headers:   table.Headers,
		Records:   table.Rows,
		Delimiter: ';',
	}); err != nil {
		return fmt.Errorf("failed to export %s: %w", name, err)
	}
	return nil
}

// WriteReports writes both summary reports for one input file.
func (w *Writer) WriteReports(date domain.ReportDate, tables ...domain.SummaryTable) error {
	for _, table := range tables {
		if err := w.WriteSummary(table, date); err != nil {
			return err
		}
	}
	return nil
}
