package etl

import (
	"context"
	"log/slog"

	"armetl/internal/config"
	"armetl/internal/extract"
	"armetl/internal/files"
	"armetl/internal/load"
	"armetl/internal/transform"
)

// Runner executes the Extract-Transform-Load pipeline over every file in
// the raw-data directory, one file at a time.
type Runner struct {
	params    config.Parameters
	logger    *slog.Logger
	discovery *files.Discovery
	writer    *load.Writer
}

// NewRunner creates a pipeline runner for one set of run parameters.
func NewRunner(params config.Parameters, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		params:    params,
		logger:    logger,
		discovery: files.NewDiscovery(params.RawDataDir),
		writer:    load.NewWriter(params.ExportDir),
	}
}

// FileFailure records one skipped file and the stage error that caused it.
type FileFailure struct {
	File string
	Err  error
}

// Summary reports the outcome of one run.
type Summary struct {
	Found     int
	Processed int
	Failures  []FileFailure
}

// ProcessFile runs Extract, Transform and Load for a single raw report
// file. Any failure is returned as a *StageError tagged with the stage it
// occurred in; the file's outputs are not retried or cleaned up.
func (r *Runner) ProcessFile(ctx context.Context, name string) error {
	table, date, err := extract.Extract(r.params.RawDataDir, name)
	if err != nil {
		return stageErr(StageExtract, name, err)
	}
	r.logger.InfoContext(ctx, "File extracted successfully",
		slog.String("file", name),
		slog.String("reporting_date", date.String),
		slog.Int("rows", len(table.Rows)))

	top40, agg, err := transform.Transform(table, date, r.params.RegionFile)
	if err != nil {
		return stageErr(StageTransform, name, err)
	}
	r.logger.InfoContext(ctx, "File transformed successfully",
		slog.String("file", name),
		slog.Int("top40_rows", len(top40.Rows)),
		slog.Int("agg_rows", len(agg.Rows)))

	if err := r.writer.WriteReports(date, top40, agg); err != nil {
		return stageErr(StageLoad, name, err)
	}
	r.logger.InfoContext(ctx, "File loaded successfully", slog.String("file", name))

	return nil
}

// Run processes every file in the raw-data directory in name order. A
// failing file is logged with its name and message and skipped; processing
// continues with the next file. Only directory listing failure aborts the
// run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	reportFiles, err := r.discovery.FindReportFiles()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Found: len(reportFiles)}
	r.logger.InfoContext(ctx, "Report files discovered",
		slog.Int("count", len(reportFiles)),
		slog.String("raw_data_dir", r.params.RawDataDir))

	for i, f := range reportFiles {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		r.logger.InfoContext(ctx, "Processing file",
			slog.Int("current", i+1),
			slog.Int("total", len(reportFiles)),
			slog.String("file", f.Name))

		if err := r.ProcessFile(ctx, f.Name); err != nil {
			r.logger.ErrorContext(ctx, "Failed to execute ETL on file",
				slog.String("file", f.Name),
				slog.String("error", err.Error()))
			summary.Failures = append(summary.Failures, FileFailure{File: f.Name, Err: err})
			continue
		}
		summary.Processed++
	}

	r.logger.InfoContext(ctx, "Run complete",
		slog.Int("found", summary.Found),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", len(summary.Failures)))

	return summary, nil
}
