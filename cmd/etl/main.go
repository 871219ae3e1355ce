package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"armetl/internal/config"
	"armetl/internal/etl"
	"armetl/internal/files"
	"armetl/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "config.yaml", "optional YAML configuration file")
	paramsFile := flag.String("params", "", "parameter workbook path (overrides configuration)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = infrastructure.GetLogger()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	paramsPath := cfg.Params.File
	if *paramsFile != "" {
		paramsPath = *paramsFile
	}

	// Parameter errors are not recoverable; abort before touching any file.
	params, err := config.LoadParameters(paramsPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load run parameters",
			slog.String("params_file", paramsPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Starting accounts-receivable ETL",
		slog.String("raw_data_dir", params.RawDataDir),
		slog.String("region_file", params.RegionFile),
		slog.String("export_dir", params.ExportDir))

	runner := etl.NewRunner(params, logger)
	summary, err := runner.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "ETL run aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Found %d report files\n", summary.Found)
	fmt.Printf("Processing complete: %d processed, %d skipped\n", summary.Processed, len(summary.Failures))
	for _, failure := range summary.Failures {
		fmt.Printf("Skipped %s: %v\n", failure.File, failure.Err)
	}

	exports, err := files.NewDiscovery(params.ExportDir).FindCSVFiles()
	if err != nil {
		logger.WarnContext(ctx, "Failed to list export directory",
			slog.String("export_dir", params.ExportDir),
			slog.String("error", err.Error()))
		return
	}
	fmt.Printf("Export directory %s holds %d report files\n", params.ExportDir, len(exports))
}
