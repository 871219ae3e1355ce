// Package config provides configuration management for the
// accounts-receivable ETL. It loads ambient settings (logging, parameter
// workbook location) and the per-run paths.
//
// # Configuration Sources
//
// Ambient configuration is loaded in order of precedence:
//
//	1. Environment variables (ARM_* prefix)
//	2. An optional YAML configuration file
//	3. Default values
//
// For example:
//
//	ARM_LOGGING_LEVEL=debug
//	ARM_LOGGING_OUTPUT=both
//	ARM_PARAMS_FILE=./parameter_paths.xlsx
//
// # Run parameters
//
// The three run paths (raw-data folder, region-reference file, export
// folder) come from a parameter workbook with an "etl_parameters" sheet;
// see LoadParameters. A malformed workbook aborts the run: unlike per-file
// ETL failures, parameter errors are never skipped.
package config
