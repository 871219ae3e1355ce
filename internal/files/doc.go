// Package files provides file system discovery utilities for the
// accounts-receivable ETL.
//
// Discovery lists candidate raw report files in the raw-data directory and
// previously exported CSV reports. Name validation is deliberately left to
// the extract stage so that malformed file names are logged and skipped
// rather than silently ignored.
//
// Example usage:
//
//	discovery := files.NewDiscovery("/path/to/raw_data")
//	reports, err := discovery.FindReportFiles()
package files
