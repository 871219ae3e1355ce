// Package etl orchestrates the accounts-receivable pipeline: for every raw
// report file, Extract then Transform then Load, serially, one file at a
// time. Per-file failures are tagged with their stage, logged, and skipped;
// the run carries on with the next file.
package etl
