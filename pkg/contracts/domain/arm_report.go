package domain

import (
	"time"
)

// RawTable is the fixed spreadsheet region read from a raw report file:
// the header row plus the data rows between the header block and the
// footer block. Cells are kept as strings until column preparation.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ReportDate carries the reporting date of one input file in both the
// string form used for output file names and the parsed calendar date.
type ReportDate struct {
	String string
	Time   time.Time
}

// ReportType names one of the two summary reports emitted per input file.
type ReportType string

const (
	ReportTop40ByRegion      ReportType = "top40_by_region"
	ReportAggByRegionCountry ReportType = "agg_by_region_country"
)

// SummaryTable is a fully materialized report view ready for export:
// an ordered header row and the matching data rows.
type SummaryTable struct {
	Type    ReportType
	Headers []string
	Rows    [][]string
}
