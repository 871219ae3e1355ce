package transform

import (
	"log/slog"

	"armetl/pkg/contracts/domain"
)

// Transform runs the full transform stage on one raw table: column
// preparation, region enrichment, and the two summary views.
func Transform(table domain.RawTable, date domain.ReportDate, regionFile string) (top40, agg domain.SummaryTable, err error) {
	records, err := PrepareRecords(table)
	if err != nil {
		return domain.SummaryTable{}, domain.SummaryTable{}, err
	}

	regions, err := LoadRegions(regionFile)
	if err != nil {
		return domain.SummaryTable{}, domain.SummaryTable{}, err
	}

	enriched := Enrich(records, regions)

	slog.Debug("Transformed raw table",
		slog.Int("input_rows", len(table.Rows)),
		slog.Int("retained_rows", len(enriched)),
		slog.Int("region_entries", len(regions)))

	return TopByRegion(enriched, date), AggByEntityCountry(enriched, date), nil
}
