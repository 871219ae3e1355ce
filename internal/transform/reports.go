package transform

import (
	"sort"
	"strconv"

	"armetl/pkg/contracts/domain"
)

// topPerRegion caps how many debtors each region contributes to the
// top-by-region report.
const topPerRegion = 40

var top40Headers = []string{
	"date", "entity_code", "credit_account", "debtor_name", "country_code",
	"balance", "uninsured_balance", "citotal", "security",
	"due1-30d", "due31-60d", "due61-90d", "due91-120d", "due>120d", "sall12m",
}

var aggHeaders = []string{
	"date", "entity_code", "country_code",
	"balance", "uninsured_balance",
	"due1-30d", "due31-60d", "due61-90d", "due91-120d", "due>120d", "sall12m",
}

// TopByRegion groups the enriched records by region and keeps the 40
// largest balances per group, balance descending. Records with no region
// (unmatched entity codes) drop out of this view. Regions are emitted in
// ascending name order.
func TopByRegion(records []domain.EnrichedRecord, date domain.ReportDate) domain.SummaryTable {
	byRegion := make(map[string][]domain.EnrichedRecord)
	for _, rec := range records {
		if rec.Region == "" {
			continue
		}
		byRegion[rec.Region] = append(byRegion[rec.Region], rec)
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	table := domain.SummaryTable{Type: domain.ReportTop40ByRegion, Headers: top40Headers}
	for _, region := range regions {
		group := byRegion[region]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Balance > group[j].Balance
		})
		if len(group) > topPerRegion {
			group = group[:topPerRegion]
		}
		for _, rec := range group {
			table.Rows = append(table.Rows, []string{
				date.String,
				rec.EntityCode,
				rec.CreditAccount,
				rec.DebtorName,
				rec.CountryCode,
				formatAmount(rec.Balance),
				formatNullAmount(rec.UninsuredBalance),
				formatAmount(rec.CITotal),
				formatAmount(rec.Security),
				formatAmount(rec.Due1To30),
				formatAmount(rec.Due31To60),
				formatAmount(rec.Due61To90),
				formatAmount(rec.Due91To120),
				formatAmount(rec.DueOver120),
				formatAmount(rec.SAll12M),
			})
		}
	}
	return table
}

// aggKey identifies one aggregate report group.
type aggKey struct {
	entityCode  string
	countryCode string
}

// aggSums accumulates the eight summed columns of the aggregate report.
// A missing uninsured balance contributes zero.
type aggSums struct {
	balance    int64
	uninsured  int64
	due1To30   int64
	due31To60  int64
	due61To90  int64
	due91To120 int64
	dueOver120 int64
	sAll12M    int64
}

// AggByEntityCountry sums the numeric columns grouped by
// (entity_code, country_code), groups in ascending key order.
func AggByEntityCountry(records []domain.EnrichedRecord, date domain.ReportDate) domain.SummaryTable {
	sums := make(map[aggKey]*aggSums)
	for _, rec := range records {
		key := aggKey{entityCode: rec.EntityCode, countryCode: rec.CountryCode}
		s, ok := sums[key]
		if !ok {
			s = &aggSums{}
			sums[key] = s
		}
		s.balance += rec.Balance
		s.uninsured += rec.UninsuredBalance.Or(0)
		s.due1To30 += rec.Due1To30
		s.due31To60 += rec.Due31To60
		s.due61To90 += rec.Due61To90
		s.due91To120 += rec.Due91To120
		s.dueOver120 += rec.DueOver120
		s.sAll12M += rec.SAll12M
	}

	keys := make([]aggKey, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].entityCode != keys[j].entityCode {
			return keys[i].entityCode < keys[j].entityCode
		}
		return keys[i].countryCode < keys[j].countryCode
	})

	table := domain.SummaryTable{Type: domain.ReportAggByRegionCountry, Headers: aggHeaders}
	for _, key := range keys {
		s := sums[key]
		table.Rows = append(table.Rows, []string{
			date.String,
			key.entityCode,
			key.countryCode,
			formatAmount(s.balance),
			formatAmount(s.uninsured),
			formatAmount(s.due1To30),
			formatAmount(s.due31To60),
			formatAmount(s.due61To90),
			formatAmount(s.due91To120),
			formatAmount(s.dueOver120),
			formatAmount(s.sAll12M),
		})
	}
	return table
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatNullAmount serializes a missing amount as an empty field.
func formatNullAmount(v domain.NullAmount) string {
	if !v.Valid {
		return ""
	}
	return formatAmount(v.Int64)
}
