package transform

import (
	"github.com/shopspring/decimal"

	"armetl/pkg/contracts/domain"
)

var one = decimal.NewFromInt(1)

// Enrich left-joins the prepared records against the region reference table
// on entity code and computes the uninsured balance per record. Records
// without a matching entity code carry a null tax rate, an empty region and
// a null uninsured balance.
func Enrich(records []domain.DebtorRecord, regions map[string]domain.RegionEntry) []domain.EnrichedRecord {
	enriched := make([]domain.EnrichedRecord, 0, len(records))
	for _, rec := range records {
		e := domain.EnrichedRecord{DebtorRecord: rec}
		if entry, ok := regions[rec.EntityCode]; ok {
			e.Region = entry.Region
			e.TaxRate = decimal.NullDecimal{Decimal: entry.TaxRate, Valid: true}
			e.UninsuredBalance = uninsuredBalance(rec, entry.TaxRate)
		}
		enriched = append(enriched, e)
	}
	return enriched
}

// uninsuredBalance computes max(0, (balance - security) / (1 + taxRate) - citotal),
// truncated to an integer. A tax rate of -1 would divide by zero; such a
// record gets a null result instead.
func uninsuredBalance(rec domain.DebtorRecord, taxRate decimal.Decimal) domain.NullAmount {
	divisor := one.Add(taxRate)
	if divisor.IsZero() {
		return domain.NullAmount{}
	}

	net := decimal.NewFromInt(rec.Balance - rec.Security)
	uninsured := net.Div(divisor).Sub(decimal.NewFromInt(rec.CITotal))
	if uninsured.IsNegative() {
		return domain.Amount(0)
	}
	return domain.Amount(uninsured.IntPart())
}
