package domain

import (
	"github.com/shopspring/decimal"
)

// DebtorRecord is one cleaned credit-account line from a raw report,
// after column selection, renaming and the fixed filter sequence.
type DebtorRecord struct {
	EntityCode    string `json:"entity_code"`
	CreditAccount string `json:"credit_account"`
	DebtorName    string `json:"debtor_name"`
	CountryCode   string `json:"country_code"`
	Balance       int64  `json:"balance"`
	Due1To30      int64  `json:"due_1_30d"`
	Due31To60     int64  `json:"due_31_60d"`
	Due61To90     int64  `json:"due_61_90d"`
	Due91To120    int64  `json:"due_91_120d"`
	DueOver120    int64  `json:"due_over_120d"`
	CITotal       int64  `json:"citotal"`
	SAll12M       int64  `json:"sall12m"`
	Security      int64  `json:"security"`
}

// RegionEntry is one row of the region reference table, keyed by entity code.
type RegionEntry struct {
	EntityCode string          `json:"entity_code"`
	Region     string          `json:"region"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
}

// NullAmount is an integer amount that may be missing, mirroring how a
// failed reference join leaves the derived balance undefined. A missing
// amount serializes to an empty field and contributes zero to sums.
type NullAmount struct {
	Int64 int64
	Valid bool
}

// Amount returns a present NullAmount.
func Amount(v int64) NullAmount {
	return NullAmount{Int64: v, Valid: true}
}

// Or returns the amount, or fallback when missing.
func (n NullAmount) Or(fallback int64) int64 {
	if !n.Valid {
		return fallback
	}
	return n.Int64
}

// EnrichedRecord is a DebtorRecord joined against the region reference
// table. Region is empty and TaxRate invalid for unmatched entity codes.
type EnrichedRecord struct {
	DebtorRecord
	Region           string              `json:"region,omitempty"`
	TaxRate          decimal.NullDecimal `json:"tax_rate,omitempty"`
	UninsuredBalance NullAmount          `json:"uninsured_balance"`
}
