package transform

import (
	"fmt"
	"strings"
	"unicode"

	"armetl/pkg/contracts/domain"
)

// excludedDebtors removes rows whose lowercased debtor name contains any of
// these fragments. Substring match, so "Zaaaz" is dropped along with
// "AAA Corp"; this over-exclusion is long-standing source behavior and is
// preserved as-is.
var excludedDebtors = []string{"aaa", "bbb", "ccc", "ddd", "eee"}

// excludedEntityCodes removes rows whose entity code contains any of these
// fragments. Substring match, not whole-code match, same caveat as above.
var excludedEntityCodes = []string{"1", "2", "3", "4"}

// rawLine is one selected-and-typed row before the filter sequence runs.
type rawLine struct {
	longCreditAccount string
	debtorName        string
	countryCode       string
	balance           int64
	due1To30          int64
	due31To60         int64
	due61To90         int64
	due91To120        int64
	dueOver120        int64
	ciTotal           int64
	sAll12M           int64
	secBank           int64
	secOther          int64
}

// PrepareRecords runs the full column-preparation sequence on a raw table:
// select required columns, type the numeric ones, rename the positional
// identifier columns, then apply the fixed filter and derivation steps.
func PrepareRecords(table domain.RawTable) ([]domain.DebtorRecord, error) {
	index, err := columnIndex(table.Headers)
	if err != nil {
		return nil, err
	}

	records := make([]domain.DebtorRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		line := rawLine{
			longCreditAccount: cell(row, index["unnamed0"]),
			debtorName:        cell(row, index["unnamed1"]),
			countryCode:       cell(row, index["unnamed4"]),
			balance:           parseAmount(cell(row, index["balance"])),
			due1To30:          parseAmount(cell(row, index["due1-30d"])),
			due31To60:         parseAmount(cell(row, index["due31-60d"])),
			due61To90:         parseAmount(cell(row, index["due61-90d"])),
			due91To120:        parseAmount(cell(row, index["due91-120d"])),
			dueOver120:        parseAmount(cell(row, index["due>120d"])),
			ciTotal:           parseAmount(cell(row, index["citotal"])),
			sAll12M:           parseAmount(cell(row, index["sall12m"])),
			secBank:           parseAmount(cell(row, index["secbank"])),
			secOther:          parseAmount(cell(row, index["secother"])),
		}

		if line.balance <= 0 {
			continue
		}

		name := strings.ToLower(line.debtorName)
		if containsAny(name, excludedDebtors) {
			continue
		}

		entityCode, creditAccount, err := splitCreditAccount(line.longCreditAccount)
		if err != nil {
			return nil, err
		}
		if containsAny(entityCode, excludedEntityCodes) {
			continue
		}

		records = append(records, domain.DebtorRecord{
			EntityCode:    entityCode,
			CreditAccount: creditAccount,
			DebtorName:    capitalize(name),
			CountryCode:   line.countryCode,
			Balance:       line.balance,
			Due1To30:      line.due1To30,
			Due31To60:     line.due31To60,
			Due61To90:     line.due61To90,
			Due91To120:    line.due91To120,
			DueOver120:    line.dueOver120,
			CITotal:       line.ciTotal,
			SAll12M:       line.sAll12M,
			Security:      line.secBank + line.secOther,
		})
	}

	return records, nil
}

// splitCreditAccount splits the encoded account identifier on '/' into its
// three segments, discarding the first and returning entity code and credit
// account.
func splitCreditAccount(encoded string) (entityCode, creditAccount string, err error) {
	parts := strings.Split(encoded, "/")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("account identifier %q: expected 3 '/'-separated segments, got %d", encoded, len(parts))
	}
	return parts[1], parts[2], nil
}

func containsAny(s string, fragments []string) bool {
	for _, frag := range fragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how debtor names are normalized downstream.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
