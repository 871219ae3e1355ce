package transform

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armetl/pkg/contracts/domain"
)

func testDate(t *testing.T) domain.ReportDate {
	t.Helper()
	return domain.ReportDate{String: "2023-10-05"}
}

func enrichedRec(entity, region string, balance int64) domain.EnrichedRecord {
	return domain.EnrichedRecord{
		DebtorRecord: domain.DebtorRecord{
			EntityCode:    entity,
			CreditAccount: "100",
			DebtorName:    "Debtor",
			CountryCode:   "SE",
			Balance:       balance,
		},
		Region:           region,
		UninsuredBalance: domain.Amount(balance / 2),
	}
}

func TestTopByRegion(t *testing.T) {
	t.Run("caps each region at 40 and never drops a larger balance", func(t *testing.T) {
		var records []domain.EnrichedRecord
		for i := int64(1); i <= 50; i++ {
			records = append(records, enrichedRec("5", "North", i*10))
		}
		records = append(records, enrichedRec("6", "South", 7))

		table := TopByRegion(records, testDate(t))

		require.Len(t, table.Rows, 41) // 40 for North, 1 for South

		balanceCol := indexOf(t, table.Headers, "balance")
		var northBalances []int64
		for _, row := range table.Rows[:40] {
			v, err := strconv.ParseInt(row[balanceCol], 10, 64)
			require.NoError(t, err)
			northBalances = append(northBalances, v)
		}

		// Balance descending; the smallest retained balance beats every
		// excluded one (excluded were 10..100, retained are 110..500).
		for i := 1; i < len(northBalances); i++ {
			assert.GreaterOrEqual(t, northBalances[i-1], northBalances[i])
		}
		assert.Equal(t, int64(500), northBalances[0])
		assert.Equal(t, int64(110), northBalances[39])
	})

	t.Run("regions come out in ascending name order", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enrichedRec("5", "South", 10),
			enrichedRec("6", "North", 20),
		}

		table := TopByRegion(records, testDate(t))
		require.Len(t, table.Rows, 2)

		entityCol := indexOf(t, table.Headers, "entity_code")
		assert.Equal(t, "6", table.Rows[0][entityCol]) // North first
		assert.Equal(t, "5", table.Rows[1][entityCol])
	})

	t.Run("records without region are dropped from this view", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			enrichedRec("5", "North", 100),
			enrichedRec("9", "", 99999),
		}

		table := TopByRegion(records, testDate(t))
		require.Len(t, table.Rows, 1)
	})

	t.Run("fixed column order with date prepended", func(t *testing.T) {
		table := TopByRegion([]domain.EnrichedRecord{enrichedRec("5", "North", 100)}, testDate(t))

		assert.Equal(t, []string{
			"date", "entity_code", "credit_account", "debtor_name", "country_code",
			"balance", "uninsured_balance", "citotal", "security",
			"due1-30d", "due31-60d", "due61-90d", "due91-120d", "due>120d", "sall12m",
		}, table.Headers)
		assert.Equal(t, "2023-10-05", table.Rows[0][0])
		assert.Equal(t, domain.ReportTop40ByRegion, table.Type)
	})

	t.Run("null uninsured balance serializes empty", func(t *testing.T) {
		rec := enrichedRec("5", "North", 100)
		rec.UninsuredBalance = domain.NullAmount{}

		table := TopByRegion([]domain.EnrichedRecord{rec}, testDate(t))
		col := indexOf(t, table.Headers, "uninsured_balance")
		assert.Equal(t, "", table.Rows[0][col])
	})
}

func TestAggByEntityCountry(t *testing.T) {
	t.Run("sums per entity and country", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			aggRec("5", "SE", 100, 10),
			aggRec("5", "SE", 200, 20),
			aggRec("5", "NO", 50, 5),
			aggRec("6", "SE", 70, 7),
		}

		table := AggByEntityCountry(records, testDate(t))
		require.Len(t, table.Rows, 3)

		assert.Equal(t, []string{
			"date", "entity_code", "country_code",
			"balance", "uninsured_balance",
			"due1-30d", "due31-60d", "due61-90d", "due91-120d", "due>120d", "sall12m",
		}, table.Headers)

		// Ascending (entity_code, country_code) order.
		assert.Equal(t, []string{"2023-10-05", "5", "NO", "50", "5", "1", "1", "1", "1", "1", "1"}, table.Rows[0])
		assert.Equal(t, []string{"2023-10-05", "5", "SE", "300", "30", "2", "2", "2", "2", "2", "2"}, table.Rows[1])
		assert.Equal(t, []string{"2023-10-05", "6", "SE", "70", "7", "1", "1", "1", "1", "1", "1"}, table.Rows[2])
	})

	t.Run("balance conservation", func(t *testing.T) {
		records := []domain.EnrichedRecord{
			aggRec("5", "SE", 123, 0),
			aggRec("5", "SE", 456, 0),
			aggRec("6", "NO", 789, 0),
		}

		table := AggByEntityCountry(records, testDate(t))

		var inputTotal, outputTotal int64
		for _, rec := range records {
			inputTotal += rec.Balance
		}
		balanceCol := indexOf(t, table.Headers, "balance")
		for _, row := range table.Rows {
			v, err := strconv.ParseInt(row[balanceCol], 10, 64)
			require.NoError(t, err)
			outputTotal += v
		}
		assert.Equal(t, inputTotal, outputTotal)
	})

	t.Run("null uninsured balance sums as zero", func(t *testing.T) {
		rec := aggRec("9", "SE", 100, 0)
		rec.UninsuredBalance = domain.NullAmount{}

		table := AggByEntityCountry([]domain.EnrichedRecord{rec}, testDate(t))
		col := indexOf(t, table.Headers, "uninsured_balance")
		assert.Equal(t, "0", table.Rows[0][col])
	})
}

// aggRec builds an enriched record with each aging bucket set to 1 so that
// group sizes are visible in the aggregate sums.
func aggRec(entity, country string, balance, uninsured int64) domain.EnrichedRecord {
	return domain.EnrichedRecord{
		DebtorRecord: domain.DebtorRecord{
			EntityCode:  entity,
			CountryCode: country,
			Balance:     balance,
			Due1To30:    1,
			Due31To60:   1,
			Due61To90:   1,
			Due91To120:  1,
			DueOver120:  1,
			SAll12M:     1,
		},
		Region:           "North",
		UninsuredBalance: domain.Amount(uninsured),
	}
}

func indexOf(t *testing.T, headers []string, name string) int {
	t.Helper()
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	t.Fatalf("header %q not found in %v", name, headers)
	return -1
}
