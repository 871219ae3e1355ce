package transform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armetl/pkg/contracts/domain"
)

func TestTransform(t *testing.T) {
	date := domain.ReportDate{String: "2023-10-05"}

	t.Run("produces both views", func(t *testing.T) {
		regionFile := writeRegionFile(t,
			"entity_code;region;tax_rate\n"+
				"5;North;0,10\n")
		table := domain.RawTable{
			Headers: testHeaders(),
			Rows: [][]string{
				testRow("0/5/100", "alpha trading", "SE", 1000),
				testRow("0/5/200", "beta logistics", "NO", 500),
			},
		}

		top40, agg, err := Transform(table, date, regionFile)
		require.NoError(t, err)

		assert.Equal(t, domain.ReportTop40ByRegion, top40.Type)
		assert.Len(t, top40.Rows, 2)
		assert.Equal(t, domain.ReportAggByRegionCountry, agg.Type)
		assert.Len(t, agg.Rows, 2) // (5,SE) and (5,NO)
	})

	t.Run("region file failure propagates", func(t *testing.T) {
		table := domain.RawTable{Headers: testHeaders()}

		_, _, err := Transform(table, date, filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, ErrRegionFileNotFound)
	})

	t.Run("column failure precedes region load", func(t *testing.T) {
		table := domain.RawTable{Headers: []string{"nothing", "useful"}}

		_, _, err := Transform(table, date, filepath.Join(t.TempDir(), "missing.csv"))
		var missingErr *MissingColumnsError
		assert.ErrorAs(t, err, &missingErr)
	})
}
