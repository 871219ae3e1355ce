package transform

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"armetl/pkg/contracts/domain"
)

var (
	// ErrRegionFileNotFound reports a missing region reference file.
	ErrRegionFileNotFound = errors.New("region reference file not found")

	// ErrJoinKey reports a region reference file without the entity_code
	// join column.
	ErrJoinKey = errors.New("region reference file has no entity_code column")
)

// LoadRegions reads the region reference table: a ';'-separated file with a
// header row, ',' as decimal separator, keyed by entity code. entity_name
// and vat_insured columns are ignored. The first row for a duplicated
// entity code wins.
func LoadRegions(path string) (map[string]domain.RegionEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRegionFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to open region reference file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read region reference header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	entityCol, ok := index["entity_code"]
	if !ok {
		return nil, ErrJoinKey
	}
	taxCol, ok := index["tax_rate"]
	if !ok {
		return nil, fmt.Errorf("region reference file has no tax_rate column")
	}
	regionCol, ok := index["region"]
	if !ok {
		return nil, fmt.Errorf("region reference file has no region column")
	}

	entries := make(map[string]domain.RegionEntry)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read region reference row: %w", err)
		}

		entityCode := strings.TrimSpace(cell(row, entityCol))
		if entityCode == "" {
			continue
		}
		if _, seen := entries[entityCode]; seen {
			continue
		}

		taxRate, err := parseDecimalComma(cell(row, taxCol))
		if err != nil {
			return nil, fmt.Errorf("entity %s: invalid tax rate: %w", entityCode, err)
		}

		entries[entityCode] = domain.RegionEntry{
			EntityCode: entityCode,
			Region:     strings.TrimSpace(cell(row, regionCol)),
			TaxRate:    taxRate,
		}
	}

	return entries, nil
}

// parseDecimalComma parses a decimal value written with ',' as the decimal
// separator, as the region reference file uses.
func parseDecimalComma(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}
