package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// requiredColumns is the fixed set of normalized headers every raw report
// must carry. The unnamed<N> entries are columns whose header cell is blank
// in the source layout.
var requiredColumns = []string{
	"unnamed0", "unnamed1", "unnamed4",
	"balance",
	"due1-30d", "due31-60d", "due61-90d", "due91-120d", "due>120d",
	"citotal", "sall12m", "secbank", "secother",
}

// MissingColumnsError reports required columns absent from the raw table
// after header normalization.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("the following columns are missing in the table: %s", strings.Join(e.Columns, ", "))
}

var headerStripper = strings.NewReplacer(":", "", ".", "", " ", "")

// NormalizeHeaders trims, strips ':' '.' and spaces, and lowercases every
// header. A header cell that normalizes to the empty string at position i
// becomes "unnamed<i>", which is how the source layout names its blank
// header columns.
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		h = strings.ToLower(headerStripper.Replace(strings.TrimSpace(h)))
		if h == "" {
			h = "unnamed" + strconv.Itoa(i)
		}
		normalized[i] = h
	}
	return normalized
}

// columnIndex normalizes the headers and maps each required column to its
// position. Missing columns are reported together, sorted by name.
func columnIndex(headers []string) (map[string]int, error) {
	normalized := NormalizeHeaders(headers)

	index := make(map[string]int, len(normalized))
	for i, h := range normalized {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}
	return index, nil
}

// cell returns the cell at column i, or "" for short rows. excelize trims
// trailing empty cells from each row, so short rows are routine.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount converts a numeric cell to an integer amount, truncating any
// fractional part. Thousands separators are tolerated; blank or unparsable
// cells count as zero.
func parseAmount(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(f)
}
