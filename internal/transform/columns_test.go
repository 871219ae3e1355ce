package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "strips punctuation and lowercases",
			headers: []string{"Balance:", "Due 1-30d.", " CI Total "},
			want:    []string{"balance", "due1-30d", "citotal"},
		},
		{
			name:    "blank headers become positional names",
			headers: []string{"", "  ", "Country", ""},
			want:    []string{"unnamed0", "unnamed1", "country", "unnamed3"},
		},
		{
			name:    "greater-than survives",
			headers: []string{"Due >120d"},
			want:    []string{"due>120d"},
		},
		{
			name:    "punctuation-only header becomes positional",
			headers: []string{":."},
			want:    []string{"unnamed0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeaders(tt.headers))
		})
	}
}

func TestColumnIndex(t *testing.T) {
	t.Run("missing columns reported together", func(t *testing.T) {
		_, err := columnIndex([]string{"", "", "x", "y", "", "Balance", "CI Total"})

		var missingErr *MissingColumnsError
		assert.ErrorAs(t, err, &missingErr)
		assert.Contains(t, missingErr.Columns, "due1-30d")
		assert.Contains(t, missingErr.Columns, "secbank")
		assert.NotContains(t, missingErr.Columns, "balance")
		assert.NotContains(t, missingErr.Columns, "unnamed0")
		assert.Contains(t, err.Error(), "due>120d")
	})

	t.Run("all required present", func(t *testing.T) {
		index, err := columnIndex(testHeaders())
		assert.NoError(t, err)
		assert.Equal(t, 0, index["unnamed0"])
		assert.Equal(t, 5, index["balance"])
		assert.Equal(t, 14, index["secother"])
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1000", 1000},
		{"1000.99", 1000},
		{"-42.5", -42},
		{"1,234,567.8", 1234567},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.in), "parseAmount(%q)", tt.in)
	}
}
