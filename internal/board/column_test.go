package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnIndex(t *testing.T) {
	testCases := []struct {
		name  string
		index int
	}{
		{"a", 0},
		{"b", 1},
		{"k", 10},
		{"l", 11},
		{"z", 25},
		{"aa", 26},
		{"az", 51},
		{"ba", 52},
		{"", BadColumn},
		{"A", BadColumn},
		{"1", BadColumn},
		{"a-", BadColumn},
		{"é", BadColumn},
		{"zzzzzzzzzz", BadColumn},
	}
	for _, test := range testCases {
		assert.Equal(t, test.index, ColumnIndex(test.name), "column %q", test.name)
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	for i := range 2000 {
		assert.Equal(t, i, ColumnIndex(ColumnName(i)))
	}
	assert.Equal(t, "", ColumnName(BadColumn))
	assert.Equal(t, "aa", ColumnName(26))
}
