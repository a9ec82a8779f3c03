package board

import "math"

// BadColumn is the index every unrecognised column name resolves to. It is
// outside any grid, so actions on it are silent no-ops.
const BadColumn = -1

// ColumnIndex maps a lowercase column name to a zero based index:
// "a".."z" are 0..25, "aa" is 26, "ab" is 27 and so on.
func ColumnIndex(name string) int {
	if name == "" {
		return BadColumn
	}
	n := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'a' || c > 'z' {
			return BadColumn
		}
		n = n*26 + int(c-'a'+1)
		if n > math.MaxInt32 {
			return BadColumn
		}
	}
	return n - 1
}

// ColumnName is the inverse of [ColumnIndex].
func ColumnName(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for i >= 0 {
		buf = append(buf, byte('a'+i%26))
		i = i/26 - 1
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}
