package session

import (
	"iter"
	"strings"
)

// Lines yields the pieces of text separated by newlines, with their index.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, text, found = strings.Cut(text, "\n")
			if !yield(i, strings.TrimSuffix(piece, "\r")) {
				return
			}
			i += 1
		}
	}
}
