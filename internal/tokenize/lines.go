// Package tokenize splits .SRCINFO text into key/value pairs.
//
// All strings produced here are sub-slices of the input; nothing is copied.
package tokenize

import (
	"iter"
	"strings"
)

// Lines yields every non-blank line of text with surrounding whitespace
// trimmed, together with its 1-based line number. The sequence can be
// ranged over more than once.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		rest := text
		for number := 1; rest != ""; number++ {
			line, tail, _ := strings.Cut(rest, "\n")
			rest = tail
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(number, line) {
				return
			}
		}
	}
}

// SplitLine splits line at the first '=' into a trimmed key and value.
// It reports false when the line has no '='.
func SplitLine(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
