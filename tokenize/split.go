// Package tokenize splits an input line into non-empty tokens.
package tokenize

import (
	"strings"

	"github.com/chenasraf/penn-shredder/vec"
)

// Delimiters separates command arguments.
const Delimiters = " \t\n"

// Split breaks line into the non-empty runs of bytes between any of the bytes
// in delim. Runs of delimiters collapse, and leading or trailing delimiters
// produce no empty tokens.
//
// Tokens are views into line, not copies: they share its lifetime and must
// not be used once line is overwritten or released. Call Destroy on the
// returned vector before reusing the buffer.
func Split(line []byte, delim string) *vec.Vec[[]byte] {
	tokens := vec.New[[]byte](5, nil)
	isDelim := func(b byte) bool { return strings.IndexByte(delim, b) >= 0 }

	start := -1
	for i, b := range line {
		switch {
		case isDelim(b):
			if start >= 0 {
				tokens.PushBack(line[start:i:i])
				start = -1
			}
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		tokens.PushBack(line[start:len(line):len(line)])
	}
	return tokens
}
