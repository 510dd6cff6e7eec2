package runner

import (
	"github.com/samber/lo"
)

// BuildArgv copies tokens into an argument vector. The first token is the
// executable path and is used verbatim: there is no PATH search.
//
// Tokens usually alias a line buffer that is reused on the next cycle, so the
// copy is what lets argv outlive it.
func BuildArgv(tokens [][]byte) ([]string, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}
	return lo.Map(tokens, func(tok []byte, _ int) string {
		return string(tok)
	}), nil
}
