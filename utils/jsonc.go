package utils

import (
	"fmt"

	"github.com/tailscale/hujson"
)

// StandardizeJSONC strips comments and trailing commas so the result can be
// fed to a plain JSON decoder.
func StandardizeJSONC(jsonc []byte) ([]byte, error) {
	std, err := hujson.Standardize(jsonc)
	if err != nil {
		return nil, fmt.Errorf("jsonc: %w", err)
	}
	return std, nil
}
