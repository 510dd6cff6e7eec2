package utils

import (
	"os"
	"path/filepath"
)

const (
	APP_NAME         = "penn-shredder"
	CONFIG_FILE      = "config.jsonc"
	DOT_CONFIG_FILE  = ".penn-shredder.jsonc"
	CONFIG_ENV       = "SHREDDER_CONFIG"
	LOG_LEVEL_ENV    = "SHREDDER_LOG_LEVEL"
	DEFAULT_LINE_CAP = 4096
)

// ConfigCandidates lists the config file locations in lookup order. An explicit
// $SHREDDER_CONFIG always comes first.
func ConfigCandidates() []string {
	var paths []string
	if p := os.Getenv(CONFIG_ENV); p != "" {
		paths = append(paths, p)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, APP_NAME, CONFIG_FILE))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", APP_NAME, CONFIG_FILE),
			filepath.Join(home, DOT_CONFIG_FILE),
		)
	}
	return paths
}

// FileExists reports whether path exists and is a regular file.
func FileExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}
