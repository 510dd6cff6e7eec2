// Package config loads the optional penn-shredder configuration file.
//
// The file is JSONC (JSON with comments and trailing commas). Every key is
// optional; a missing file yields Default().
//
//	{
//	  // printed to stderr before each command
//	  "prompt": "penn-shredder# ",
//	  "notice": "Bwahaha ... tonight I dine on turtle soup\n",
//	  "lineCapacity": 4096,
//	  "logFile": "/tmp/penn-shredder.log",
//	  "logLevel": "debug",
//	}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chenasraf/penn-shredder/utils"
	json "github.com/neilotoole/jsoncolor"
	"github.com/samber/lo"
)

const (
	DefaultPrompt = "penn-shredder# "
	DefaultNotice = "Bwahaha ... tonight I dine on turtle soup\n"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the user-tunable settings. Zero values mean "use the default".
type Config struct {
	Prompt       string `json:"prompt,omitempty"`
	Notice       string `json:"notice,omitempty"`
	LineCapacity int    `json:"lineCapacity,omitempty"`
	LogFile      string `json:"logFile,omitempty"`
	LogLevel     string `json:"logLevel,omitempty"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"-"`
}

func Default() Config {
	return Config{
		Prompt:       DefaultPrompt,
		Notice:       DefaultNotice,
		LineCapacity: utils.DEFAULT_LINE_CAP,
	}
}

// Load reads the first existing file from utils.ConfigCandidates. An explicit
// $SHREDDER_CONFIG that does not exist is an error; the other locations are
// simply skipped. A directory at any candidate path is an error.
func Load() (Config, error) {
	for i, p := range utils.ConfigCandidates() {
		if utils.FileExists(p) {
			return LoadFile(p)
		}
		if utils.DirExists(p) {
			return Config{}, fmt.Errorf("%w: %s: is a directory", ErrInvalid, p)
		}
		if i == 0 && os.Getenv(utils.CONFIG_ENV) != "" {
			return Config{}, fmt.Errorf("%w: %s=%q: no such file", ErrInvalid, utils.CONFIG_ENV, p)
		}
	}
	return Default(), nil
}

// LoadFile parses the config at path and fills in defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	std, err := utils.StandardizeJSONC(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	var c Config
	if err := json.Unmarshal(std, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	c.Path = path
	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return c.withDefaults(), nil
}

func (c Config) validate() error {
	if c.LineCapacity < 0 || c.LineCapacity == 1 {
		return fmt.Errorf("lineCapacity must be at least 2, got %d", c.LineCapacity)
	}
	return nil
}

func (c Config) withDefaults() Config {
	d := Default()
	c.Prompt = lo.CoalesceOrEmpty(c.Prompt, d.Prompt)
	c.Notice = lo.CoalesceOrEmpty(c.Notice, d.Notice)
	c.LineCapacity = lo.Ternary(c.LineCapacity == 0, d.LineCapacity, c.LineCapacity)
	return c
}
