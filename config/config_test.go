package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chenasraf/penn-shredder/utils"
)

// --- helpers ---

func writeFile(t *testing.T, p, s string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
}

func isolateConfigLookup(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg-empty"))
	t.Setenv(utils.CONFIG_ENV, "")
	return home
}

// --- tests ---

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolateConfigLookup(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if c != Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", c, Default())
	}
	if c.LineCapacity != 4096 {
		t.Fatalf("LineCapacity = %d, want 4096", c.LineCapacity)
	}
}

func TestLoad_ConfigPathIsDirectory(t *testing.T) {
	home := isolateConfigLookup(t)
	dir := filepath.Join(home, "conf.d")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Setenv(utils.CONFIG_ENV, dir)

	_, err := Load()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load err = %v, want ErrInvalid", err)
	}
	if !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("Load err = %q, want it to name the directory problem", err)
	}
}

func TestLoad_XDGWithCommentsAndTrailingCommas(t *testing.T) {
	home := isolateConfigLookup(t)
	xdg := filepath.Join(home, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	p := filepath.Join(xdg, utils.APP_NAME, utils.CONFIG_FILE)
	writeFile(t, p, `{
  // custom prompt
  "prompt": "$ ",
  "logLevel": "debug",
}`)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if c.Prompt != "$ " {
		t.Fatalf("Prompt = %q, want %q", c.Prompt, "$ ")
	}
	if c.Notice != DefaultNotice {
		t.Fatalf("Notice = %q, want default", c.Notice)
	}
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", c.LogLevel)
	}
	if c.Path != p {
		t.Fatalf("Path = %q, want %q", c.Path, p)
	}
}

func TestLoad_DotFileInHome(t *testing.T) {
	home := isolateConfigLookup(t)
	writeFile(t, filepath.Join(home, utils.DOT_CONFIG_FILE), `{"lineCapacity": 16}`)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if c.LineCapacity != 16 {
		t.Fatalf("LineCapacity = %d, want 16", c.LineCapacity)
	}
}

func TestLoad_ExplicitMissingIsError(t *testing.T) {
	home := isolateConfigLookup(t)
	t.Setenv(utils.CONFIG_ENV, filepath.Join(home, "missing.jsonc"))

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load err = %v, want ErrInvalid", err)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":        `{"prompt": `,
		"type":          `{"lineCapacity": "big"}`,
		"tiny capacity": `{"lineCapacity": 1}`,
		"negative":      `{"lineCapacity": -3}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name+".jsonc")
			writeFile(t, p, body)
			if _, err := LoadFile(p); !errors.Is(err, ErrInvalid) {
				t.Fatalf("LoadFile(%s) err = %v, want ErrInvalid", body, err)
			}
		})
	}
}
