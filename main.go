package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/chenasraf/penn-shredder/config"
	"github.com/chenasraf/penn-shredder/logging"
	"github.com/chenasraf/penn-shredder/runner"
	"github.com/chenasraf/penn-shredder/shell"
	"github.com/chenasraf/penn-shredder/utils"
	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		utils.PrintHelp(os.Stdout)
		return 0
	}
	timeout, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		utils.PrintHelp(os.Stderr)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	closer := logging.Configure(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	defer closer.Close()
	log := logging.Base()
	log.Info().Dur("timeout", timeout).Str("config", cfg.Path).Msg("starting")

	r := runner.New(runner.Options{
		Timeout: timeout,
		Notice:  cfg.Notice,
		Diag:    diagWriter(),
		Logger:  logging.WithComponent("runner"),
	})
	if err := r.Install(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer r.Stop()

	sh := shell.New(os.Stdin, r, shell.Options{
		Prompt:       cfg.Prompt,
		LineCapacity: cfg.LineCapacity,
		Logger:       logging.WithComponent("shell"),
	})
	if err := sh.Run(); err != nil {
		fmt.Fprintln(r.Diag(), "Error:", err)
		log.Error().Err(err).Int("launched", r.Launched()).Msg("shell stopped")
		return 1
	}
	log.Info().Int("launched", r.Launched()).Msg("end of input")
	return 0
}

// parseArgs reads the optional timeout in whole seconds. Only plain decimal
// digits are accepted.
func parseArgs(args []string) (time.Duration, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
	default:
		return 0, fmt.Errorf("%w: expected at most one argument, got %d", errUsage, len(args))
	}

	s := args[0]
	if s == "" {
		return 0, fmt.Errorf("%w: empty timeout", errUsage)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid timeout %q", errUsage, s)
		}
	}
	secs, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timeout %q", errUsage, s)
	}
	return time.Duration(secs) * time.Second, nil
}

// diagWriter is stderr, made ANSI-safe when it is a terminal.
func diagWriter() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return colorable.NewColorable(os.Stderr)
	}
	return colorable.NewNonColorable(os.Stderr)
}
