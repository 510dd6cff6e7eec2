// Package shell implements the prompt/read/run loop.
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/chenasraf/penn-shredder/runner"
	"github.com/chenasraf/penn-shredder/tokenize"
	"github.com/rs/zerolog"
)

// Runner is the process side of the shell: it runs one command to completion.
type Runner interface {
	Run(argv []string) error
	// Diag is where the prompt and other diagnostics go.
	Diag() io.Writer
}

// Options configures a Shell.
type Options struct {
	Prompt       string
	LineCapacity int
	Logger       zerolog.Logger
}

// Shell reads commands from input and hands them to a Runner, one at a time.
type Shell struct {
	runner Runner
	lines  *LineReader
	prompt string
	log    zerolog.Logger
}

func New(input io.Reader, r Runner, opts Options) *Shell {
	return &Shell{
		runner: r,
		lines:  NewLineReader(input, opts.LineCapacity),
		prompt: opts.Prompt,
		log:    opts.Logger,
	}
}

// Run loops until end-of-input. It returns nil when input ends at an empty
// prompt, after moving the terminal to a fresh line. Read errors and fatal
// runner errors end the loop with an error.
func (s *Shell) Run() error {
	diag := s.runner.Diag()
	for {
		_, _ = io.WriteString(diag, s.prompt)

		line, err := s.lines.ReadLine()
		if errors.Is(err, io.EOF) {
			_, _ = io.WriteString(diag, "\n")
			s.log.Debug().Msg("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}

		if err := s.dispatch(line); err != nil {
			return err
		}
	}
}

// dispatch runs one line. Tokens alias line and are dropped before returning,
// so line can be reused by the next read.
func (s *Shell) dispatch(line []byte) error {
	tokens := tokenize.Split(line, tokenize.Delimiters)
	defer tokens.Destroy()
	if tokens.IsEmpty() {
		return nil
	}

	argv, err := runner.BuildArgv(tokens.Slice())
	if err != nil {
		return err
	}
	if err := s.runner.Run(argv); err != nil {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
