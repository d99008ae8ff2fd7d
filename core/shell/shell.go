// Package shell implements ibish, the interactive command interpreter init
// keeps respawning. It reads a line, splits it on whitespace and runs the
// named executable, blocking until it finishes.
//
// There is deliberately no quoting, escaping, expansion, piping or
// redirection: a token is a run of non-whitespace characters and nothing
// more.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"golang.org/x/term"

	"github.com/ibis-os/userland/core/config"
	"github.com/ibis-os/userland/core/proc"
)

// BuiltinExit is the one keyword the interpreter handles itself.
const BuiltinExit = "exit"

// lineReader is the part of readline.Instance the loop needs; tests script
// it directly.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type Shell struct {
	rl      lineReader
	spawner proc.Spawner
	cfg     *config.Configuration

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New builds a shell reading from stdin and writing to stdout/stderr.
func New(cfg *config.Configuration, spawner proc.Spawner, stdin io.Reader, stdout, stderr io.Writer) (*Shell, error) {
	rlCfg := &readline.Config{
		Prompt: cfg.Prompt,
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
		FuncIsTerminal: func() bool {
			return isTerminal(stdin)
		},
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		rl:      rl,
		spawner: spawner,
		cfg:     cfg,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}, nil
}

func isTerminal(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Tokenize splits one input line into tokens on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Run is the interpreter loop. It returns nil when the user exits, either
// with the exit builtin or by closing the input stream.
func (s *Shell) Run() error {
	defer s.rl.Close()

	env := []string{"PATH=" + s.cfg.SearchPath}

	for {
		s.rl.SetPrompt(s.cfg.Prompt)
		line, err := s.rl.Readline()

		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.

		case errors.Is(err, readline.ErrInterrupt):
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue
		}

		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		// The exit builtin ignores any trailing tokens.
		if tokens[0] == BuiltinExit {
			return nil
		}

		s.dispatch(tokens, env)
	}
}

// dispatch runs one external command and waits for it. Failures are
// reported and the loop keeps going: a mistyped command must never take the
// interpreter down.
func (s *Shell) dispatch(tokens, env []string) {
	child, err := s.spawner.Spawn(&proc.Cmd{
		Path:   tokens[0],
		Args:   tokens,
		Env:    env,
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	})
	switch {
	case errors.Is(err, proc.ErrNotFound):
		fmt.Fprintf(s.stderr, "%s: command not found\n", tokens[0])
		return
	case err != nil:
		fmt.Fprintf(s.stderr, "%s: %v\n", tokens[0], err)
		return
	}

	// The child's exit status is observed and dropped; the interpreter
	// doesn't turn it into its own.
	if _, err := child.Wait(); err != nil {
		fmt.Fprintf(s.stderr, "%s: wait: %v\n", tokens[0], err)
	}
}
