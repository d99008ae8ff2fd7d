// Package boot implements the PID-1 lifecycle supervisor: precondition
// checks, one-time boot setup, the shell respawn loop and the terminal
// unrecoverable-error state.
package boot

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/ibis-os/userland/core/banner"
	"github.com/ibis-os/userland/core/config"
	"github.com/ibis-os/userland/core/proc"
	"github.com/ibis-os/userland/core/shutdown"
	"github.com/ibis-os/userland/core/sys"
)

// ErrNotInit is returned when the supervisor is started as anything other
// than the first process. Everything it does afterwards (signal control,
// power management) assumes PID-1 privileges, so this is a hard
// precondition.
var ErrNotInit = errors.New("this process must be run as PID 1 (init)")

var colorFatal = color.New(color.FgRed, color.Bold)

// Supervisor owns the system lifecycle from boot to power-off.
type Supervisor struct {
	Sys     sys.Syscalls
	Spawner proc.Spawner
	Config  *config.Configuration
	Version string

	// Stdin and Out are the console streams handed to the shell. The boot
	// banner and fatal diagnostics are written to Out.
	Stdin io.Reader
	Out   io.Writer

	Log *log.Logger

	// LogoFs backs the banner override lookup. Nil means the host
	// filesystem.
	LogoFs afero.Fs
}

func (s *Supervisor) logoFs() afero.Fs {
	if s.LogoFs == nil {
		return afero.NewOsFs()
	}
	return s.LogoFs
}

// Run drives the lifecycle: verify PID 1, perform boot setup, then spawn
// the shell and run the shutdown sequence when it exits.
//
// Run only ever returns ErrNotInit, or nil when a mocked kernel accepted
// the power request and kept running; on real hardware every other path
// ends in power-off or in halt, which does not return.
func (s *Supervisor) Run() error {
	if s.Sys.Getpid() != 1 {
		return ErrNotInit
	}

	// An uncontrolled reset combo would bypass the shutdown protocol.
	if err := s.Sys.DisableCtrlAltDel(); err != nil {
		s.halt(fmt.Errorf("disable ctrl-alt-del: %w", err))
		return nil
	}

	// Mask everything: an asynchronous signal mid-sequence would leave
	// the lifecycle in an undefined state. The mask is never removed.
	if err := s.Sys.BlockAllSignals(); err != nil {
		s.halt(fmt.Errorf("install signal mask: %w", err))
		return nil
	}

	banner.Fprint(s.Out, s.logoFs(), s.Config.LogoPath, s.Version)

	// The search path is fixed here, before the first shell spawn, and
	// threaded explicitly into every spawn from then on.
	env := []string{"PATH=" + s.Config.SearchPath}

	for {
		s.Log.Printf("starting shell %s", s.Config.ShellPath)
		shell, err := s.Spawner.Spawn(&proc.Cmd{
			Path:   s.Config.ShellPath,
			Args:   []string{s.Config.ShellPath},
			Env:    env,
			Stdin:  s.Stdin,
			Stdout: s.Out,
			Stderr: s.Out,
		})
		if err != nil {
			// No degraded mode exists without a command interpreter.
			s.halt(fmt.Errorf("could not start %s: %w", s.Config.ShellPath, err))
			return nil
		}

		// The shell's specific exit status doesn't matter: any exit
		// means "the session is over, shut the system down".
		if _, err := shell.Wait(); err != nil {
			s.Log.Printf("error waiting for shell to terminate: %v", err)
		}

		sequencer := &shutdown.Sequencer{
			Sys:  s.Sys,
			Log:  s.Log,
			Mode: s.Config.Mode(),
		}
		if sequencer.Run() == shutdown.Fatal {
			s.halt(fmt.Errorf("kernel refused the %s request", s.Config.Mode()))
			return nil
		}

		// Shutdown is terminal. The power request was accepted, so this
		// point is reachable only under a mocked kernel; respawning the
		// shell here would mean pretending the shutdown didn't happen.
		return nil
	}
}

// halt is the unrecoverable-error state: print a diagnostic, then block
// forever awaiting a manual reset. It has no outgoing transitions and it
// idles rather than spins.
func (s *Supervisor) halt(cause error) {
	colorFatal.Fprintf(s.Out, "init has encountered a serious error:\n\t%v\n", cause)
	fmt.Fprintln(s.Out, "\nPlease reset the machine manually.")

	for {
		s.Sys.Pause()
	}
}
