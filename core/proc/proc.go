// Package proc defines the process-spawn interface shared by the supervisor
// and the shell, plus its os/exec implementation.
package proc

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// Cmd describes a process to spawn. It is modeled on os/exec.Cmd but the
// environment is always explicit: name resolution uses the PATH entry of
// Env, never the spawning process's own environment.
type Cmd struct {
	// Path is the name or path of the command to run. Names without a
	// path separator are resolved against the PATH entry in Env.
	Path string

	// Args holds command line arguments, including the command as
	// Args[0]. If Args is empty, {Path} is used.
	Args []string

	// Env specifies the environment of the process, each entry of the
	// form "key=value".
	Env []string

	// Dir is the working directory of the command. Empty means the
	// spawner's current directory.
	Dir string

	// Stdin specifies the process's standard input.
	Stdin io.Reader

	// Stdout and Stderr specify the process's standard output and error.
	Stdout io.Writer
	Stderr io.Writer
}

// Name returns the command's display name for diagnostics.
func (c *Cmd) Name() string {
	if len(c.Args) > 0 {
		return c.Args[0]
	}
	return c.Path
}

// PathList extracts the search path from the command's environment.
func (c *Cmd) PathList() string {
	for _, kv := range c.Env {
		if strings.HasPrefix(kv, "PATH=") {
			return strings.TrimPrefix(kv, "PATH=")
		}
	}
	return ""
}

// ExitStatus describes how a process exited: its exit code and, if it was
// signaled, which signal ended it.
type ExitStatus struct {
	Code   int
	Signal string
}

func (e ExitStatus) String() string {
	if e.Signal != "" {
		return fmt.Sprintf("exited with status=%d, signal=%s", e.Code, e.Signal)
	}
	return fmt.Sprintf("exited with status=%d", e.Code)
}

// Process is a handle on a spawned child. It is owned by whoever spawned it
// and is spent once Wait returns.
type Process interface {
	// Wait blocks until the process terminates and reports how it exited.
	// A non-zero exit code is not an error.
	Wait() (ExitStatus, error)
}

// Spawner creates child processes.
type Spawner interface {
	Spawn(cmd *Cmd) (Process, error)
}
