package proc

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// ExecSpawner implements Spawner with real child processes via os/exec.
type ExecSpawner struct {
	// Fs is consulted for executable lookup. Nil means the host
	// filesystem.
	Fs afero.Fs
}

var _ Spawner = (*ExecSpawner)(nil)

func (s *ExecSpawner) fs() afero.Fs {
	if s.Fs == nil {
		return afero.NewOsFs()
	}
	return s.Fs
}

func (s *ExecSpawner) Spawn(cmd *Cmd) (Process, error) {
	path, err := LookPath(s.fs(), cmd.Path, cmd.PathList())
	if err != nil {
		return nil, err
	}

	args := cmd.Args
	if len(args) == 0 {
		args = []string{cmd.Path}
	}

	execCmd := &exec.Cmd{
		Path:   path,
		Args:   args,
		Env:    cmd.Env,
		Dir:    cmd.Dir,
		Stdin:  cmd.Stdin,
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}
	if err := execCmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: execCmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() (ExitStatus, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		status := ExitStatus{Code: exitErr.ExitCode()}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			status.Signal = ws.Signal().String()
		}
		return status, nil
	case err != nil:
		return ExitStatus{Code: -1}, err
	default:
		return ExitStatus{}, nil
	}
}

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories of the
// given colon-separated search path. If file contains a slash it is tried
// directly and the search path is not consulted.
func LookPath(fsys afero.Fs, file, pathList string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(fsys, file); err != nil {
			return "", err
		}
		return file, nil
	}
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(fsys, path); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}
