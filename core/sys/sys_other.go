//go:build !linux

package sys

import (
	"errors"
	"os"
	"syscall"
)

// ErrUnsupported is returned for lifecycle calls on platforms where Ibis
// can't act as init.
var ErrUnsupported = errors.New("sys: only supported on linux")

// Kernel is a stub on non-Linux platforms; every lifecycle call fails.
type Kernel struct{}

var _ Syscalls = (*Kernel)(nil)

// New returns the stub kernel interface.
func New() *Kernel {
	return &Kernel{}
}

func (*Kernel) Getpid() int {
	return os.Getpid()
}

func (*Kernel) DisableCtrlAltDel() error {
	return ErrUnsupported
}

func (*Kernel) BlockAllSignals() error {
	return ErrUnsupported
}

func (*Kernel) KillAll(sig syscall.Signal) error {
	return ErrUnsupported
}

func (*Kernel) Sync() error {
	return ErrUnsupported
}

func (*Kernel) Reboot(mode RebootMode) error {
	return ErrUnsupported
}

func (*Kernel) Pause() {
	select {}
}
