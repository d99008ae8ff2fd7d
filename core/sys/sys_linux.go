//go:build linux

package sys

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Kernel implements Syscalls against the running Linux kernel.
type Kernel struct{}

var _ Syscalls = (*Kernel)(nil)

// New returns the real kernel interface.
func New() *Kernel {
	return &Kernel{}
}

func (*Kernel) Getpid() int {
	return os.Getpid()
}

func (*Kernel) DisableCtrlAltDel() error {
	return unix.Reboot(unix.LINUX_REBOOT_CMD_CAD_OFF)
}

func (*Kernel) BlockAllSignals() error {
	// Stop the Go runtime from handling anything first, then install the
	// kernel-level mask so nothing is delivered at all.
	signal.Ignore()

	var mask unix.Sigset_t
	for i := range mask.Val {
		mask.Val[i] = ^mask.Val[i]
	}
	return unix.PthreadSigmask(unix.SIG_SETMASK, &mask, nil)
}

func (*Kernel) KillAll(sig syscall.Signal) error {
	// PID -1 is the kernel's wildcard for "every process I may signal".
	return unix.Kill(-1, sig)
}

func (*Kernel) Sync() error {
	unix.Sync()
	return nil
}

func (*Kernel) Reboot(mode RebootMode) error {
	cmd := unix.LINUX_REBOOT_CMD_POWER_OFF
	if mode == Restart {
		cmd = unix.LINUX_REBOOT_CMD_RESTART
	}
	return unix.Reboot(cmd)
}

func (*Kernel) Pause() {
	_ = unix.Pause()
}
