// Package sys wraps the handful of kernel calls init needs to manage the
// system's lifecycle: signal control, storage flushing and power management.
package sys

import "syscall"

// RebootMode selects what the kernel should do when init asks it to stop.
type RebootMode int

const (
	// PowerOff halts the machine and removes power if possible.
	PowerOff RebootMode = iota
	// Restart reboots the machine.
	Restart
)

func (m RebootMode) String() string {
	switch m {
	case Restart:
		return "restart"
	default:
		return "power-off"
	}
}

// Syscalls is the kernel surface the supervisor depends on. The only
// implementation outside tests is Kernel; fakes live in systest.
type Syscalls interface {
	// Getpid reports the identifier of the calling process.
	Getpid() int

	// DisableCtrlAltDel stops the kernel from rebooting directly on the
	// secure-attention key combination so the shutdown sequence can't be
	// bypassed.
	DisableCtrlAltDel() error

	// BlockAllSignals masks every signal for the calling process. Once
	// installed the mask is never removed.
	BlockAllSignals() error

	// KillAll sends sig to every process the caller has permission to
	// signal, other than itself.
	KillAll(sig syscall.Signal) error

	// Sync commits buffered filesystem writes to stable storage.
	Sync() error

	// Reboot asks the kernel to power off or restart. On success it does
	// not return on real hardware.
	Reboot(mode RebootMode) error

	// Pause blocks the calling thread indefinitely.
	Pause()
}
