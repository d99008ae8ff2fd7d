// Package systest provides a scripted Syscalls fake that records the order
// of every kernel call made against it.
package systest

import (
	"fmt"
	"sync"
	"syscall"

	"github.com/ibis-os/userland/core/sys"
)

// Fake implements sys.Syscalls. Zero values behave like a cooperative
// kernel; set the *Err fields to script failures.
type Fake struct {
	// Pid is what Getpid reports.
	Pid int

	CtrlAltDelErr error
	SigmaskErr    error
	KillErr       error
	SyncErr       error
	RebootErr     error

	// PauseEntered is closed the first time Pause is called. Pause then
	// blocks forever, matching the terminal-halt contract.
	PauseEntered chan struct{}

	mu        sync.Mutex
	calls     []string
	pauseOnce sync.Once
}

var _ sys.Syscalls = (*Fake)(nil)

// NewFake returns a fake that claims to be PID 1 and succeeds at
// everything.
func NewFake() *Fake {
	return &Fake{
		Pid:          1,
		PauseEntered: make(chan struct{}),
	}
}

// Calls returns a copy of the ordered call log.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *Fake) Getpid() int {
	return f.Pid
}

func (f *Fake) DisableCtrlAltDel() error {
	f.record("ctrl-alt-del-off")
	return f.CtrlAltDelErr
}

func (f *Fake) BlockAllSignals() error {
	f.record("block-signals")
	return f.SigmaskErr
}

func (f *Fake) KillAll(sig syscall.Signal) error {
	f.record(fmt.Sprintf("kill-all:%d", sig))
	return f.KillErr
}

func (f *Fake) Sync() error {
	f.record("sync")
	return f.SyncErr
}

func (f *Fake) Reboot(mode sys.RebootMode) error {
	f.record("reboot:" + mode.String())
	return f.RebootErr
}

func (f *Fake) Pause() {
	f.record("pause")
	f.pauseOnce.Do(func() { close(f.PauseEntered) })
	select {}
}
