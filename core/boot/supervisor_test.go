package boot

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibis-os/userland/core/config"
	"github.com/ibis-os/userland/core/proc/proctest"
	"github.com/ibis-os/userland/core/sys/systest"
)

type harness struct {
	sys     *systest.Fake
	spawner *proctest.Fake
	out     *bytes.Buffer
	sup     *Supervisor
}

func newHarness() *harness {
	h := &harness{
		sys:     systest.NewFake(),
		spawner: &proctest.Fake{},
		out:     &bytes.Buffer{},
	}
	h.sup = &Supervisor{
		Sys:     h.sys,
		Spawner: h.spawner,
		Config:  config.Default(),
		Version: "0.1.0",
		Out:     h.out,
		Log:     log.New(ioutil.Discard, "", 0),
		LogoFs:  afero.NewMemMapFs(),
	}
	return h
}

// waitForHalt runs the supervisor on its own goroutine and blocks until it
// reaches the terminal halt state.
func (h *harness) waitForHalt(t *testing.T) {
	t.Helper()

	go h.sup.Run()

	select {
	case <-h.sys.PauseEntered:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor never reached the terminal halt")
	}
}

func TestRunRejectsNonInitProcess(t *testing.T) {
	h := newHarness()
	h.sys.Pid = 4217

	err := h.sup.Run()

	assert.True(t, errors.Is(err, ErrNotInit))
	// No banner, no boot setup, no shell.
	assert.Empty(t, h.out.String())
	assert.Empty(t, h.sys.Calls())
	assert.Empty(t, h.spawner.Spawns())
}

func TestRunBootsAndShutsDown(t *testing.T) {
	h := newHarness()

	require.Nil(t, h.sup.Run())

	// Banner and version were printed.
	assert.Contains(t, h.out.String(), `|_   _| |   (_)`)
	assert.Contains(t, h.out.String(), "Ibis userland 0.1.0")

	// The shell was spawned with the configured search path threaded in.
	spawns := h.spawner.Spawns()
	require.Len(t, spawns, 1)
	assert.Equal(t, "/ibish", spawns[0].Path)
	assert.Equal(t, []string{"PATH=/sbin:/bin"}, spawns[0].Env)

	// Boot setup ran before the shutdown sequence, all in order.
	assert.Equal(t, []string{
		"ctrl-alt-del-off",
		"block-signals",
		fmt.Sprintf("kill-all:%d", syscall.SIGTERM),
		"sync",
		"reboot:power-off",
	}, h.sys.Calls())
}

func TestRunShutdownIsTerminal(t *testing.T) {
	h := newHarness()

	require.Nil(t, h.sup.Run())

	// One shell session, one shutdown: no respawn after a power request
	// the kernel accepted.
	assert.Len(t, h.spawner.Spawns(), 1)
}

func TestRunCtrlAltDelFailureHalts(t *testing.T) {
	h := newHarness()
	h.sys.CtrlAltDelErr = errors.New("operation not permitted")

	h.waitForHalt(t)

	assert.Contains(t, h.out.String(), "init has encountered a serious error")
	assert.NotContains(t, h.out.String(), "Ibis userland")
	assert.Empty(t, h.spawner.Spawns())
}

func TestRunSignalMaskFailureHalts(t *testing.T) {
	h := newHarness()
	h.sys.SigmaskErr = errors.New("operation not permitted")

	h.waitForHalt(t)

	assert.Contains(t, h.out.String(), "install signal mask")
	assert.Empty(t, h.spawner.Spawns())
}

func TestRunShellSpawnFailureHalts(t *testing.T) {
	h := newHarness()
	h.spawner.Results = map[string]proctest.Result{
		"/ibish": {SpawnErr: errors.New("no such file or directory")},
	}

	h.waitForHalt(t)

	assert.Contains(t, h.out.String(), "could not start /ibish")
	// The shutdown sequence never started.
	calls := h.sys.Calls()
	assert.NotContains(t, calls, "sync")
	assert.NotContains(t, calls, "reboot:power-off")
}

func TestRunPowerFailureHalts(t *testing.T) {
	h := newHarness()
	h.sys.RebootErr = errors.New("operation not permitted")

	h.waitForHalt(t)

	assert.Contains(t, h.out.String(), "kernel refused the power-off request")

	// Nothing observable happens after the halt: no respawn, and the last
	// kernel calls are the failed power request followed by the idle wait.
	assert.Len(t, h.spawner.Spawns(), 1)
	calls := h.sys.Calls()
	require.True(t, len(calls) >= 2)
	assert.Equal(t, "reboot:power-off", calls[len(calls)-2])
	assert.Equal(t, "pause", calls[len(calls)-1])
}
