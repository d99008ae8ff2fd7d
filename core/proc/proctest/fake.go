// Package proctest provides a scripted Spawner for testing components that
// launch processes without creating real children.
package proctest

import (
	"sync"

	"github.com/ibis-os/userland/core/proc"
)

// Result scripts the outcome of spawning one command.
type Result struct {
	// SpawnErr, when set, makes Spawn itself fail.
	SpawnErr error
	// Status is what Wait reports for a successful spawn.
	Status proc.ExitStatus
	// WaitErr, when set, makes Wait fail.
	WaitErr error
}

// SpawnRecord is one observed Spawn call.
type SpawnRecord struct {
	Path string
	Args []string
	Env  []string
}

// Fake implements proc.Spawner. Outcomes are scripted per command path via
// Results; unscripted commands use the zero Result (immediate clean exit).
type Fake struct {
	Results map[string]Result

	mu     sync.Mutex
	spawns []SpawnRecord
}

var _ proc.Spawner = (*Fake)(nil)

func (f *Fake) Spawn(cmd *proc.Cmd) (proc.Process, error) {
	f.mu.Lock()
	f.spawns = append(f.spawns, SpawnRecord{
		Path: cmd.Path,
		Args: append([]string(nil), cmd.Args...),
		Env:  append([]string(nil), cmd.Env...),
	})
	f.mu.Unlock()

	result := f.Results[cmd.Path]
	if result.SpawnErr != nil {
		return nil, result.SpawnErr
	}
	return &fakeProcess{result: result}, nil
}

// Spawns returns a copy of the ordered spawn log.
func (f *Fake) Spawns() []SpawnRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SpawnRecord(nil), f.spawns...)
}

type fakeProcess struct {
	result Result
}

func (p *fakeProcess) Wait() (proc.ExitStatus, error) {
	return p.result.Status, p.result.WaitErr
}
