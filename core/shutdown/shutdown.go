// Package shutdown implements the fixed shutdown protocol init runs after
// the shell exits: terminate everything, flush storage, power off.
package shutdown

import (
	"log"
	"syscall"

	"github.com/ibis-os/userland/core/sys"
)

// Outcome reports how a shutdown sequence went.
type Outcome int

const (
	// Clean means every step succeeded and the power request was issued.
	Clean Outcome = iota
	// Degraded means an early step failed but the power request was still
	// issued.
	Degraded
	// Fatal means the kernel refused the power request; there is no safe
	// exit path left.
	Fatal
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "clean"
	case Degraded:
		return "degraded"
	default:
		return "fatal"
	}
}

// Sequencer runs the three shutdown steps in order. The order is an
// invariant: a power request issued before the sync could lose data.
type Sequencer struct {
	Sys  sys.Syscalls
	Log  *log.Logger
	Mode sys.RebootMode
}

// Run executes the sequence. Failures of the first two steps are logged and
// the sequence continues; only a refused power request is Fatal. On real
// hardware a non-Fatal Run never actually returns: the kernel acts on the
// power request first.
func (s *Sequencer) Run() Outcome {
	outcome := Clean

	s.Log.Println("terminating all processes")
	if err := s.Sys.KillAll(syscall.SIGTERM); err != nil {
		// Still worth powering off even if not everything was signaled.
		s.Log.Printf("could not signal every process: %v", err)
		outcome = Degraded
	}

	if err := s.Sys.Sync(); err != nil {
		s.Log.Printf("could not flush storage: %v", err)
		outcome = Degraded
	}

	s.Log.Printf("requesting %s", s.Mode)
	if err := s.Sys.Reboot(s.Mode); err != nil {
		s.Log.Printf("kernel refused %s: %v", s.Mode, err)
		return Fatal
	}
	return outcome
}
