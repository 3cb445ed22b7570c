// Package bench measures CPU time consumed by the calling process.
// Benchmark output reports CPU time rather than wall time, matching
// how the tool's results are compared across machines.
package bench

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// CPUClock reads the cumulative user+system CPU time of this process.
type CPUClock struct {
	proc *process.Process
}

// NewCPUClock creates a clock bound to the current process.
func NewCPUClock() (*CPUClock, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &CPUClock{proc: p}, nil
}

// Now returns the CPU time used so far.
func (c *CPUClock) Now() (time.Duration, error) {
	t, err := c.proc.Times()
	if err != nil {
		return 0, err
	}
	return time.Duration((t.User + t.System) * float64(time.Second)), nil
}

// Stopwatch measures a CPU-time interval around a block of work.
type Stopwatch struct {
	clock *CPUClock
	start time.Duration
}

// Start begins a CPU-time measurement.
func Start() (*Stopwatch, error) {
	clock, err := NewCPUClock()
	if err != nil {
		return nil, err
	}
	start, err := clock.Now()
	if err != nil {
		return nil, err
	}
	return &Stopwatch{clock: clock, start: start}, nil
}

// Elapsed returns CPU time consumed since Start.
func (s *Stopwatch) Elapsed() (time.Duration, error) {
	now, err := s.clock.Now()
	if err != nil {
		return 0, err
	}
	return now - s.start, nil
}

// Microseconds returns Elapsed truncated to whole microseconds, the
// unit used by benchmark reporting.
func (s *Stopwatch) Microseconds() (uint64, error) {
	d, err := s.Elapsed()
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, nil
	}
	return uint64(d.Microseconds()), nil
}
