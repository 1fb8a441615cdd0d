// Package procstat reports the memory of the running process. Plugins are
// never unmapped, so the host logs it after every reload.
package procstat

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/process"
)

// Memory is a snapshot of the process's memory use
type Memory struct {
	RSS uint64 // resident set size in bytes
	VMS uint64 // virtual memory size in bytes
}

// String formats the snapshot with human-readable sizes
func (m Memory) String() string {
	return fmt.Sprintf("rss %s, vms %s", humanize.Bytes(m.RSS), humanize.Bytes(m.VMS))
}

// Current returns the memory use of this process
func Current() (Memory, error) {
	return ForPID(int32(os.Getpid()))
}

// ForPID returns the memory use of another process
func ForPID(pid int32) (Memory, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	info, err := p.MemoryInfo()
	if err != nil {
		return Memory{}, fmt.Errorf("failed to read memory of process %d: %w", pid, err)
	}

	return Memory{RSS: info.RSS, VMS: info.VMS}, nil
}
