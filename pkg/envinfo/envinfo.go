// Package envinfo reports facts about the host executing a sweep: the
// short hostname stamped into output filenames, and the environment
// banner logged once at startup so a result file can be traced back to
// the machine that produced it.
package envinfo

import (
	"os"
	"runtime"
	"strings"
)

// Info describes the execution environment at harness startup.
type Info struct {
	// Hostname is the full hostname, empty when it cannot be determined.
	Hostname string

	// HostLabel is the short hostname (first dot-separated label), or
	// "unknown".
	HostLabel string

	OS        string
	Arch      string
	NumCPU    int
	GoVersion string

	// RAMBytes is total system memory. Zero when detection is
	// unsupported or fails; RAMReliable tells the two apart from a
	// genuine reading.
	RAMBytes    uint64
	RAMReliable bool
}

// Gather collects environment facts for the startup banner. It never
// fails; fields that cannot be determined are zero or "unknown".
func Gather() Info {
	info := Info{
		HostLabel: "unknown",
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
		info.HostLabel = shortLabel(hostname)
	}

	info.RAMBytes, info.RAMReliable = totalSystemMemory()
	return info
}

// HostLabel returns the short hostname used in output filenames, or
// "unknown" when the hostname cannot be determined.
func HostLabel() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return shortLabel(hostname)
}

// shortLabel cuts a hostname at its first dot: "nas01.local" -> "nas01".
func shortLabel(hostname string) string {
	label, _, _ := strings.Cut(hostname, ".")
	if label == "" {
		return "unknown"
	}
	return label
}
