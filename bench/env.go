package bench

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Environment describes the machine a run executed on. Results are only
// comparable between runs with equal environments.
type Environment struct {
	GOOS      string   `json:"goos"`
	GOARCH    string   `json:"goarch"`
	GoVersion string   `json:"go_version"`
	NumCPU    int      `json:"num_cpu"`
	CacheLine int      `json:"cache_line"`
	Features  []string `json:"features,omitempty"`
}

// DetectEnvironment reports the current machine.
func DetectEnvironment() Environment {
	return Environment{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:  cpuFeatures(),
	}
}
