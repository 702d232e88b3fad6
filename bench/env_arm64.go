//go:build arm64

package bench

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var out []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"asimd", cpu.ARM64.HasASIMD},
		{"fp", cpu.ARM64.HasFP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	} {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
