//go:build amd64

package bench

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var out []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"sse4.2", cpu.X86.HasSSE42},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"avx512bw", cpu.X86.HasAVX512BW},
		{"popcnt", cpu.X86.HasPOPCNT},
	} {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
