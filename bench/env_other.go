//go:build !amd64 && !arm64

package bench

func cpuFeatures() []string { return nil }
