package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which SIMD implementation is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Best strategy: %s\n", BestStrategy())

	if runtime.GOARCH == "amd64" {
		fmt.Printf("CPU Features:\n")
		fmt.Printf("  SSE2: %v\n", HasSSE2())
		fmt.Printf("  AVX2+FMA: %v\n", HasAVX2())
	}
	for _, s := range Strategies() {
		fmt.Printf("  %s accelerated: %v\n", s, Accelerated(s))
	}

	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
