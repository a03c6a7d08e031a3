// Command veclen times the squared-length reduction of a large array of
// random 3-component vectors.
//
// Configuration comes from VECLEN_* environment variables (optionally
// loaded from a .env file):
//
//	VECLEN_VECTORS=4194304 VECLEN_ITERATIONS=100 VECLEN_STRATEGY=auto veclen
//	VECLEN_STRATEGY=scalar VECLEN_ALLOCATOR=arena veclen
//
// Results go to stdout, logs to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/cpuid/v2"

	"github.com/hupe1980/veclen"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "veclen: %v\n", err)
		os.Exit(1)
	}
	if err := ValidateConfig(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "veclen: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := BuildLogger(&cfg)
	if err := run(context.Background(), os.Stdout, &cfg, logger); err != nil {
		logger.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, cfg *Config, logger *veclen.Logger) error {
	opts, err := BuildOptions(cfg, logger)
	if err != nil {
		return err
	}
	b, err := veclen.New(opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Hello world!")
	fmt.Fprintf(w, "CPU: %s (cache line %d bytes)\n", cpuName(), veclen.CacheLineSize())

	r, err := b.Run(ctx)
	if err != nil {
		return err
	}

	printReport(w, r)
	return nil
}

func printReport(w io.Writer, r *veclen.Report) {
	fmt.Fprintf(w, "Done! (strategy=%s, lanes=%d, accelerated=%t, %d-bit)\n",
		r.Strategy, r.Strategy.LaneWidth(), r.Accelerated, r.PointerBits)
	fmt.Fprintf(w, "First: %g\n", r.First)
	fmt.Fprintf(w, "Last: %g\n", r.Last)
	fmt.Fprintf(w, "Elapsed: %.6f s\n", r.Elapsed.Seconds())
}

func cpuName() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return cpuid.CPU.VendorString
}
