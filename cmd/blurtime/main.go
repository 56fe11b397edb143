// Command blurtime times the five 5×5 blur access strategies against
// each other on an image supplied on the command line.
//
// Usage:
//
//	blurtime [-n 10] [-out .] [-v] image.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gopixel/vfx"
	"github.com/gopixel/vfx/bench"
	"github.com/gopixel/vfx/internal/imageio"
)

func main() {
	var (
		iterations = flag.Int("n", bench.DefaultIterations, "blur invocations per strategy")
		outDir     = flag.String("out", ".", "directory for per-strategy output images (empty to disable)")
		verbose    = flag.Bool("v", false, "log per-iteration progress")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image filename>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	vfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	filename := flag.Arg(0)
	src, err := imageio.Load(filename)
	if err != nil {
		log.Fatalf("Unable to read image %s: %v", filename, err)
	}

	runner := bench.NewRunner(
		bench.WithIterations(*iterations),
		bench.WithOutputDir(*outDir),
	)
	results, err := runner.Run(src)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("Strategy %s failed after %d iterations: %v\n",
				res.Strategy, res.Iterations, res.Err)
			continue
		}
		fmt.Printf("Time per image (%s): %.4f seconds\n", res.Strategy, res.PerCall.Seconds())
		fmt.Printf("Total time (%s): %.4f seconds\n", res.Strategy, res.Total.Seconds())
	}
}
