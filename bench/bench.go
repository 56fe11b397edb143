// Package bench times the five 5×5 blur access strategies against each
// other on a fixed source image.
//
// Strategies run strictly sequentially so wall-clock measurements stay
// uncontended. Each strategy is invoked N times; the final output is
// persisted once per strategy for correctness spot-checking.
package bench

import (
	"path/filepath"
	"time"

	"github.com/gopixel/vfx"
	"github.com/gopixel/vfx/filter"
	"github.com/gopixel/vfx/internal/imageio"
)

// DefaultIterations is the number of blur invocations timed per strategy.
const DefaultIterations = 10

// Result holds the timing of one blur strategy.
type Result struct {
	// Strategy is the access strategy that was timed.
	Strategy filter.Strategy

	// Iterations is the number of completed invocations.
	Iterations int

	// Total is the elapsed wall-clock time across all invocations.
	Total time.Duration

	// PerCall is the average wall-clock time of a single invocation.
	PerCall time.Duration

	// Err is non-nil if an invocation failed. A failure aborts the
	// remaining iterations of this strategy only; later strategies
	// still run.
	Err error

	// OutputPath is the persisted output image, if an output directory
	// was configured.
	OutputPath string
}

// Option configures a Runner.
type Option func(*Runner)

// WithIterations sets the number of invocations per strategy.
func WithIterations(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.iterations = n
		}
	}
}

// WithOutputDir sets the directory where each strategy's final output is
// written as blur_<strategy>.png. Empty disables persistence.
func WithOutputDir(dir string) Option {
	return func(r *Runner) {
		r.outDir = dir
	}
}

// Runner drives the blur strategies through timed loops.
type Runner struct {
	iterations int
	outDir     string
}

// NewRunner creates a runner with DefaultIterations and no output
// directory.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run times every blur strategy on src and returns one Result per
// strategy, in the order of filter.Strategies.
func (r *Runner) Run(src *vfx.Image) ([]Result, error) {
	if src.Empty() {
		return nil, vfx.ErrEmptyImage
	}

	strategies := filter.Strategies()
	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		results = append(results, r.runStrategy(src, s))
	}
	return results, nil
}

// runStrategy invokes one strategy r.iterations times and measures the
// loop with the monotonic clock. The timed window covers only the filter
// calls, not persistence.
func (r *Runner) runStrategy(src *vfx.Image, s filter.Strategy) Result {
	log := vfx.Logger()
	res := Result{Strategy: s}

	var out *vfx.Image
	start := time.Now()
	for i := 0; i < r.iterations; i++ {
		var err error
		out, err = filter.Blur5x5(src, s)
		if err != nil {
			res.Err = err
			break
		}
		res.Iterations++
		log.Debug("finished blur iteration",
			"strategy", s.String(),
			"iteration", i+1,
		)
	}
	res.Total = time.Since(start)

	if res.Err != nil {
		return res
	}
	res.PerCall = res.Total / time.Duration(res.Iterations)

	if r.outDir != "" {
		path := filepath.Join(r.outDir, "blur_"+s.String()+".png")
		if err := imageio.Save(path, out); err != nil {
			log.Warn("could not persist blur output",
				"strategy", s.String(),
				"error", err,
			)
		} else {
			res.OutputPath = path
		}
	}

	log.Info("timed blur strategy",
		"strategy", s.String(),
		"iterations", res.Iterations,
		"total", res.Total,
		"per_call", res.PerCall,
	)
	return res
}
