// Package quality runs statistical smoke checks over generator output.
//
// The checks catch broken implementations (wrong constants, a bad twist,
// biased float conversion); they are not a randomness test suite.
package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/parallel"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadConfig is returned for a Config that cannot produce a meaningful report.
var ErrBadConfig = errors.New("quality: bad config")

// Config configures a quality check.
type Config struct {
	// Samples is the number of Float64 draws examined.
	// Default: 100000
	Samples int

	// Bins is the number of equal-width bins for the chi-square test.
	// Each bin must expect at least 5 samples.
	// Default: 100
	Bins int

	// Tolerance bounds |mean-1/2| and |variance-1/12| for Pass.
	// Default: 0.01
	Tolerance float64

	// Workers is the parallelism used by CheckSeeds. Values < 1 mean
	// one worker per CPU.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Samples:   100000,
		Bins:      100,
		Tolerance: 0.01,
	}
}

// Validate reports whether c can be used for a check.
func (c Config) Validate() error {
	if c.Bins < 2 {
		return fmt.Errorf("%w: bins %d, need at least 2", ErrBadConfig, c.Bins)
	}
	if c.Samples < 5*c.Bins {
		return fmt.Errorf("%w: %d samples is fewer than 5 per bin over %d bins", ErrBadConfig, c.Samples, c.Bins)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %v", ErrBadConfig, c.Tolerance)
	}
	return nil
}

// Report summarizes one check.
type Report struct {
	Samples int

	Mean     float64
	Variance float64

	// SerialCorrelation is the lag-1 Pearson correlation of the draws.
	SerialCorrelation float64

	// ChiSquare is the bin-count statistic against a uniform expectation
	// and PValue its upper-tail probability with Bins-1 degrees of freedom.
	ChiSquare float64
	PValue    float64

	tolerance float64
}

// Pass reports whether the p-value is at least alpha and the first two
// moments are within the configured tolerance of U[0,1).
func (r Report) Pass(alpha float64) bool {
	return r.PValue >= alpha &&
		math.Abs(r.Mean-0.5) <= r.tolerance &&
		math.Abs(r.Variance-1.0/12.0) <= r.tolerance
}

func (r Report) String() string {
	return fmt.Sprintf("samples=%d mean=%.6f variance=%.6f serial=%.6f chi2=%.3f p=%.4f",
		r.Samples, r.Mean, r.Variance, r.SerialCorrelation, r.ChiSquare, r.PValue)
}

// Check consumes cfg.Samples Float64 draws from g and reports on them.
func Check(g *mt19937.Generator, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	xs := make([]float64, cfg.Samples)
	for i := range xs {
		xs[i] = g.Float64()
	}
	return summarize(xs, cfg), nil
}

// CheckSeeds checks one independent generator per seed in parallel.
// Reports are returned in the order of seeds.
func CheckSeeds(seeds []uint32, cfg Config) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = parallel.NumWorkers()
	}

	// Each worker owns its generators; nothing is shared.
	return parallel.ParallelMap(0, len(seeds), workers, func(i int) Report {
		r, _ := Check(mt19937.New(seeds[i]), cfg)
		return r
	}), nil
}

func summarize(xs []float64, cfg Config) Report {
	mean, variance := stat.MeanVariance(xs, nil)

	obs := make([]float64, cfg.Bins)
	for _, x := range xs {
		obs[min(int(x*float64(cfg.Bins)), cfg.Bins-1)]++
	}
	exp := make([]float64, cfg.Bins)
	for i := range exp {
		exp[i] = float64(len(xs)) / float64(cfg.Bins)
	}
	chi2 := stat.ChiSquare(obs, exp)

	return Report{
		Samples:           len(xs),
		Mean:              mean,
		Variance:          variance,
		SerialCorrelation: stat.Correlation(xs[:len(xs)-1], xs[1:], nil),
		ChiSquare:         chi2,
		PValue:            distuv.ChiSquared{K: float64(cfg.Bins - 1)}.Survival(chi2),
		tolerance:         cfg.Tolerance,
	}
}
