package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/soa/checksum"
)

// Result is the outcome of one run.
type Result struct {
	Config   Config          `json:"config"`
	Env      Environment     `json:"env"`
	Started  time.Time       `json:"started"`
	Passes   []time.Duration `json:"passes"`
	Min      time.Duration   `json:"min"`
	Median   time.Duration   `json:"median"`
	Mean     time.Duration   `json:"mean"`
	Sum      float64         `json:"sum"`
	Checksum uint64          `json:"checksum"`
}

// Run builds the table described by cfg and times cfg.Repeats passes over
// it. ctx is checked between passes. A nil logger discards output.
func Run(ctx context.Context, cfg Config, logger *Logger) (*Result, error) {
	if logger == nil {
		logger = NoopLogger()
	}
	logger = logger.WithConfig(cfg)

	res, err := run(ctx, cfg, logger)
	logger.LogRun(ctx, res, err)
	return res, err
}

func run(ctx context.Context, cfg Config, logger *Logger) (*Result, error) {
	t, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Config:  cfg,
		Env:     DetectEnvironment(),
		Started: time.Now(),
		Passes:  make([]time.Duration, 0, cfg.Repeats),
	}
	for i := range cfg.Repeats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		res.Sum += Pass(t, cfg.Pattern, cfg.Op)
		d := time.Since(start)
		res.Passes = append(res.Passes, d)
		logger.LogProgress(ctx, i+1, cfg.Repeats, d)
	}
	res.summarize()

	if res.Checksum, err = checksum.Columns(ctx, t); err != nil {
		return nil, fmt.Errorf("bench: checksum: %w", err)
	}
	return res, nil
}

// Pass applies op to the fields of t selected by p once. For Combined it
// returns the folded sum; otherwise it returns zero.
func Pass(t Table, p Pattern, op Op) float64 {
	update := func(_ int, f any) { apply(op, f) }

	switch p {
	case Single:
		t.VisitColumn(t.Arity()/2, update)
	case Independent:
		for i := range t.Arity() {
			t.VisitColumn(i, update)
		}
	case Combined:
		var sum float64
		acc := func(_ int, f any) { sum += fold(apply(op, f)) }
		for k := range t.Len() {
			t.VisitRecord(k, acc)
		}
		return sum
	}
	return 0
}

func (r *Result) summarize() {
	if len(r.Passes) == 0 {
		return
	}
	sorted := slices.Clone(r.Passes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	r.Min = sorted[0]
	r.Median = sorted[len(sorted)/2]
	r.Mean = total / time.Duration(len(sorted))
}
