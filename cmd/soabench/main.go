// Command soabench times record layouts under the bench access patterns.
//
// Every combination of the -layout, -pattern and -op lists is run once for
// -shape. Results are logged and, with -out, appended to a result file
// (compressed when the name ends in .zst or .lz4).
//
//	soabench -shape int5 -layout aos,soa -pattern single,combined -out runs.jsonl.zst
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/hupe1980/soa/bench"
	"github.com/hupe1980/soa/codec"
	"github.com/hupe1980/soa/internal/conv"
)

// listFlag collects comma-separated values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

var (
	verbose   = flag.Bool("v", false, "verbose output (per-pass progress)")
	shape     = flag.String("shape", bench.DefaultConfig().Shape, "record shape: "+strings.Join(bench.Shapes(), ", "))
	size      = flag.Int("size", bench.DefaultConfig().Size, "number of records")
	repeats   = flag.Int("repeats", bench.DefaultConfig().Repeats, "timed passes per run")
	seed      = flag.Uint64("seed", uint64(bench.DefaultConfig().Seed), "random seed (0 is treated as 1)")
	output    = flag.String("out", "", "append results to this file (.zst/.lz4 compress)")
	codecName = flag.String("codec", codec.Default.Name(), "result encoding (json, go-json)")
	logFormat = flag.String("log", "text", "log format (text, json)")
	layouts   listFlag
	patterns  listFlag
	ops       listFlag
)

func init() {
	flag.Var(&layouts, "layout", "layouts to run (aos, soa); comma-separated, default soa")
	flag.Var(&patterns, "pattern", "access patterns (single, independent, combined); default single")
	flag.Var(&ops, "op", "operations (simple, complex, branching); default simple")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := expand()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	var logger *bench.Logger
	switch *logFormat {
	case "text":
		logger = bench.NewTextLogger(level)
	case "json":
		logger = bench.NewJSONLogger(level)
	default:
		return fmt.Errorf("unknown log format %q", *logFormat)
	}

	c, ok := codec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("unknown codec %q", *codecName)
	}

	var sink *bench.Sink
	if *output != "" {
		if sink, err = bench.CreateSink(*output, c); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, cfg := range configs {
		res, runErr := bench.Run(ctx, cfg, logger)
		if runErr != nil {
			err = runErr
			break
		}
		fmt.Printf("%-40s min %-12v median %-12v checksum %d\n", cfg.Name(), res.Min, res.Median, res.Checksum)
		if sink != nil {
			if err = sink.Write(res); err != nil {
				break
			}
		}
	}

	if sink != nil {
		err = errors.Join(err, sink.Close())
	}
	return err
}

// expand turns the flag lists into one validated Config per combination.
func expand() ([]bench.Config, error) {
	seed32, err := conv.Uint64ToUint32(*seed)
	if err != nil {
		return nil, fmt.Errorf("-seed: %w", err)
	}
	if len(layouts) == 0 {
		layouts = listFlag{bench.SoA.String()}
	}
	if len(patterns) == 0 {
		patterns = listFlag{bench.Single.String()}
	}
	if len(ops) == 0 {
		ops = listFlag{bench.Simple.String()}
	}

	var out []bench.Config
	for _, ls := range layouts {
		l, ok := bench.ParseLayout(ls)
		if !ok {
			return nil, fmt.Errorf("unknown layout %q", ls)
		}
		for _, ps := range patterns {
			p, ok := bench.ParsePattern(ps)
			if !ok {
				return nil, fmt.Errorf("unknown pattern %q", ps)
			}
			for _, name := range ops {
				o, ok := bench.ParseOp(name)
				if !ok {
					return nil, fmt.Errorf("unknown op %q", name)
				}
				cfg := bench.Config{
					Layout:  l,
					Pattern: p,
					Op:      o,
					Shape:   *shape,
					Size:    *size,
					Repeats: *repeats,
					Seed:    seed32,
				}
				if err := cfg.Validate(); err != nil {
					return nil, err
				}
				out = append(out, cfg)
			}
		}
	}
	return out, nil
}
