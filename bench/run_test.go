package bench

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soa"
	"github.com/hupe1980/soa/checksum"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 257
	cfg.Repeats = 3
	cfg.Seed = 4711
	return cfg
}

func TestBuild(t *testing.T) {
	for _, name := range Shapes() {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Shape = name

			cfg.Layout = AoS
			aos, err := Build(cfg)
			require.NoError(t, err)

			cfg.Layout = SoA
			col, err := Build(cfg)
			require.NoError(t, err)
			_, isContainer := col.(soa.Container)
			assert.True(t, isContainer)

			assert.Equal(t, cfg.Size, aos.Len())
			assert.Equal(t, cfg.Size, col.Len())
			assert.Equal(t, aos.Arity(), col.Arity())

			ctx := context.Background()
			a, err := checksum.Columns(ctx, aos)
			require.NoError(t, err)
			b, err := checksum.Columns(ctx, col)
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.NotZero(t, a)
		})
	}
}

func TestBuildInvalid(t *testing.T) {
	cfg := smallConfig()
	cfg.Size = 0
	_, err := Build(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPassSingleTouchesMiddleFieldOnly(t *testing.T) {
	cfg := smallConfig()
	cfg.Shape = "int5"
	tbl, err := Build(cfg)
	require.NoError(t, err)

	before := make([]uint64, tbl.Arity())
	for i := range before {
		before[i] = checksum.Column(tbl, i)
	}

	Pass(tbl, Single, Simple)

	for i := range before {
		if i == 2 {
			assert.NotEqual(t, before[i], checksum.Column(tbl, i))
			continue
		}
		assert.Equal(t, before[i], checksum.Column(tbl, i), "field %d", i)
	}
}

func TestRunLayoutsAgree(t *testing.T) {
	for _, p := range []Pattern{Single, Independent, Combined} {
		for _, op := range []Op{Simple, Complex, Branching} {
			cfg := smallConfig()
			cfg.Shape = "int32-float-string"
			cfg.Pattern = p
			cfg.Op = op

			t.Run(cfg.Name(), func(t *testing.T) {
				cfg.Layout = AoS
				a, err := Run(context.Background(), cfg, nil)
				require.NoError(t, err)

				cfg.Layout = SoA
				b, err := Run(context.Background(), cfg, nil)
				require.NoError(t, err)

				assert.Equal(t, a.Checksum, b.Checksum)
				assert.Equal(t, a.Sum, b.Sum)
				assert.Len(t, b.Passes, cfg.Repeats)
				assert.LessOrEqual(t, b.Min, b.Median)
				if p == Combined {
					assert.NotZero(t, b.Sum)
				} else {
					assert.Zero(t, b.Sum)
				}
			})
		}
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithProgressInterval(0)

	res, err := Run(context.Background(), smallConfig(), logger)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"run completed"`)
	assert.Contains(t, out, `"msg":"pass completed"`)
	assert.Contains(t, out, smallConfig().Name())
	assert.Equal(t, smallConfig().Repeats, bytes.Count(buf.Bytes(), []byte("pass completed")))
	assert.NotEmpty(t, res.Env.GOARCH)
}

func TestRunLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	cfg := smallConfig()
	cfg.Shape = "nope"
	_, err := Run(context.Background(), cfg, logger)
	require.ErrorIs(t, err, ErrUnknownShape)
	assert.Contains(t, buf.String(), "run failed")
}

func TestProgressThrottled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithProgressInterval(time.Hour)

	for i := range 10 {
		logger.LogProgress(context.Background(), i+1, 10, time.Millisecond)
	}
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("pass completed")))
}

func TestDetectEnvironment(t *testing.T) {
	env := DetectEnvironment()
	assert.Positive(t, env.NumCPU)
	assert.Positive(t, env.CacheLine)
	assert.NotEmpty(t, env.GoVersion)
}
