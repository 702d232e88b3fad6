package bench

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"Layout", func(c *Config) { c.Layout = 9 }, ErrInvalidConfig},
		{"Pattern", func(c *Config) { c.Pattern = 9 }, ErrInvalidConfig},
		{"Op", func(c *Config) { c.Op = 9 }, ErrInvalidConfig},
		{"Size", func(c *Config) { c.Size = 0 }, ErrInvalidConfig},
		{"Repeats", func(c *Config) { c.Repeats = -1 }, ErrInvalidConfig},
		{"Shape", func(c *Config) { c.Shape = "quaternion" }, ErrUnknownShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestParse(t *testing.T) {
	for _, l := range []Layout{AoS, SoA} {
		got, ok := ParseLayout(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, got)
	}
	for _, p := range []Pattern{Single, Independent, Combined} {
		got, ok := ParsePattern(" " + p.String() + " ")
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	for _, o := range []Op{Simple, Complex, Branching} {
		got, ok := ParseOp(o.String())
		assert.True(t, ok)
		assert.Equal(t, o, got)
	}

	_, ok := ParseLayout("columnar")
	assert.False(t, ok)
	_, ok = ParsePattern("random")
	assert.False(t, ok)
	_, ok = ParseOp("")
	assert.False(t, ok)

	assert.Equal(t, "unknown", Layout(7).String())
}

func TestConfigJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = AoS
	cfg.Pattern = Combined
	cfg.Op = Branching

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"layout":"aos"`)
	assert.Contains(t, string(b), `"pattern":"combined"`)

	var out Config
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, cfg, out)

	assert.Error(t, json.Unmarshal([]byte(`{"layout":"nope"}`), &out))
}

func TestConfigName(t *testing.T) {
	cfg := Config{Layout: SoA, Pattern: Independent, Op: Complex, Shape: "int5"}
	assert.Equal(t, "soa/independent/complex/int5", cfg.Name())
}

func TestShapes(t *testing.T) {
	names := Shapes()
	assert.Contains(t, names, "int-double-double")
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, DefaultConfig().Shape)
}
