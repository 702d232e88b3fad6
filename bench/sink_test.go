package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soa/codec"
)

func TestSinkRoundTrip(t *testing.T) {
	cfg := smallConfig()
	res, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	for _, ext := range []string{".jsonl", ExtZstd, ExtLZ4} {
		for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
			t.Run(c.Name()+ext, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "results"+ext)

				s, err := CreateSink(path, c)
				require.NoError(t, err)
				require.NoError(t, s.Write(res))
				require.NoError(t, s.Write(res))
				require.NoError(t, s.Close())

				got, err := ReadResults(path)
				require.NoError(t, err)
				require.Len(t, got, 2)
				for _, r := range got {
					assert.Equal(t, res.Config, r.Config)
					assert.Equal(t, res.Passes, r.Passes)
					assert.Equal(t, res.Checksum, r.Checksum)
					assert.Equal(t, res.Env, r.Env)
					assert.True(t, res.Started.Equal(r.Started))
				}
			})
		}
	}
}

func TestSinkDefaultCodec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.zst")
	s, err := CreateSink(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	got, err := ReadResults(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSinkCompresses(t *testing.T) {
	res, err := Run(context.Background(), smallConfig(), nil)
	require.NoError(t, err)

	dir := t.TempDir()
	size := func(name string) int64 {
		path := filepath.Join(dir, name)
		s, err := CreateSink(path, codec.JSON{})
		require.NoError(t, err)
		for range 100 {
			require.NoError(t, s.Write(res))
		}
		require.NoError(t, s.Close())
		fi, err := os.Stat(path)
		require.NoError(t, err)
		return fi.Size()
	}

	plain := size("r.jsonl")
	assert.Less(t, size("r.jsonl"+ExtZstd), plain)
	assert.Less(t, size("r.jsonl"+ExtLZ4), plain)
}

func TestReadResultsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadResults(filepath.Join(dir, "missing.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.jsonl")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = ReadResults(empty)
	assert.ErrorContains(t, err, "missing header")

	unknown := filepath.Join(dir, "unknown.jsonl")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"codec":"msgpack"}`+"\n"), 0o600))
	_, err = ReadResults(unknown)
	assert.ErrorContains(t, err, "unknown codec")

	bad := filepath.Join(dir, "bad.jsonl")
	require.NoError(t, os.WriteFile(bad, []byte(`{"codec":"json"}`+"\n{oops\n"), 0o600))
	_, err = ReadResults(bad)
	assert.ErrorContains(t, err, "line 2")
}
