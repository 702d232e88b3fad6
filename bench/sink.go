package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/soa/codec"
)

// Compression is chosen from the sink file extension.
const (
	ExtZstd = ".zst"
	ExtLZ4  = ".lz4"
)

// header is the first line of every result file.
type header struct {
	Codec string `json:"codec"`
}

// Sink appends results to a file, one encoded Result per line. Files ending
// in ExtZstd or ExtLZ4 are compressed.
type Sink struct {
	f     *os.File
	comp  io.WriteCloser
	w     *bufio.Writer
	codec codec.Codec
}

// CreateSink creates (or truncates) path and writes the file header. A nil
// codec selects codec.Default.
func CreateSink(path string, c codec.Codec) (*Sink, error) {
	if c == nil {
		c = codec.Default
	}
	f, err := os.Create(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, err
	}
	s := &Sink{f: f, codec: c}

	var dst io.Writer = f
	switch filepath.Ext(path) {
	case ExtZstd:
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		s.comp = enc
		dst = enc
	case ExtLZ4:
		zw := lz4.NewWriter(f)
		s.comp = zw
		dst = zw
	}
	s.w = bufio.NewWriter(dst)

	if err := s.writeLine(header{Codec: c.Name()}); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Write appends res.
func (s *Sink) Write(res *Result) error {
	return s.writeLine(res)
}

func (s *Sink) writeLine(v any) error {
	b, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("bench: encode result: %w", err)
	}
	if _, err := s.w.Write(b); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered results and closes the file.
func (s *Sink) Close() error {
	var errs []error
	errs = append(errs, s.w.Flush())
	if s.comp != nil {
		errs = append(errs, s.comp.Close())
	}
	errs = append(errs, s.f.Close())
	return errors.Join(errs...)
}

// ReadResults decodes every Result of a file written by Sink.
func ReadResults(path string) ([]Result, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	switch filepath.Ext(path) {
	case ExtZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	case ExtLZ4:
		src = lz4.NewReader(f)
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("bench: %s: missing header", path)
	}
	var h header
	if err := (codec.JSON{}).Unmarshal(sc.Bytes(), &h); err != nil {
		return nil, fmt.Errorf("bench: %s: header: %w", path, err)
	}
	c, ok := codec.ByName(h.Codec)
	if !ok {
		return nil, fmt.Errorf("bench: %s: unknown codec %q", path, h.Codec)
	}

	var out []Result
	for sc.Scan() {
		var r Result
		if err := c.Unmarshal(sc.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("bench: %s: line %d: %w", path, len(out)+2, err)
		}
		out = append(out, r)
	}
	return out, sc.Err()
}
