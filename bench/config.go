package bench

import (
	"errors"
	"fmt"
	"strings"
)

// Layout selects how records are stored.
type Layout uint8

const (
	// AoS stores records as a slice of tuples.
	AoS Layout = iota
	// SoA stores records in a soa.VectorN, one column per field.
	SoA
)

// String returns the string representation of a Layout.
func (l Layout) String() string {
	switch l {
	case AoS:
		return "aos"
	case SoA:
		return "soa"
	default:
		return "unknown"
	}
}

// ParseLayout parses a string into a Layout value.
func ParseLayout(s string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aos":
		return AoS, true
	case "soa":
		return SoA, true
	default:
		return AoS, false
	}
}

// Pattern selects which fields an Op is applied to.
type Pattern uint8

const (
	// Single touches the middle field only.
	Single Pattern = iota
	// Independent touches every field on its own.
	Independent
	// Combined touches every field of a record and folds the results.
	Combined
)

// String returns the string representation of a Pattern.
func (p Pattern) String() string {
	switch p {
	case Single:
		return "single"
	case Independent:
		return "independent"
	case Combined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParsePattern parses a string into a Pattern value.
func ParsePattern(s string) (Pattern, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, true
	case "independent":
		return Independent, true
	case "combined":
		return Combined, true
	default:
		return Single, false
	}
}

// Op is the per-field computation.
type Op uint8

const (
	// Simple is a cheap arithmetic update.
	Simple Op = iota
	// Complex adds a modular power or a tanh to Simple.
	Complex
	// Branching is Simple written with data-dependent branches.
	Branching
)

// String returns the string representation of an Op.
func (o Op) String() string {
	switch o {
	case Simple:
		return "simple"
	case Complex:
		return "complex"
	case Branching:
		return "branching"
	default:
		return "unknown"
	}
}

// ParseOp parses a string into an Op value.
func ParseOp(s string) (Op, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return Simple, true
	case "complex":
		return Complex, true
	case "branching":
		return Branching, true
	default:
		return Simple, false
	}
}

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrUnknownShape is returned for a shape name that is not registered.
	ErrUnknownShape = errors.New("bench: unknown shape")
)

// Config describes one benchmark run.
type Config struct {
	Layout  Layout  `json:"layout"`
	Pattern Pattern `json:"pattern"`
	Op      Op      `json:"op"`
	Shape   string  `json:"shape"`
	Size    int     `json:"size"`
	Repeats int     `json:"repeats"`
	Seed    uint32  `json:"seed"`
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Layout:  SoA,
		Pattern: Single,
		Op:      Simple,
		Shape:   "int-double-double",
		Size:    1 << 20,
		Repeats: 10,
		Seed:    1,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.Layout > SoA {
		return fmt.Errorf("%w: layout %d", ErrInvalidConfig, c.Layout)
	}
	if c.Pattern > Combined {
		return fmt.Errorf("%w: pattern %d", ErrInvalidConfig, c.Pattern)
	}
	if c.Op > Branching {
		return fmt.Errorf("%w: op %d", ErrInvalidConfig, c.Op)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("%w: repeats must be positive, got %d", ErrInvalidConfig, c.Repeats)
	}
	if _, ok := shapes[c.Shape]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShape, c.Shape)
	}
	return nil
}

// Name returns a compact label such as "soa/single/simple/int5".
func (c Config) Name() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.Layout, c.Pattern, c.Op, c.Shape)
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(b []byte) error {
	v, ok := ParseLayout(string(b))
	if !ok {
		return fmt.Errorf("%w: layout %q", ErrInvalidConfig, b)
	}
	*l = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, ok := ParsePattern(string(b))
	if !ok {
		return fmt.Errorf("%w: pattern %q", ErrInvalidConfig, b)
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(b []byte) error {
	v, ok := ParseOp(string(b))
	if !ok {
		return fmt.Errorf("%w: op %q", ErrInvalidConfig, b)
	}
	*o = v
	return nil
}
