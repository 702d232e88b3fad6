package testutil

import (
	"math"
	"strconv"
	"sync"
)

// RNG is a 32-bit xorshift generator (shifts 13, 17, 5).
// It is thread-safe.
type RNG struct {
	state uint32
	seed  uint32
	mu    sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
// A zero seed is replaced by 1, since zero is a fixed point of xorshift.
func NewRNG(seed uint32) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{state: seed, seed: seed}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = r.seed
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint32 {
	return r.seed
}

// Uint32 returns the next value of the sequence.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextLocked()
}

func (r *RNG) nextLocked() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("testutil: invalid argument to Intn")
	}
	return int(uint64(r.Uint32()) % uint64(n))
}

// Float64 returns a pseudo-random number in the open interval (0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.float64Locked()
}

func (r *RNG) float64Locked() float64 {
	// (x + 0.5) / 2^32 never reaches either bound.
	return (float64(r.nextLocked()) + 0.5) / (1 << 32)
}

// Generator produces random record fields. Integers are positive, floats lie
// in (0, 1) and strings are StringSize decimal digits.
type Generator struct {
	rng        *RNG
	StringSize int
}

// DefaultStringSize is the length of generated strings.
const DefaultStringSize = 16

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{rng: NewRNG(seed), StringSize: DefaultStringSize}
}

// RNG returns the underlying engine.
func (g *Generator) RNG() *RNG { return g.rng }

// Int returns a pseudo-random value in [1, limit).
func (g *Generator) Int(limit int64) int64 {
	g.rng.mu.Lock()
	defer g.rng.mu.Unlock()
	hi := uint64(g.rng.nextLocked())
	lo := uint64(g.rng.nextLocked())
	return int64((hi<<32|lo)%uint64(limit-1)) + 1
}

// Digits returns StringSize random decimal digits.
func (g *Generator) Digits() string {
	g.rng.mu.Lock()
	defer g.rng.mu.Unlock()
	b := make([]byte, g.StringSize)
	for i := range b {
		b[i] = '0' + byte(g.rng.nextLocked()%10)
	}
	return string(b)
}

// Fill overwrites the value p points to with a random value. p must be a
// pointer to a signed or unsigned integer, a float, a string or a bool.
// It reports whether the type is supported.
func (g *Generator) Fill(p any) bool {
	switch x := p.(type) {
	case *int:
		*x = int(g.Int(math.MaxInt))
	case *int64:
		*x = g.Int(math.MaxInt64)
	case *int32:
		*x = int32(g.Int(math.MaxInt32))
	case *int16:
		*x = int16(g.Int(math.MaxInt16))
	case *int8:
		*x = int8(g.Int(math.MaxInt8))
	case *uint:
		*x = uint(g.Int(math.MaxInt))
	case *uint64:
		*x = uint64(g.Int(math.MaxInt64))
	case *uint32:
		*x = uint32(g.Int(math.MaxUint32))
	case *uint16:
		*x = uint16(g.Int(math.MaxUint16))
	case *uint8:
		*x = uint8(g.Int(math.MaxUint8))
	case *float64:
		*x = g.rng.Float64()
	case *float32:
		// Rounding can reach 1.0 in float32; stay strictly inside.
		*x = min(float32(g.rng.Float64()), math.Nextafter32(1, 0))
	case *string:
		*x = g.Digits()
	case *bool:
		*x = g.rng.Uint32()&1 == 1
	default:
		return false
	}
	return true
}

// Sequence stores n in the value p points to, formatted in decimal for
// strings. It is the deterministic counterpart of Fill.
func Sequence(p any, n int) bool {
	switch x := p.(type) {
	case *int:
		*x = n
	case *int64:
		*x = int64(n)
	case *int32:
		*x = int32(n)
	case *float64:
		*x = float64(n)
	case *float32:
		*x = float32(n)
	case *string:
		*x = strconv.Itoa(n)
	default:
		return false
	}
	return true
}
