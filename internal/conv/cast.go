package conv

import (
	"fmt"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Convert converts v to To safely. It fails when the value does not survive
// the round trip or changes sign.
func Convert[To, From Integer](v From) (To, error) {
	out := To(v)
	if From(out) != v || (out < 0) != (v < 0) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to %T", v, out)
	}
	return out, nil
}

// Uint64ToUint32 converts uint64 to uint32 safely.
func Uint64ToUint32(v uint64) (uint32, error) { return Convert[uint32](v) }
