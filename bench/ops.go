package bench

import (
	"math"
	"strconv"
)

// integer is the set of signed field types the operations understand.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type float interface {
	~float32 | ~float64
}

// apply runs op on the field p points to, updating it in place, and returns
// a float summary of the new value. Unsupported field types are left alone.
func apply(op Op, p any) float64 {
	switch x := p.(type) {
	case *int:
		return applyInt(op, x, math.MaxInt)
	case *int64:
		return applyInt(op, x, math.MaxInt64)
	case *int32:
		return applyInt(op, x, math.MaxInt32)
	case *int16:
		return applyInt(op, x, math.MaxInt16)
	case *int8:
		return applyInt(op, x, math.MaxInt8)
	case *float64:
		return applyFloat(op, x, 0x1p-52)
	case *float32:
		return applyFloat(op, x, 0x1p-23)
	case *string:
		return applyString(op, x)
	}
	return 0
}

func signum[T integer](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// powm returns x^e mod m with the sign rules of Go's remainder.
func powm[T integer](x, e, m T) T {
	x %= m
	r := T(1)
	for i := T(0); i < e; i++ {
		r = r * x % m
	}
	return r
}

func applyInt[T integer](op Op, p *T, maxT T) float64 {
	x := *p
	switch op {
	case Simple:
		// Flip toward zero; zero jumps to the maximum.
		if x == 0 {
			x = maxT
		} else {
			x = -(x - signum(x))
		}
	case Complex:
		if x == 0 {
			x = maxT
		} else {
			x = -(x - signum(x)*11)
		}
		x = powm(x, 3, 11)
	case Branching:
		switch {
		case x > 0:
			x = 1 - x
		case x < 0:
			x = -x - 1
		default:
			x += maxT
		}
	}
	*p = x
	return float64(x)
}

func applyFloat[T float](op Op, p *T, eps T) float64 {
	x := *p
	switch op {
	case Simple:
		a := T(math.Abs(float64(x)))
		x = (1 + a) / (a + eps)
	case Complex:
		a := T(math.Abs(float64(x)))
		x = T(math.Tanh(float64((1 + a) / (a + eps))))
	case Branching:
		switch {
		case x > eps:
			x = (1 + x) / x
		case x > 0:
			x = (1 + eps) / eps
		case x < -eps:
			x = (x - 1) / x
		default:
			x = (-eps - 1) / -eps
		}
	}
	*p = x
	return float64(x)
}

func applyString(op Op, p *string) float64 {
	s := *p
	n := len(s)
	if n == 0 {
		return 0
	}
	switch op {
	case Simple:
		// Rotate right by one byte.
		s = s[n-1:] + s[:n-1]
	case Complex:
		// Prefix the length, rotate it to the back, drop it again, then
		// rotate left by one byte.
		digits := strconv.Itoa(n)
		t := digits + s
		t = t[len(digits):] + t[:len(digits)]
		t = t[:n]
		s = t[1:] + t[:1]
	case Branching:
		if s[0]&1 == 1 {
			s = s[n-1:] + s[:n-1]
		} else {
			// Duplicate the front byte, then overwrite the copy with the
			// byte that fell off the end.
			b := []byte(s[:1] + s[:n-1])
			b[0] = s[n-1]
			s = string(b)
		}
	}
	*p = s
	return float64(n)
}

// fold is the per-field contribution to a Combined sum.
func fold(v float64) float64 {
	a := math.Abs(v)
	return (1+a)/(a+0.5) - 1
}
