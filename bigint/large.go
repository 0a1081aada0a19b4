// SPDX-License-Identifier: MIT

package bigint

import (
	"fmt"
	"strings"
)

// infinityText is the textual form of the infinite LargeInt.
const infinityText = "inf"

// LargeInt is an Int extended with a single infinite element that lies
// beyond every finite value. The zero value is the finite integer 0.
//
// Infinity has no sign: Neg(inf) is inf and Abs(inf) is inf. Addition or
// subtraction involving infinity yields infinity; multiplication of
// infinity by a nonzero finite value yields infinity; every other
// operation involving infinity fails with ErrInfinity.
type LargeInt struct {
	v        Int  // finite value, meaningful when !infinite
	infinite bool // true for the infinite element
}

// NewLarge returns a new finite LargeInt holding v.
func NewLarge(v int64) *LargeInt { return &LargeInt{v: Int{small: v}} }

// Infinity returns a new infinite LargeInt.
func Infinity() *LargeInt { return &LargeInt{infinite: true} }

// SetInfinite sets z to infinity and returns z.
func (z *LargeInt) SetInfinite() *LargeInt {
	z.v.SetInt64(0)
	z.infinite = true

	return z
}

// SetInt sets z to the finite value x and returns z.
func (z *LargeInt) SetInt(x *Int) *LargeInt {
	z.v.Set(x)
	z.infinite = false

	return z
}

// SetInt64 sets z to the finite value v and returns z.
func (z *LargeInt) SetInt64(v int64) *LargeInt {
	z.v.SetInt64(v)
	z.infinite = false

	return z
}

// Set sets z to x and returns z.
func (z *LargeInt) Set(x *LargeInt) *LargeInt {
	z.v.Set(&x.v)
	z.infinite = x.infinite

	return z
}

// IsInfinite reports whether x is infinity.
func (x *LargeInt) IsInfinite() bool { return x.infinite }

// IsZero reports whether x is the finite value 0.
func (x *LargeInt) IsZero() bool { return !x.infinite && x.v.IsZero() }

// Finite returns a copy of the finite value of x, and false if x is infinite.
func (x *LargeInt) Finite() (*Int, bool) {
	if x.infinite {
		return nil, false
	}

	return new(Int).Set(&x.v), true
}

// Add sets z to x+y and returns z. Infinity is absorbing.
func (z *LargeInt) Add(x, y *LargeInt) *LargeInt {
	if x.infinite || y.infinite {
		return z.SetInfinite()
	}
	z.v.Add(&x.v, &y.v)
	z.infinite = false

	return z
}

// Sub sets z to x-y and returns z. Infinity is absorbing.
func (z *LargeInt) Sub(x, y *LargeInt) *LargeInt {
	if x.infinite || y.infinite {
		return z.SetInfinite()
	}
	z.v.Sub(&x.v, &y.v)
	z.infinite = false

	return z
}

// Neg sets z to -x and returns z; the negation of infinity is infinity.
func (z *LargeInt) Neg(x *LargeInt) *LargeInt {
	if x.infinite {
		return z.SetInfinite()
	}
	z.v.Neg(&x.v)
	z.infinite = false

	return z
}

// Abs sets z to |x| and returns z.
func (z *LargeInt) Abs(x *LargeInt) *LargeInt {
	if x.infinite {
		return z.SetInfinite()
	}
	z.v.Abs(&x.v)
	z.infinite = false

	return z
}

// Mul sets z to x*y. Infinity times zero fails with ErrInfinity and leaves
// z unchanged.
func (z *LargeInt) Mul(x, y *LargeInt) (*LargeInt, error) {
	if x.infinite || y.infinite {
		if x.IsZero() || y.IsZero() {
			return z, ErrInfinity
		}

		return z.SetInfinite(), nil
	}
	z.v.Mul(&x.v, &y.v)
	z.infinite = false

	return z, nil
}

// Div sets z to x/y truncated towards zero. Infinity divided by a nonzero
// finite value is infinity; division by infinity fails with ErrInfinity and
// division by zero with ErrDivideByZero.
func (z *LargeInt) Div(x, y *LargeInt) (*LargeInt, error) {
	switch {
	case y.infinite:
		return z, ErrInfinity
	case y.v.IsZero():
		return z, ErrDivideByZero
	case x.infinite:
		return z.SetInfinite(), nil
	}
	if _, err := z.v.Div(&x.v, &y.v); err != nil {
		return z, err
	}
	z.infinite = false

	return z, nil
}

// DivExact is Div for the case where y is known to divide x.
func (z *LargeInt) DivExact(x, y *LargeInt) (*LargeInt, error) { return z.Div(x, y) }

// Mod sets z to the remainder of x/y with the sign of x. Any infinite
// operand fails with ErrInfinity.
func (z *LargeInt) Mod(x, y *LargeInt) (*LargeInt, error) {
	if x.infinite || y.infinite {
		return z, ErrInfinity
	}
	if _, err := z.v.Mod(&x.v, &y.v); err != nil {
		return z, err
	}
	z.infinite = false

	return z, nil
}

// GCD sets z to the non-negative gcd of x and y. Any infinite operand fails
// with ErrInfinity.
func (z *LargeInt) GCD(x, y *LargeInt) (*LargeInt, error) {
	if x.infinite || y.infinite {
		return z, ErrInfinity
	}
	z.v.GCD(&x.v, &y.v)
	z.infinite = false

	return z, nil
}

// Cmp compares x and y: infinity equals itself and exceeds every finite value.
func (x *LargeInt) Cmp(y *LargeInt) int {
	switch {
	case x.infinite && y.infinite:
		return 0
	case x.infinite:
		return 1
	case y.infinite:
		return -1
	}

	return x.v.Cmp(&y.v)
}

// Equal reports whether x and y hold the same value.
func (x *LargeInt) Equal(y *LargeInt) bool { return x.Cmp(y) == 0 }

// Sign returns the sign of x; infinity is positive.
func (x *LargeInt) Sign() int {
	if x.infinite {
		return 1
	}

	return x.v.Sign()
}

// String returns the decimal text of x, or "inf".
func (x *LargeInt) String() string {
	if x.infinite {
		return infinityText
	}

	return x.v.String()
}

// ParseLarge reads a decimal integer or the word "inf" (case-insensitive,
// "∞" is also accepted).
func ParseLarge(s string) (*LargeInt, error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, infinityText) || t == "∞" {
		return Infinity(), nil
	}
	v, err := Parse(t)
	if err != nil {
		return nil, fmt.Errorf("large: %w", err)
	}

	return new(LargeInt).SetInt(v), nil
}
