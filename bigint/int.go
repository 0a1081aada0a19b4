// SPDX-License-Identifier: MIT

package bigint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Int is an arbitrary precision signed integer. The zero value is 0.
//
// Representation:
//   - small holds the value whenever it fits in an int64 (large == nil);
//   - large holds a multi-limb value that does not fit in an int64.
//
// A *big.Int stored in large is never modified afterwards, therefore Int
// values can be copied by plain assignment without aliasing hazards.
type Int struct {
	small int64    // inline value, valid when large == nil
	large *big.Int // immutable multi-limb value, or nil
}

// NewInt returns a new Int holding v.
func NewInt(v int64) *Int { return &Int{small: v} }

// FromBig returns a new Int holding a copy of b.
func FromBig(b *big.Int) *Int { return new(Int).SetBig(b) }

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	z.small, z.large = v, nil

	return z
}

// SetBig sets z to a copy of b and returns z.
func (z *Int) SetBig(b *big.Int) *Int { return z.adopt(new(big.Int).Set(b)) }

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	z.small, z.large = x.small, x.large

	return z
}

// adopt takes ownership of b (which must not be referenced elsewhere) and
// stores it in z, demoting to the inline form when the value fits.
func (z *Int) adopt(b *big.Int) *Int {
	if b.IsInt64() {
		z.small, z.large = b.Int64(), nil

		return z
	}
	z.small, z.large = 0, b

	return z
}

// toBig returns x as a *big.Int. For a multi-limb x the result aliases the
// internal storage and must be treated as read-only.
func (x *Int) toBig() *big.Int {
	if x.large != nil {
		return x.large
	}

	return big.NewInt(x.small)
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	if x.large == nil && y.large == nil {
		if s, ok := add64(x.small, y.small); ok {
			return z.SetInt64(s)
		}
	}

	return z.adopt(new(big.Int).Add(x.toBig(), y.toBig()))
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	if x.large == nil && y.large == nil {
		if d, ok := sub64(x.small, y.small); ok {
			return z.SetInt64(d)
		}
	}

	return z.adopt(new(big.Int).Sub(x.toBig(), y.toBig()))
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	if x.large == nil && x.small != math.MinInt64 {
		return z.SetInt64(-x.small)
	}

	return z.adopt(new(big.Int).Neg(x.toBig()))
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	if x.Sign() < 0 {
		return z.Neg(x)
	}

	return z.Set(x)
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if x.large == nil && y.large == nil {
		if p, ok := mul64(x.small, y.small); ok {
			return z.SetInt64(p)
		}
	}

	return z.adopt(new(big.Int).Mul(x.toBig(), y.toBig()))
}

// MulInt64 sets z to x*v and returns z.
func (z *Int) MulInt64(x *Int, v int64) *Int {
	y := Int{small: v}

	return z.Mul(x, &y)
}

// AddMul sets z to z + x*y and returns z. It is the inner step of a pivot.
func (z *Int) AddMul(x, y *Int) *Int {
	var p Int
	p.Mul(x, y)

	return z.Add(z, &p)
}

// Div sets z to the quotient x/y truncated towards zero, as Go's / does.
// It fails with ErrDivideByZero when y is zero, leaving z unchanged.
func (z *Int) Div(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return z, ErrDivideByZero
	}
	if x.large == nil && y.large == nil && !(x.small == math.MinInt64 && y.small == -1) {
		return z.SetInt64(x.small / y.small), nil
	}

	return z.adopt(new(big.Int).Quo(x.toBig(), y.toBig())), nil
}

// DivExact sets z to x/y where y is known to divide x exactly.
// If y does not divide x the result is the truncated quotient.
// It fails with ErrDivideByZero when y is zero, leaving z unchanged.
func (z *Int) DivExact(x, y *Int) (*Int, error) { return z.Div(x, y) }

// Mod sets z to the remainder of x/y with the sign of x, as Go's % does.
// It fails with ErrDivideByZero when y is zero, leaving z unchanged.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return z, ErrDivideByZero
	}
	if x.large == nil && y.large == nil {
		return z.SetInt64(x.small % y.small), nil // MinInt64 % -1 == 0 in Go
	}

	return z.adopt(new(big.Int).Rem(x.toBig(), y.toBig())), nil
}

// GCD sets z to the non-negative greatest common divisor of x and y and
// returns z. GCD(0, 0) is 0.
func (z *Int) GCD(x, y *Int) *Int {
	if x.large == nil && y.large == nil {
		g := gcd64(abs64(x.small), abs64(y.small))
		if g <= math.MaxInt64 {
			return z.SetInt64(int64(g))
		}

		return z.adopt(new(big.Int).SetUint64(g)) // only 2^63
	}

	return z.adopt(new(big.Int).GCD(nil, nil, x.toBig(), y.toBig()))
}

// LCM sets z to the non-negative least common multiple of x and y and
// returns z. LCM(x, 0) is 0.
func (z *Int) LCM(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return z.SetInt64(0)
	}
	var g, q Int
	g.GCD(x, y)
	_, _ = q.Div(x, &g) // g != 0
	q.Mul(&q, y)

	return z.Abs(&q)
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	if x.large == nil && y.large == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}

		return 0
	}

	return x.toBig().Cmp(y.toBig())
}

// CmpInt64 compares x with v and returns -1, 0 or +1.
func (x *Int) CmpInt64(v int64) int {
	y := Int{small: v}

	return x.Cmp(&y)
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Int) Sign() int {
	if x.large != nil {
		return x.large.Sign()
	}
	switch {
	case x.small < 0:
		return -1
	case x.small > 0:
		return 1
	}

	return 0
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return x.large == nil && x.small == 0 }

// IsOne reports whether x == 1.
func (x *Int) IsOne() bool { return x.large == nil && x.small == 1 }

// IsNative reports whether x is currently stored inline.
func (x *Int) IsNative() bool { return x.large == nil }

// Int64 returns x as an int64 and whether it fits.
func (x *Int) Int64() (int64, bool) {
	if x.large != nil {
		return 0, false
	}

	return x.small, true
}

// Big returns a fresh *big.Int holding x.
func (x *Int) Big() *big.Int {
	if x.large != nil {
		return new(big.Int).Set(x.large)
	}

	return big.NewInt(x.small)
}

// Float64 returns the nearest float64 to x.
func (x *Int) Float64() float64 {
	if x.large == nil {
		return float64(x.small)
	}
	f, _ := new(big.Float).SetInt(x.large).Float64()

	return f
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x.large != nil {
		return x.large.String()
	}

	return strconv.FormatInt(x.small, 10)
}

// Format implements fmt.Formatter so that %v, %d and %s print decimal text.
func (x *Int) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 'd', 's':
		_, _ = fmt.Fprint(s, x.String())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	z.Set(v)

	return nil
}

// Parse reads a decimal integer with an optional leading sign. Surrounding
// whitespace is ignored. Ill-formed input fails with ErrParse.
func Parse(s string) (*Int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	if v, err := strconv.ParseInt(t, 10, 64); err == nil {
		return NewInt(v), nil
	}
	b, ok := new(big.Int).SetString(t, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return new(Int).adopt(b), nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package-level constants.
func MustParse(s string) *Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}
