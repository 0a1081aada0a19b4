// SPDX-License-Identifier: MIT

package bigint

import "math"

// add64 returns a+b and false if the sum overflows int64.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return 0, false
	}

	return s, true
}

// sub64 returns a-b and false if the difference overflows int64.
func sub64(a, b int64) (int64, bool) {
	d := a - b
	if (d < a) != (b > 0) {
		return 0, false
	}

	return d, true
}

// mul64 returns a*b and false if the product overflows int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// abs64 returns |v| as a uint64; |MinInt64| is representable.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v) // wraps to 2^63 for MinInt64, which is the right magnitude
	}

	return uint64(v)
}

// gcd64 is Euclid's algorithm on magnitudes.
func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
