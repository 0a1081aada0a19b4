// SPDX-License-Identifier: MIT

package bigint

// DivByGCD divides every entry of v by the gcd of all entries, in place,
// and returns that gcd. A zero vector is left unchanged and 0 is returned.
func DivByGCD(v []Int) *Int {
	g := new(Int)
	for i := range v {
		g.GCD(g, &v[i])
		if g.IsOne() {
			return g
		}
	}
	if g.IsZero() || g.IsOne() {
		return g
	}
	for i := range v {
		_, _ = v[i].DivExact(&v[i], g) // g != 0
	}

	return g
}
