// SPDX-License-Identifier: MIT

package triangulation

import "strconv"

// Perm4 is a permutation of {0,1,2,3}; p[i] is the image of i.
// The zero value is not a permutation; start from Identity.
type Perm4 [4]uint8

// Identity is the identity permutation.
var Identity = Perm4{0, 1, 2, 3}

// orderedS4 lists all 24 permutations in lexicographic order of their
// image sequences. Isomorphism signatures index gluings into this table.
var orderedS4 [24]Perm4

// orderedIndex inverts orderedS4, keyed by p[0]*64+p[1]*16+p[2]*4+p[3].
var orderedIndex [256]uint8

func init() {
	k := 0
	for a := uint8(0); a < 4; a++ {
		for b := uint8(0); b < 4; b++ {
			for c := uint8(0); c < 4; c++ {
				if b == a || c == a || c == b {
					continue
				}
				d := 6 - a - b - c
				p := Perm4{a, b, c, d}
				orderedS4[k] = p
				orderedIndex[p.key()] = uint8(k)
				k++
			}
		}
	}
}

// NewPerm4 returns the permutation mapping i to images[i].
func NewPerm4(a, b, c, d int) (Perm4, error) {
	var seen [4]bool
	for _, x := range [4]int{a, b, c, d} {
		if x < 0 || x > 3 || seen[x] {
			return Perm4{}, ErrBadPermutation
		}
		seen[x] = true
	}

	return Perm4{uint8(a), uint8(b), uint8(c), uint8(d)}, nil
}

// OrderedS4 returns permutation i (0 <= i < 24) in lexicographic order.
func OrderedS4(i int) Perm4 { return orderedS4[i] }

// Transposition returns the permutation swapping a and b.
func Transposition(a, b int) Perm4 {
	p := Identity
	p[a], p[b] = p[b], p[a]

	return p
}

func (p Perm4) key() int { return int(p[0])<<6 | int(p[1])<<4 | int(p[2])<<2 | int(p[3]) }

// At returns the image of i.
func (p Perm4) At(i int) int { return int(p[i]) }

// Compose returns p∘q, the permutation i -> p[q[i]].
func (p Perm4) Compose(q Perm4) Perm4 {
	return Perm4{p[q[0]], p[q[1]], p[q[2]], p[q[3]]}
}

// Inverse returns the inverse permutation.
func (p Perm4) Inverse() Perm4 {
	var r Perm4
	for i := uint8(0); i < 4; i++ {
		r[p[i]] = i
	}

	return r
}

// Sign returns +1 for an even permutation and -1 for an odd one.
func (p Perm4) Sign() int {
	inv := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}

	return -1
}

// OrderedIndex returns the position of p in the lexicographic table.
func (p Perm4) OrderedIndex() int { return int(orderedIndex[p.key()]) }

// IsValid reports whether p really is a permutation of 0..3.
func (p Perm4) IsValid() bool {
	_, err := NewPerm4(int(p[0]), int(p[1]), int(p[2]), int(p[3]))

	return err == nil
}

// String returns the image sequence, e.g. "1203".
func (p Perm4) String() string {
	b := make([]byte, 0, 4)
	for _, x := range p {
		b = strconv.AppendUint(b, uint64(x), 10)
	}

	return string(b)
}

// EdgeNumber[a][b] is the edge joining vertices a and b (-1 on the diagonal).
var EdgeNumber = [4][4]int{
	{-1, 0, 1, 2},
	{0, -1, 3, 4},
	{1, 3, -1, 5},
	{2, 4, 5, -1},
}

// EdgeVertex[e] lists the endpoints of edge e in ascending order.
var EdgeVertex = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// edgeOrdering returns the permutation (a, b, c, d) where a<b are the ends of
// edge e and c<d the remaining vertices.
func edgeOrdering(e int) Perm4 {
	a, b := EdgeVertex[e][0], EdgeVertex[e][1]
	p := Perm4{uint8(a), uint8(b), 0, 0}
	k := 2
	for v := 0; v < 4; v++ {
		if v != a && v != b {
			p[k] = uint8(v)
			k++
		}
	}

	return p
}
