// SPDX-License-Identifier: MIT

package triangulation

import (
	"github.com/pkg/errors"
)

// sigValue decodes one signature character, or returns -1.
func sigValue(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '-':
		return 63
	}

	return -1
}

// sigReader walks a signature string, remembering the offset for errors.
type sigReader struct {
	s   string
	pos int
}

func (r *sigReader) done() bool { return r.pos >= len(r.s) }

func (r *sigReader) fail(msg string) error {
	return errors.Wrapf(ErrBadSignature, "%q at offset %d: %s", r.s, r.pos, msg)
}

func (r *sigReader) next() (int, error) {
	if r.done() {
		return 0, r.fail("unexpected end")
	}
	v := sigValue(r.s[r.pos])
	if v < 0 {
		return 0, r.fail("invalid character")
	}
	r.pos++

	return v, nil
}

// readInt reads an nChars-character little-endian base-64 integer.
func (r *sigReader) readInt(nChars int) (int, error) {
	val := 0
	for i := 0; i < nChars; i++ {
		v, err := r.next()
		if err != nil {
			return 0, err
		}
		val |= v << (6 * i)
	}

	return val, nil
}

// FromIsoSig decodes an isomorphism signature. A signature may describe
// several components one after another; they are numbered consecutively.
// Malformed input fails with ErrBadSignature, wrapped with the offending
// offset.
func FromIsoSig(sig string) (*Triangulation, error) {
	t := &Triangulation{}
	r := &sigReader{s: sig}
	if r.done() {
		return nil, r.fail("empty signature")
	}
	for !r.done() {
		if err := decodeComponent(t, r); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustFromIsoSig is like FromIsoSig but panics on error. It is intended for
// tests and fixed literals.
func MustFromIsoSig(sig string) *Triangulation {
	t, err := FromIsoSig(sig)
	if err != nil {
		panic(err)
	}

	return t
}

func decodeComponent(t *Triangulation, r *sigReader) error {
	first, err := r.next()
	if err != nil {
		return err
	}
	nSimp, nChars := first, 1
	if first == 63 {
		if nChars, err = r.next(); err != nil {
			return err
		}
		if nSimp, err = r.readInt(nChars); err != nil {
			return err
		}
	}
	if nSimp == 0 {
		return nil
	}

	// Facet actions, three per character: 0 boundary, 1 new simplex, 2 join.
	var (
		total   = 4 * nSimp
		covered int
		actions []int
		nJoins  int
	)
	for covered < total {
		v, err := r.next()
		if err != nil {
			return err
		}
		for trit := 0; trit < 3; trit++ {
			a := (v >> (2 * trit)) & 3
			if covered >= total {
				if a != 0 {
					return r.fail("trailing facet action")
				}
				continue
			}
			switch a {
			case 0:
				covered++
			case 1:
				covered += 2
			case 2:
				covered += 2
				nJoins++
			default:
				return r.fail("invalid facet action")
			}
			actions = append(actions, a)
		}
	}
	if covered != total {
		return r.fail("facet actions overrun")
	}

	dest := make([]int, nJoins)
	for i := range dest {
		if dest[i], err = r.readInt(nChars); err != nil {
			return err
		}
	}
	perm := make([]Perm4, nJoins)
	for i := range perm {
		g, err := r.next()
		if err != nil {
			return err
		}
		if g >= 24 {
			return r.fail("gluing index out of range")
		}
		perm[i] = OrderedS4(g)
	}

	base := t.Size()
	for i := 0; i < nSimp; i++ {
		t.AddTetrahedron()
	}
	var (
		nextUnused = 1
		act, join  int
	)
	for pos := 0; pos < nSimp; pos++ {
		for f := 0; f < 4; f++ {
			if t.Adjacent(base+pos, f) >= 0 {
				continue
			}
			if act >= len(actions) {
				return r.fail("missing facet action")
			}
			switch actions[act] {
			case 1:
				if nextUnused >= nSimp {
					return r.fail("too many simplices")
				}
				if err := t.Join(base+pos, f, base+nextUnused, Identity); err != nil {
					return r.fail(err.Error())
				}
				nextUnused++
			case 2:
				d, g := dest[join], perm[join]
				join++
				if d >= nextUnused {
					return r.fail("join to unused simplex")
				}
				if t.Adjacent(base+d, g.At(f)) >= 0 || (d == pos && g.At(f) == f) {
					return r.fail("join to a glued facet")
				}
				if err := t.Join(base+pos, f, base+d, g); err != nil {
					return r.fail(err.Error())
				}
			}
			act++
		}
	}
	if nextUnused != nSimp {
		return r.fail("disconnected component")
	}

	return nil
}
