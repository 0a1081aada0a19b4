// SPDX-License-Identifier: MIT

package typetrie

import "fmt"

// Trie is a set of type vectors with values in [0, Width).
// The zero value is not usable; call New.
type Trie struct {
	width int
	kids  []int32 // kids[node*width+v], 0 for none (the root is never a child)
	here  []bool  // here[node]: some element ends at node
	size  int
	stack []frame
}

type frame struct {
	node  int32
	depth int
}

// New returns an empty trie for values in [0, width).
func New(width int) *Trie {
	if width < 1 {
		panic(fmt.Sprintf("typetrie: width %d", width))
	}
	t := &Trie{width: width}
	t.newNode()

	return t
}

func (t *Trie) newNode() int32 {
	n := int32(len(t.here))
	t.here = append(t.here, false)
	for i := 0; i < t.width; i++ {
		t.kids = append(t.kids, 0)
	}

	return n
}

func (t *Trie) child(n int32, v int) int32 { return t.kids[int(n)*t.width+v] }

func (t *Trie) check(v int) {
	if v < 0 || v >= t.width {
		panic(fmt.Sprintf("typetrie: value %d out of range [0,%d)", v, t.width))
	}
}

// Width returns the number of distinct values per position.
func (t *Trie) Width() int { return t.width }

// Len returns the number of distinct elements inserted.
func (t *Trie) Len() int { return t.size }

// Nodes returns the number of allocated nodes, the root included.
func (t *Trie) Nodes() int { return len(t.here) }

// Insert adds vec. Vectors differing only in trailing zeros are the same
// element.
func (t *Trie) Insert(vec []int) {
	last := len(vec) - 1
	for last >= 0 && vec[last] == 0 {
		last--
	}
	var n int32
	for i := 0; i <= last; i++ {
		t.check(vec[i])
		c := t.child(n, vec[i])
		if c == 0 {
			c = t.newNode()
			t.kids[int(n)*t.width+vec[i]] = c
		}
		n = c
	}
	if !t.here[n] {
		t.here[n] = true
		t.size++
	}
}

// Dominates reports whether some element s satisfies s[i] == 0 or
// s[i] == vec[i] at every position i.
func (t *Trie) Dominates(vec []int) bool {
	t.stack = append(t.stack[:0], frame{})
	for len(t.stack) > 0 {
		f := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if t.here[f.node] {
			return true
		}
		if f.depth == len(vec) {
			continue
		}
		v := vec[f.depth]
		t.check(v)
		if v != 0 {
			if c := t.child(f.node, v); c != 0 {
				t.stack = append(t.stack, frame{c, f.depth + 1})
			}
		}
		if c := t.child(f.node, 0); c != 0 {
			t.stack = append(t.stack, frame{c, f.depth + 1})
		}
	}

	return false
}

// Clear removes every element, keeping allocated capacity.
func (t *Trie) Clear() {
	t.kids = t.kids[:0]
	t.here = t.here[:0]
	t.size = 0
	t.newNode()
}
