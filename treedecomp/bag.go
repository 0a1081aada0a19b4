// SPDX-License-Identifier: MIT

package treedecomp

import (
	"sort"
	"strconv"
	"strings"
)

// BagType classifies the bags of a nice decomposition.
type BagType int

// Bag types. Bags of a decomposition that is not nice are Unclassified.
const (
	Unclassified BagType = iota
	Introduce
	Forget
	Join
)

// String returns the lower-case type name.
func (t BagType) String() string {
	switch t {
	case Introduce:
		return "introduce"
	case Forget:
		return "forget"
	case Join:
		return "join"
	}

	return "unclassified"
}

// Bag is one node of a tree decomposition. Bags are owned by their
// TreeDecomposition; a *Bag stays valid until the next transformation.
type Bag struct {
	index    int
	elements []int // ascending

	parent  *Bag
	child   *Bag // first child
	sibling *Bag // next child of parent

	typ     BagType
	subtype int // node introduced or forgotten, -1 otherwise
}

func newBag(elements []int) *Bag {
	e := append([]int(nil), elements...)
	sort.Ints(e)

	return &Bag{elements: e, subtype: -1}
}

// Index returns the postfix index of b.
func (b *Bag) Index() int { return b.index }

// Size returns the number of nodes in b.
func (b *Bag) Size() int { return len(b.elements) }

// Elements returns the nodes of b in ascending order.
func (b *Bag) Elements() []int { return append([]int(nil), b.elements...) }

// Element returns the i-th smallest node of b.
func (b *Bag) Element(i int) int { return b.elements[i] }

// Contains reports whether node v lies in b.
func (b *Bag) Contains(v int) bool {
	i := sort.SearchInts(b.elements, v)

	return i < len(b.elements) && b.elements[i] == v
}

// Parent returns the parent of b, or nil at the root.
func (b *Bag) Parent() *Bag { return b.parent }

// Children returns the first child of b, or nil at a leaf.
func (b *Bag) Children() *Bag { return b.child }

// Sibling returns the next child of b's parent, or nil.
func (b *Bag) Sibling() *Bag { return b.sibling }

// IsLeaf reports whether b has no children.
func (b *Bag) IsLeaf() bool { return b.child == nil }

// Type returns the nice-decomposition type of b.
func (b *Bag) Type() BagType { return b.typ }

// Subtype returns the node that b introduces or forgets, or -1.
func (b *Bag) Subtype() int { return b.subtype }

// Next returns the bag after b in postfix order, or nil after the root.
func (b *Bag) Next() *Bag {
	if b.sibling != nil {
		return leftmostLeaf(b.sibling)
	}

	return b.parent
}

// NextPrefix returns the bag after b in prefix order, or nil at the end.
func (b *Bag) NextPrefix() *Bag {
	if b.child != nil {
		return b.child
	}
	for x := b; x != nil; x = x.parent {
		if x.sibling != nil {
			return x.sibling
		}
	}

	return nil
}

// String returns "{a b c}".
func (b *Bag) String() string {
	parts := make([]string, len(b.elements))
	for i, v := range b.elements {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, " ") + "}"
}

func leftmostLeaf(b *Bag) *Bag {
	for b.child != nil {
		b = b.child
	}

	return b
}

// subsetOf reports whether b's nodes all lie in o.
func (b *Bag) subsetOf(o *Bag) bool {
	i := 0
	for _, v := range b.elements {
		for i < len(o.elements) && o.elements[i] < v {
			i++
		}
		if i == len(o.elements) || o.elements[i] != v {
			return false
		}
	}

	return true
}

func (b *Bag) sameAs(o *Bag) bool {
	return len(b.elements) == len(o.elements) && b.subsetOf(o)
}

// addChild appends c to the end of b's child list.
func (b *Bag) addChild(c *Bag) {
	c.parent, c.sibling = b, nil
	if b.child == nil {
		b.child = c

		return
	}
	x := b.child
	for x.sibling != nil {
		x = x.sibling
	}
	x.sibling = c
}

// detach removes b from its parent's child list.
func (b *Bag) detach() {
	p := b.parent
	if p == nil {
		return
	}
	if p.child == b {
		p.child = b.sibling
	} else {
		x := p.child
		for x.sibling != b {
			x = x.sibling
		}
		x.sibling = b.sibling
	}
	b.parent, b.sibling = nil, nil
}

// childList returns b's children in order.
func (b *Bag) childList() []*Bag {
	var out []*Bag
	for c := b.child; c != nil; c = c.sibling {
		out = append(out, c)
	}

	return out
}
