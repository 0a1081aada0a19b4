// SPDX-License-Identifier: MIT

package treedecomp

import (
	"strconv"
)

// Compress repeatedly merges a bag with its parent when one contains the
// other, keeping the larger set. It clears nice-decomposition types.
//
// Complexity: O(B^2 * w) for B bags of width w.
func (td *TreeDecomposition) Compress() {
	for changed := true; changed; {
		changed = false
		for _, b := range td.bags {
			p := b.parent
			if p == nil {
				continue
			}
			switch {
			case b.subsetOf(p):
			case p.subsetOf(b):
				p.elements = b.elements
			default:
				continue
			}
			spliceOut(b)
			changed = true

			break
		}
		td.reindex()
	}
	td.clearTypes()
}

// spliceOut removes b, moving its children into its place under its
// parent.
func spliceOut(b *Bag) {
	p := b.parent
	var kids []*Bag
	for _, c := range p.childList() {
		if c == b {
			kids = append(kids, b.childList()...)
		} else {
			kids = append(kids, c)
		}
	}
	p.child = nil
	for _, c := range kids {
		p.addChild(c)
	}
	b.parent, b.child, b.sibling = nil, nil, nil
}

func (td *TreeDecomposition) clearTypes() {
	for _, b := range td.bags {
		b.typ, b.subtype = Unclassified, -1
	}
}

// MakeNice converts td into a nice decomposition. A decomposition that is
// already nice is left unchanged.
func (td *TreeDecomposition) MakeNice() {
	if td.root == nil || td.IsNice() {
		return
	}
	td.Compress()
	if td.root.Size() > 0 {
		r := newBag(nil)
		r.addChild(td.root)
		td.root = r
	}
	var all []*Bag
	for b := td.root; b != nil; b = b.NextPrefix() {
		all = append(all, b)
	}
	for _, b := range all {
		splitJoin(b)
	}
	all = all[:0]
	for b := td.root; b != nil; b = b.NextPrefix() {
		all = append(all, b)
	}
	for _, b := range all {
		if b.parent != nil && !isJoinEdge(b.parent) {
			bridge(b.parent, b)
		}
		if b.child == nil {
			extendLeaf(b)
		}
	}
	td.reindex()
	for _, b := range td.bags {
		classify(b)
	}
}

func isJoinEdge(p *Bag) bool {
	if p.child == nil || p.child.sibling == nil {
		return false
	}

	return p.child.sameAs(p) && p.child.sibling.sameAs(p)
}

// splitJoin rewrites a bag with k >= 2 children as a chain of k-1 join
// bags, each child hanging below its own copy of b.
func splitJoin(b *Bag) {
	kids := b.childList()
	if len(kids) < 2 || isJoinEdge(b) {
		return
	}
	for _, c := range kids {
		c.detach()
	}
	cur := b
	for i := 0; i < len(kids)-1; i++ {
		left := newBag(b.elements)
		left.addChild(kids[i])
		cur.addChild(left)
		right := newBag(b.elements)
		cur.addChild(right)
		if i == len(kids)-2 {
			right.addChild(kids[i+1])
		}
		cur = right
	}
}

// bridge inserts bags between p and its only child c so that each step
// forgets or introduces one node: nodes of c missing from p are forgotten
// first, then nodes of p missing from c are introduced, in ascending order.
func bridge(p, c *Bag) {
	var steps [][]int
	cur := append([]int(nil), c.elements...)
	for _, x := range c.elements {
		if !p.Contains(x) {
			cur = remove(cur, x)
			steps = append(steps, cur)
		}
	}
	for _, y := range p.elements {
		if !c.Contains(y) {
			cur = insert(cur, y)
			steps = append(steps, cur)
		}
	}
	if len(steps) <= 1 {
		return
	}
	steps = steps[:len(steps)-1]
	c.detach()
	prev := c
	for _, s := range steps {
		nb := newBag(s)
		nb.addChild(prev)
		prev = nb
	}
	p.addChild(prev)
}

// extendLeaf hangs single-introduce bags below a leaf until the lowest
// one holds a single node.
func extendLeaf(b *Bag) {
	for cur := b; len(cur.elements) > 1; {
		nb := newBag(cur.elements[:len(cur.elements)-1])
		cur.addChild(nb)
		cur = nb
	}
}

func remove(s []int, x int) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		if v != x {
			out = append(out, v)
		}
	}

	return out
}

func insert(s []int, x int) []int {
	out := make([]int, 0, len(s)+1)
	done := false
	for _, v := range s {
		if !done && x < v {
			out = append(out, x)
			done = true
		}
		out = append(out, v)
	}
	if !done {
		out = append(out, x)
	}

	return out
}

func classify(b *Bag) {
	b.typ, b.subtype = Unclassified, -1
	switch kids := b.childList(); len(kids) {
	case 0:
		if len(b.elements) == 1 {
			b.typ, b.subtype = Introduce, b.elements[0]
		}
	case 1:
		c := kids[0]
		switch {
		case len(b.elements) == len(c.elements)+1 && c.subsetOf(b):
			b.typ, b.subtype = Introduce, difference(b, c)
		case len(c.elements) == len(b.elements)+1 && b.subsetOf(c):
			b.typ, b.subtype = Forget, difference(c, b)
		}
	case 2:
		if isJoinEdge(b) {
			b.typ = Join
		}
	}
}

// difference returns the single node of a missing from b.
func difference(a, b *Bag) int {
	for _, v := range a.elements {
		if !b.Contains(v) {
			return v
		}
	}

	return -1
}

// Reroot makes bag i the root, reversing the tree edges on its path to
// the old root. It clears nice-decomposition types.
func (td *TreeDecomposition) Reroot(i int) error {
	b, err := td.Bag(i)
	if err != nil {
		return err
	}
	var path []*Bag
	for x := b; x != nil; x = x.parent {
		path = append(path, x)
	}
	for _, x := range path[:len(path)-1] {
		x.detach()
	}
	for k := 0; k < len(path)-1; k++ {
		path[k].addChild(path[k+1])
	}
	td.root = b
	td.reindex()
	td.clearTypes()

	return nil
}

// RerootCost chooses the root that minimises the largest per-bag cost and
// reroots there. Bag i costs root[i] if it becomes the root, same[i] if it
// keeps its current parent and reverse[i] if its parent becomes its
// current child. Ties go to the root with the fewest bags at that largest
// cost, then to the smaller index. It returns the new root's old index.
//
// Complexity: O(B * depth).
func (td *TreeDecomposition) RerootCost(same, reverse, root []float64) (int, error) {
	n := len(td.bags)
	if len(same) != n || len(reverse) != n || len(root) != n {
		return -1, ErrCostLength
	}
	if n == 0 {
		return -1, nil
	}
	onPath := make([]bool, n)
	best, bestMax, bestCount := -1, 0.0, 0
	for r := 0; r < n; r++ {
		for x := td.bags[r].parent; x != nil; x = x.parent {
			onPath[x.index] = true
		}
		maxCost, count := 0.0, 0
		for i := 0; i < n; i++ {
			c := same[i]
			switch {
			case i == r:
				c = root[i]
			case onPath[i]:
				c = reverse[i]
			}
			switch {
			case count == 0 || c > maxCost:
				maxCost, count = c, 1
			case c == maxCost:
				count++
			}
		}
		if best < 0 || maxCost < bestMax || (maxCost == bestMax && count < bestCount) {
			best, bestMax, bestCount = r, maxCost, count
		}
		for x := td.bags[r].parent; x != nil; x = x.parent {
			onPath[x.index] = false
		}
	}

	return best, td.Reroot(best)
}

func bagLine(b *Bag) string {
	s := strconv.Itoa(b.index) + ": " + b.String()
	if b.parent == nil {
		return s + " (root)"
	}

	return s + " -> " + strconv.Itoa(b.parent.index)
}
