// SPDX-License-Identifier: MIT

package tableau

// Pool is a fixed set of tableaux reserved against one Initial, one slot
// per search-tree level plus scratch slots. It is owned by a single
// traversal.
type Pool struct {
	init  *Initial
	slots []Data
}

// NewPool reserves n tableaux for init.
func NewPool(init *Initial, n int) *Pool {
	p := &Pool{init: init, slots: make([]Data, n)}
	for i := range p.slots {
		p.slots[i].Reserve(init)
	}

	return p
}

// Len returns the number of slots.
func (p *Pool) Len() int { return len(p.slots) }

// Slot returns slot i.
func (p *Pool) Slot(i int) *Data {
	if i < 0 || i >= len(p.slots) {
		fail("pool slot out of range")
	}

	return &p.slots[i]
}

// Initial returns the shared system.
func (p *Pool) Initial() *Initial { return p.init }
