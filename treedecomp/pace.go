// SPDX-License-Identifier: MIT

package treedecomp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WritePACE writes td in PACE 2016 format. Bags are numbered by postfix
// index plus one and each tree edge is written child first.
func (td *TreeDecomposition) WritePACE(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "s td %d %d %d\n", len(td.bags), td.width+1, td.order); err != nil {
		return err
	}
	for _, b := range td.bags {
		if _, err := bw.WriteString("b " + strconv.Itoa(b.index+1)); err != nil {
			return err
		}
		for _, v := range b.elements {
			if _, err := bw.WriteString(" " + strconv.Itoa(v+1)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	for _, b := range td.bags {
		if b.parent != nil {
			if _, err := fmt.Fprintf(bw, "%d %d\n", b.index+1, b.parent.index+1); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// PACE returns td in PACE 2016 format.
func (td *TreeDecomposition) PACE() string {
	var sb strings.Builder
	_ = td.WritePACE(&sb) // a strings.Builder never fails

	return sb.String()
}

// paceReader tracks the current line for error messages.
type paceReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-comment, non-blank line.
func (r *paceReader) next() ([]string, bool) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || text[0] == 'c' {
			continue
		}

		return strings.Fields(text), true
	}

	return nil, false
}

func (r *paceReader) fail(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPACE, "line %d: "+format, append([]interface{}{r.line}, args...)...)
}

func atoi(s string) (int, bool) {
	v, err := strconv.Atoi(s)

	return v, err == nil
}

// ReadPACE parses a PACE 2016 decomposition. The result is rooted at the
// bag numbered 1 in the input and reindexed in postfix order.
func ReadPACE(rd io.Reader) (*TreeDecomposition, error) {
	r := &paceReader{sc: bufio.NewScanner(rd)}

	head, ok := r.next()
	if !ok {
		return nil, r.fail("missing header")
	}
	if len(head) != 5 || head[0] != "s" || head[1] != "td" {
		return nil, r.fail("bad header %q", strings.Join(head, " "))
	}
	nb, ok1 := atoi(head[2])
	maxSize, ok2 := atoi(head[3])
	nv, ok3 := atoi(head[4])
	if !ok1 || !ok2 || !ok3 || nb < 0 || maxSize < 0 || nv < 0 {
		return nil, r.fail("bad header numbers")
	}

	bags := make([]*Bag, nb)
	actualMax := 0
	for k := 0; k < nb; k++ {
		f, ok := r.next()
		if !ok {
			return nil, r.fail("expected %d bags, found %d", nb, k)
		}
		if f[0] != "b" || len(f) < 2 {
			return nil, r.fail("expected a bag line")
		}
		idx, ok := atoi(f[1])
		if !ok || idx < 1 || idx > nb {
			return nil, r.fail("bag index %q out of range", f[1])
		}
		if bags[idx-1] != nil {
			return nil, r.fail("bag %d listed twice", idx)
		}
		elems := make([]int, 0, len(f)-2)
		seen := make(map[int]bool, len(f)-2)
		for _, s := range f[2:] {
			v, ok := atoi(s)
			if !ok || v < 1 || v > nv {
				return nil, r.fail("node %q out of range", s)
			}
			if seen[v] {
				return nil, r.fail("node %d repeated in bag %d", v, idx)
			}
			seen[v] = true
			elems = append(elems, v-1)
		}
		if len(elems) > actualMax {
			actualMax = len(elems)
		}
		bags[idx-1] = newBag(elems)
	}
	if actualMax != maxSize {
		return nil, r.fail("header claims bag size %d, largest bag has %d", maxSize, actualMax)
	}

	adj := make([][]int, nb)
	for k := 0; k < nb-1; k++ {
		f, ok := r.next()
		if !ok {
			return nil, r.fail("expected %d tree edges, found %d", nb-1, k)
		}
		if len(f) != 2 {
			return nil, r.fail("expected a tree edge")
		}
		i, ok1 := atoi(f[0])
		j, ok2 := atoi(f[1])
		if !ok1 || !ok2 || i < 1 || j < 1 || i > nb || j > nb || i >= j {
			return nil, r.fail("bad tree edge %q", strings.Join(f, " "))
		}
		adj[i-1] = append(adj[i-1], j-1)
		adj[j-1] = append(adj[j-1], i-1)
	}
	if f, ok := r.next(); ok {
		return nil, r.fail("unexpected trailing line %q", strings.Join(f, " "))
	}
	if err := r.sc.Err(); err != nil {
		return nil, errors.Wrap(err, "treedecomp: reading PACE")
	}

	td := &TreeDecomposition{order: nv}
	if nb == 0 {
		td.reindex()

		return td, nil
	}
	// Orient the tree away from bag 1; nb-1 edges reaching every bag make
	// a tree.
	visited := make([]bool, nb)
	visited[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if visited[v] {
				continue
			}
			visited[v] = true
			bags[u].addChild(bags[v])
			queue = append(queue, v)
		}
	}
	for k, v := range visited {
		if !v {
			return nil, errors.Wrapf(ErrPACE, "bag %d is not connected to the tree", k+1)
		}
	}
	td.root = bags[0]
	td.reindex()

	return td, nil
}
