// SPDX-License-Identifier: MIT

package treetraversal

import (
	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/surface"
)

// vector maps the permuted leaf solution back to the requested encoding,
// folds a merged quadrilateral pair into its octagon, drops the policy
// columns and divides out the gcd.
func (c *core[C, B]) vector() []bigint.Int {
	if c.enc.StoresAngles() {
		out := make([]bigint.Int, c.init.BaseColumns())
		for col := range c.soln {
			o := c.init.Original(col)
			if o < len(out) {
				out[o] = c.soln[col]
			}
		}
		bigint.DivByGCD(out)

		return out
	}

	layout := c.init.Layout()
	lblk, eblk := layout.BlockSize(), c.enc.BlockSize()
	out := make([]bigint.Int, c.enc.Columns(c.n))
	for col := range c.soln {
		o := c.init.Original(col)
		if o >= c.init.BaseColumns() {
			continue
		}
		out[(o/lblk)*eblk+o%lblk] = c.soln[col]
	}
	if c.octA >= 0 {
		oa, ob := c.init.Original(c.octA), c.init.Original(c.octB)
		tet := oa / lblk
		qoff := layout.QuadOffset()
		ka, kb := oa%lblk-qoff, ob%lblk-qoff
		k := 3 - ka - kb
		base := tet * eblk
		out[base+c.enc.OctOffset()+k] = c.soln[c.octA]
		out[base+qoff+ka] = bigint.Int{}
		out[base+qoff+kb] = bigint.Int{}
	}
	bigint.DivByGCD(out)

	return out
}

// surfaceAt builds the normal surface of the last solution.
func (c *core[C, B]) surfaceAt() (*surface.NormalSurface, error) {
	if c.mode == modeTaut {
		return nil, ErrWrongMode
	}
	if c.soln == nil {
		return nil, ErrNoSolution
	}

	return surface.NewNormalSurface(c.tri, c.enc, c.vector())
}

// structureAt builds the angle structure of the last solution.
func (c *core[C, B]) structureAt() (*surface.AngleStructure, error) {
	if c.mode != modeTaut {
		return nil, ErrWrongMode
	}
	if c.soln == nil {
		return nil, ErrNoSolution
	}

	return surface.NewAngleStructure(c.tri, c.vector())
}
