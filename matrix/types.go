// SPDX-License-Identifier: MIT

// Package matrix: the Dense type.
package matrix

import "github.com/katalvlaran/regina/bigint"

// Dense is a row-major matrix of exact integers. Entry (i, j) lives at
// data[i*cols+j]. The zero value is an empty 0x0 matrix.
type Dense struct {
	rows int          // number of rows
	cols int          // number of columns
	data []bigint.Int // row-major entries
}

// Context tags used by matrixErrorf.
const (
	ctxNew    = "NewDense"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAdd    = "AddInt64"
	ctxRow    = "Row"
	ctxMulVec = "MulVec"
)
