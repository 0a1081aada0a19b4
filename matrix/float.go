// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Float returns a float64 approximation of m as a gonum matrix, for
// numeric inspection and printing. It returns nil for a matrix with a zero
// dimension, which gonum cannot represent.
func (m *Dense) Float() *mat.Dense {
	if m == nil || m.rows == 0 || m.cols == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Float64()
	}

	return mat.NewDense(m.rows, m.cols, data)
}
