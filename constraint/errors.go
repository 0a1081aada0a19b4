// SPDX-License-Identifier: MIT

package constraint

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

var (
	// ErrUnsupportedEncoding indicates a policy that cannot work in the
	// requested coordinate system.
	ErrUnsupportedEncoding = fmt.Errorf("constraint: encoding not supported by policy: %w", regina.ErrInvalidArgument)

	// ErrIdealTriangulation indicates an Euler policy applied to a
	// triangulation with ideal vertices.
	ErrIdealTriangulation = fmt.Errorf("constraint: triangulation has ideal vertices: %w", regina.ErrInvalidArgument)
)
