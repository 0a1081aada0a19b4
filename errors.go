// SPDX-License-Identifier: MIT

package regina

import "errors"

// Error kinds. Every error returned by a public API in this module matches
// exactly one of these through errors.Is; subpackages declare more precise
// sentinels that wrap them.
var (
	// ErrInvalidArgument reports bad construction inputs: malformed
	// signatures or PACE text, unsupported encodings, rejected policies.
	ErrInvalidArgument = errors.New("regina: invalid argument")

	// ErrFailedPrecondition reports a request that does not apply in the
	// current mode, e.g. reconstructing a surface from an angle search.
	ErrFailedPrecondition = errors.New("regina: failed precondition")

	// ErrDomain reports arithmetic misuse, e.g. division by zero or an
	// undefined operation involving infinity.
	ErrDomain = errors.New("regina: domain error")
)
