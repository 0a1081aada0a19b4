// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"

	"github.com/katalvlaran/regina"
)

// ErrUnsupported indicates an encoding that the constraint or ban policy
// cannot work with.
var ErrUnsupported = fmt.Errorf("tableau: encoding not supported by policy: %w", regina.ErrInvalidArgument)

// fail panics with a tableau-prefixed message. It marks programmer errors
// inside the pivot loop, which are fatal by contract.
func fail(msg string) {
	panic("tableau: " + msg)
}
