// Package bigint provides exact signed integers for the tableau engine.
//
// Int stores any value that fits in a native int64 inline and falls back to
// a multi-limb math/big magnitude only when an operation would overflow.
// Results are demoted back to the inline form whenever they fit again, so
// the common case of small tableau entries never touches the heap.
//
// LargeInt extends Int with a distinguished element "infinity", which sits
// at the positive end of the number line: it compares greater than every
// finite value, is absorbing under addition and under multiplication by a
// nonzero finite value, and equals its own negation. Arithmetic that has no
// meaning with infinity (infinity times zero, division involving infinity)
// fails with ErrDomain.
//
// Key properties:
//
//   - The zero value of Int and of LargeInt is the finite integer 0.
//   - Values may be copied by assignment: a multi-limb magnitude is never
//     mutated after it has been stored in an Int.
//   - Overflow never surfaces to the caller.
//   - Equality is semantic and independent of the representation in use.
//
// Complexity:
//
//   - Inline operations are O(1) with no allocation.
//   - Multi-limb operations follow math/big and allocate one result.
//
// Errors:
//
//   - ErrDivideByZero  (wraps regina.ErrDomain) on division or modulo by zero.
//   - ErrInfinity      (wraps regina.ErrDomain) on undefined infinite arithmetic.
//   - ErrParse         (wraps regina.ErrInvalidArgument) on ill-formed text.
package bigint
