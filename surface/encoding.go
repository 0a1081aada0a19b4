// SPDX-License-Identifier: MIT

package surface

import "strings"

// Coords names a coordinate system.
type Coords int

// Supported coordinate systems.
const (
	Standard Coords = iota
	Quad
	AlmostNormal
	QuadOct
	Angle
)

var coordNames = map[Coords]string{
	Standard:     "standard",
	Quad:         "quad",
	AlmostNormal: "an",
	QuadOct:      "quadoct",
	Angle:        "angle",
}

// String returns the short name used by the command line and text output.
func (c Coords) String() string {
	if s, ok := coordNames[c]; ok {
		return s
	}

	return "invalid"
}

// ParseCoords accepts the short names and a few long aliases.
func ParseCoords(s string) (Coords, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "std", "tri-quad":
		return Standard, nil
	case "quad", "q":
		return Quad, nil
	case "an", "almost-normal", "standard-an":
		return AlmostNormal, nil
	case "quadoct", "quad-oct":
		return QuadOct, nil
	case "angle", "angles":
		return Angle, nil
	}

	return 0, ErrUnknownCoords
}

// Encoding is an immutable description of how a vector stores one object.
// The zero value is the standard encoding.
type Encoding struct {
	coords Coords
}

// NewEncoding returns the encoding for c.
func NewEncoding(c Coords) (Encoding, error) {
	if _, ok := coordNames[c]; !ok {
		return Encoding{}, ErrUnknownCoords
	}

	return Encoding{coords: c}, nil
}

// MustEncoding is NewEncoding for known-good constants.
func MustEncoding(c Coords) Encoding {
	e, err := NewEncoding(c)
	if err != nil {
		panic(err)
	}

	return e
}

// Coords returns the coordinate system.
func (e Encoding) Coords() Coords { return e.coords }

// StoresTriangles reports whether triangle coordinates are present.
func (e Encoding) StoresTriangles() bool { return e.coords == Standard || e.coords == AlmostNormal }

// StoresOctagons reports whether octagon coordinates are present.
func (e Encoding) StoresOctagons() bool { return e.coords == AlmostNormal || e.coords == QuadOct }

// StoresAngles reports whether the encoding describes angle structures.
func (e Encoding) StoresAngles() bool { return e.coords == Angle }

// Valid reports whether e names a known system.
func (e Encoding) Valid() bool {
	_, ok := coordNames[e.coords]

	return ok
}

// BlockSize returns the number of columns per tetrahedron.
func (e Encoding) BlockSize() int {
	switch e.coords {
	case Standard:
		return 7
	case AlmostNormal:
		return 10
	case QuadOct:
		return 6
	}

	return 3
}

// Columns returns the vector length for a triangulation of size n,
// including the scale column of angle structures.
func (e Encoding) Columns(n int) int {
	if e.StoresAngles() {
		return 3*n + 1
	}

	return e.BlockSize() * n
}

// QuadOffset returns the offset of q0 inside a block.
func (e Encoding) QuadOffset() int {
	if e.StoresTriangles() {
		return 4
	}

	return 0
}

// OctOffset returns the offset of o0 inside a block, or -1.
func (e Encoding) OctOffset() int {
	if !e.StoresOctagons() {
		return -1
	}

	return e.QuadOffset() + 3
}

// String returns the coordinate system name.
func (e Encoding) String() string { return e.coords.String() }

// WithoutOctagons returns the encoding with octagon columns dropped:
// AlmostNormal becomes Standard and QuadOct becomes Quad. Octagons are
// modelled in a tableau by merging two quadrilateral columns.
func (e Encoding) WithoutOctagons() Encoding {
	switch e.coords {
	case AlmostNormal:
		return Encoding{coords: Standard}
	case QuadOct:
		return Encoding{coords: Quad}
	}

	return e
}
