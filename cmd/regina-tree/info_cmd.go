// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regina/bigint"
	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/matrix"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/tableau"
	"github.com/katalvlaran/regina/treedecomp"
	"github.com/katalvlaran/regina/triangulation"
)

// lpByName resolves the constraint flag of commands that need a value
// rather than a type.
var lpByName = map[string]constraint.LP{
	constraint.None{}.Name():          constraint.None{},
	constraint.EulerPositive{}.Name(): constraint.EulerPositive{},
	constraint.EulerZero{}.Name():     constraint.EulerZero{},
}

type triInfo struct {
	Signature      string `yaml:"signature"`
	Size           int    `yaml:"size"`
	Vertices       int    `yaml:"vertices"`
	Edges          int    `yaml:"edges"`
	Components     int    `yaml:"components"`
	Valid          bool   `yaml:"valid"`
	Orientable     bool   `yaml:"orientable"`
	Closed         bool   `yaml:"closed"`
	Ideal          bool   `yaml:"ideal"`
	BoundaryFacets int    `yaml:"boundary_facets"`
	EulerChar      int    `yaml:"euler_char"`
	H1             string `yaml:"h1"`
	Treewidth      int    `yaml:"treewidth_bound"`
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <isosig>",
		Short: "describe a triangulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tri, err := triangulation.FromIsoSig(args[0])
			if err != nil {
				return err
			}
			td := treedecomp.FromFacetPairing(tri.FacetPairing(), treedecomp.WithCompress(true))
			info := triInfo{
				Signature:      args[0],
				Size:           tri.Size(),
				Vertices:       tri.CountVertices(),
				Edges:          tri.CountEdges(),
				Components:     len(tri.Components()),
				Valid:          tri.IsValid(),
				Orientable:     tri.IsOrientable(),
				Closed:         tri.IsClosed(),
				Ideal:          tri.IsIdeal(),
				BoundaryFacets: tri.CountBoundaryFacets(),
				EulerChar:      tri.EulerCharManifold(),
				H1:             tri.HomologyH1().String(),
				Treewidth:      td.Width(),
			}

			return a.emit(info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, `signature:       %s
tetrahedra:      %d
vertices:        %d
edges:           %d
components:      %d
valid:           %t
orientable:      %t
closed:          %t
ideal:           %t
boundary facets: %d
euler char:      %d
H1:              %s
treewidth:       <= %d
`, info.Signature, info.Size, info.Vertices, info.Edges, info.Components, info.Valid,
					info.Orientable, info.Closed, info.Ideal, info.BoundaryFacets, info.EulerChar,
					info.H1, info.Treewidth)

				return err
			})
		},
	}
}

type matrixInfo struct {
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Rank    int        `yaml:"rank"`
	Columns []string   `yaml:"columns"`
	Entries [][]string `yaml:"entries"`
	Check   *checkInfo `yaml:"check,omitempty"`
}

// checkInfo reports how well a vector satisfies the matching (or angle)
// equations of its encoding.
type checkInfo struct {
	Vector   string  `yaml:"vector"`
	Residual float64 `yaml:"residual"`
	Exact    bool    `yaml:"exact"`
}

// checkVector evaluates text, a vector in the encoding's own coordinate
// order, against the equations of enc on tri.
func checkVector(tri *triangulation.Triangulation, enc surface.Encoding, text string) (*checkInfo, error) {
	fields := strings.Fields(text)
	x := make([]bigint.Int, len(fields))
	for i, f := range fields {
		v, err := bigint.Parse(f)
		if err != nil {
			return nil, errors.Wrapf(err, "--check entry %d", i)
		}
		x[i].Set(v)
	}

	var eqns *matrix.Dense
	if enc.StoresAngles() {
		eqns = surface.AngleEquations(tri)
	} else {
		var err error
		if eqns, err = surface.MatchingEquations(tri, enc); err != nil {
			return nil, err
		}
	}
	if len(x) != eqns.Cols() {
		return nil, errors.Wrapf(errCheckLength, "got %d, want %d", len(x), eqns.Cols())
	}
	y, err := eqns.MulVec(x)
	if err != nil {
		return nil, err
	}
	exact := true
	for i := range y {
		exact = exact && y[i].IsZero()
	}

	return &checkInfo{Vector: vectorText(x), Residual: surface.Residual(eqns, x), Exact: exact}, nil
}

func newMatrixCmd(a *app) *cobra.Command {
	var coords, lpName, check string
	var optimise bool
	cmd := &cobra.Command{
		Use:   "matrix <isosig>",
		Short: "print the starting tableau of a traversal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tri, err := triangulation.FromIsoSig(args[0])
			if err != nil {
				return err
			}
			c, err := surface.ParseCoords(coords)
			if err != nil {
				return err
			}
			lp, ok := lpByName[lpName]
			if !ok {
				return errors.Wrapf(errUnknownConstraint, "%q", lpName)
			}
			sys, err := tableau.NewInitial(tri, surface.MustEncoding(c), lp, tableau.WithOptimise(optimise))
			if err != nil {
				return err
			}

			info := matrixInfo{Rows: sys.Rows(), Cols: sys.Columns(), Rank: sys.Rank()}
			for col := 0; col < sys.Columns(); col++ {
				info.Columns = append(info.Columns, columnLabel(sys, col))
			}
			for r := 0; r < sys.Rows(); r++ {
				row := make([]string, sys.Columns())
				for col := range row {
					v := sys.Entry(r, col)
					row[col] = v.String()
				}
				info.Entries = append(info.Entries, row)
			}
			if check != "" {
				if info.Check, err = checkVector(tri, surface.MustEncoding(c), check); err != nil {
					return err
				}
			}

			return a.emit(info, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%d x %d, rank %d\ncolumns: %v\n", info.Rows, info.Cols, info.Rank, info.Columns); err != nil {
					return err
				}
				d := sys.Dense()
				if d == nil {
					_, err := fmt.Fprintln(w, "(empty)")

					return err
				}
				if _, err := fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze())); err != nil {
					return err
				}
				if info.Check == nil {
					return nil
				}
				_, err := fmt.Fprintf(w, "check %s: residual %g, exact %t\n", info.Check.Vector, info.Check.Residual, info.Check.Exact)

				return err
			})
		},
	}
	cmd.Flags().StringVar(&coords, "coords", "quad", "coordinates (standard|quad|an|quadoct|angle)")
	cmd.Flags().StringVar(&lpName, "constraint", "none", "linear constraint (none|euler-positive|euler-zero)")
	cmd.Flags().BoolVar(&optimise, "optimise", true, "order blocks by a breadth-first walk of the facet pairing")
	cmd.Flags().StringVar(&check, "check", "", `evaluate the equations on a vector given in encoding order, e.g. "2 0 0 0 0 1"`)

	return cmd
}

// columnLabel names a tableau column: t3.T0 for a triangle, t3.Q1 for a
// quadrilateral, t3.A1 for an angle, x0 for a policy column.
func columnLabel(sys *tableau.Initial, col int) string {
	c := sys.ColumnCoord(col)
	switch {
	case c.Scale:
		return "scale"
	case c.Extra >= 0:
		return fmt.Sprintf("x%d", c.Extra)
	case sys.Encoding().StoresAngles():
		return fmt.Sprintf("t%d.A%d", c.Tet, c.Local)
	case c.Local < sys.Layout().QuadOffset():
		return fmt.Sprintf("t%d.T%d", c.Tet, c.Local)
	}

	return fmt.Sprintf("t%d.Q%d", c.Tet, c.Local-sys.Layout().QuadOffset())
}

type tdInfo struct {
	Bags  int    `yaml:"bags"`
	Width int    `yaml:"width"`
	Nice  bool   `yaml:"nice"`
	PACE  string `yaml:"pace"`
}

func newTDCmd(a *app) *cobra.Command {
	var (
		pace, sig      string
		nice, compress bool
	)
	cmd := &cobra.Command{
		Use:   "td",
		Short: "build or read a tree decomposition and write it in PACE format",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var td *treedecomp.TreeDecomposition
			switch {
			case pace != "" && sig != "":
				return errors.New("td: give either --pace or --sig")
			case pace != "":
				f, err := os.Open(pace)
				if err != nil {
					return errors.Wrapf(err, "open %s", pace)
				}
				defer f.Close()
				if td, err = treedecomp.ReadPACE(f); err != nil {
					return errors.Wrapf(err, "read %s", pace)
				}
			case sig != "":
				tri, err := triangulation.FromIsoSig(sig)
				if err != nil {
					return err
				}
				g := tri.FacetPairing().Graph()
				td = treedecomp.FromGraph(g)
				if err = td.Validate(g); err != nil {
					return err
				}
			default:
				return errors.New("td: one of --pace or --sig is required")
			}
			if compress {
				td.Compress()
			}
			if nice {
				td.MakeNice()
			}

			info := tdInfo{Bags: td.Size(), Width: td.Width(), Nice: td.IsNice(), PACE: td.PACE()}

			return a.emit(info, func(w io.Writer) error { return td.WritePACE(w) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&pace, "pace", "", "read a PACE 2016 .td file")
	f.StringVar(&sig, "sig", "", "decompose the facet-pairing graph of this isomorphism signature")
	f.BoolVar(&compress, "compress", false, "merge nested neighbouring bags")
	f.BoolVar(&nice, "nice", false, "convert to a nice tree decomposition")

	return cmd
}
