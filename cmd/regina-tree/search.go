// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/regina/constraint"
	"github.com/katalvlaran/regina/surface"
	"github.com/katalvlaran/regina/treetraversal"
	"github.com/katalvlaran/regina/triangulation"
)

// solution is one reported surface or angle structure.
type solution struct {
	Types  string `yaml:"types"`
	Vector string `yaml:"vector"`
	Euler  string `yaml:"euler,omitempty"`
}

// result is the outcome of one job.
type result struct {
	RunID      string     `yaml:"run_id"`
	Name       string     `yaml:"name"`
	Signature  string     `yaml:"signature"`
	Mode       string     `yaml:"mode"`
	Coords     string     `yaml:"coords"`
	Constraint string     `yaml:"constraint"`
	Ban        string     `yaml:"ban"`
	Complete   bool       `yaml:"complete"`
	Nodes      int64      `yaml:"nodes"`
	Pivots     int64      `yaml:"pivots"`
	Solutions  []solution `yaml:"solutions"`
}

// runner executes a job on a decoded triangulation with fixed policies.
type runner func(ctx context.Context, tri *triangulation.Triangulation, j job, log logrus.FieldLogger) (*result, error)

// constraints maps constraint names to runners still waiting for a ban.
var constraints = map[string]func(ban string) runner{
	constraint.None{}.Name():          withBan[constraint.None],
	constraint.EulerPositive{}.Name(): withBan[constraint.EulerPositive],
	constraint.EulerZero{}.Name():     withBan[constraint.EulerZero],
}

var bans = map[string]struct{}{
	constraint.BanNone{}.Name():          {},
	constraint.BanBoundary{}.Name():      {},
	constraint.BanTorusBoundary{}.Name(): {},
}

func withBan[C constraint.LP](ban string) runner {
	switch ban {
	case constraint.BanBoundary{}.Name():
		return search[C, constraint.BanBoundary]
	case constraint.BanTorusBoundary{}.Name():
		return search[C, constraint.BanTorusBoundary]
	}

	return search[C, constraint.BanNone]
}

// execute decodes the signature of j and runs it.
func execute(ctx context.Context, j job, log logrus.FieldLogger) (*result, error) {
	if err := j.validate(); err != nil {
		return nil, err
	}
	tri, err := triangulation.FromIsoSig(j.Signature)
	if err != nil {
		return nil, err
	}
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	return constraints[j.Constraint](j.Ban)(ctx, tri, j, log)
}

func search[C constraint.LP, B constraint.Ban](ctx context.Context, tri *triangulation.Triangulation, j job, log logrus.FieldLogger) (*result, error) {
	c, err := surface.ParseCoords(j.Coords)
	if err != nil {
		return nil, err
	}
	enc, err := surface.NewEncoding(c)
	if err != nil {
		return nil, err
	}
	opts := []treetraversal.Option{treetraversal.WithTracer(treetraversal.LogTracer{Logger: log})}
	if j.TypeOrder == "treedecomp" {
		opts = append(opts, treetraversal.WithTreeDecompositionOrder())
	}
	res := &result{
		Name: j.Name, Signature: j.Signature, Mode: j.Mode, Coords: enc.String(),
		Constraint: j.Constraint, Ban: j.Ban,
	}

	switch j.Mode {
	case modeFind:
		s, err := treetraversal.NewSingleSoln[C, B](tri, enc, opts...)
		if err != nil {
			return nil, err
		}
		ok, err := s.Find(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			surf, err := s.BuildSurface()
			if err != nil {
				return nil, err
			}
			res.Solutions = append(res.Solutions, surfaceSolution(s.TypeString(), surf))
		}
		res.Complete = s.State() != treetraversal.Cancelled
		res.Nodes, res.Pivots = s.Nodes(), s.Pivots()

		return res, nil

	case modeTaut:
		e, err := treetraversal.NewTautEnumeration[C, B](tri, opts...)
		if err != nil {
			return nil, err
		}

		return collect(ctx, e, j, res, func(e *treetraversal.Enumeration[C, B]) (solution, error) {
			a, err := e.BuildStructure()
			if err != nil {
				return solution{}, err
			}

			return solution{Types: e.TypeString(), Vector: vectorText(a.Vector())}, nil
		})
	}

	e, err := treetraversal.NewEnumeration[C, B](tri, enc, opts...)
	if err != nil {
		return nil, err
	}

	return collect(ctx, e, j, res, func(e *treetraversal.Enumeration[C, B]) (solution, error) {
		surf, err := e.BuildSurface()
		if err != nil {
			return solution{}, err
		}

		return surfaceSolution(e.TypeString(), surf), nil
	})
}

// collect drains e into res, stopping early at j.Limit solutions.
func collect[C constraint.LP, B constraint.Ban](ctx context.Context, e *treetraversal.Enumeration[C, B], j job, res *result,
	build func(*treetraversal.Enumeration[C, B]) (solution, error)) (*result, error) {
	var failure error
	done := e.Run(ctx, func(e *treetraversal.Enumeration[C, B]) bool {
		s, err := build(e)
		if err != nil {
			failure = errors.Wrapf(err, "solution %d", e.Solutions())

			return false
		}
		res.Solutions = append(res.Solutions, s)

		return j.Limit <= 0 || len(res.Solutions) < j.Limit
	})
	if failure != nil {
		return nil, failure
	}
	res.Complete = done
	res.Nodes, res.Pivots = e.Nodes(), e.Pivots()

	return res, nil
}

func surfaceSolution(types string, s *surface.NormalSurface) solution {
	out := solution{Types: types, Vector: vectorText(s.Vector())}
	if chi, err := s.EulerChar(); err == nil {
		out.Euler = chi.String()
	}

	return out
}
