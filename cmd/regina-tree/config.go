// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/regina"
)

// Search modes.
const (
	modeEnumerate = "enumerate"
	modeTaut      = "taut"
	modeFind      = "find"
)

var (
	errUnknownMode       = fmt.Errorf("regina-tree: unknown mode: %w", regina.ErrInvalidArgument)
	errUnknownConstraint = fmt.Errorf("regina-tree: unknown constraint: %w", regina.ErrInvalidArgument)
	errUnknownBan        = fmt.Errorf("regina-tree: unknown ban: %w", regina.ErrInvalidArgument)
	errNoJobs            = fmt.Errorf("regina-tree: run file lists no jobs: %w", regina.ErrInvalidArgument)
	errCheckLength       = fmt.Errorf("regina-tree: --check vector has the wrong length: %w", regina.ErrInvalidArgument)
	errConcurrency       = fmt.Errorf("regina-tree: concurrent jobs must be at least 1: %w", regina.ErrInvalidArgument)
)

// job is one search request.
type job struct {
	Name       string        `yaml:"name,omitempty"`
	Signature  string        `yaml:"signature"`
	Mode       string        `yaml:"mode"`
	Coords     string        `yaml:"coords,omitempty"`
	Constraint string        `yaml:"constraint,omitempty"`
	Ban        string        `yaml:"ban,omitempty"`
	TypeOrder  string        `yaml:"type_order,omitempty"` // "", "treedecomp"
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	Limit      int           `yaml:"limit,omitempty"` // stop after this many solutions
}

// runFile is the YAML batch description.
type runFile struct {
	Jobs        int    `yaml:"jobs,omitempty"` // concurrent jobs
	MetricsFile string `yaml:"metrics_file,omitempty"`
	Output      string `yaml:"output,omitempty"`
	Runs        []job  `yaml:"runs"`
}

// withDefaults fills the blanks of j the way the single-run commands do.
func (j job) withDefaults() job {
	if j.Mode == "" {
		j.Mode = modeEnumerate
	}
	if j.Coords == "" {
		switch j.Mode {
		case modeTaut:
			j.Coords = "angle"
		case modeFind:
			j.Coords = "standard"
		default:
			j.Coords = "quad"
		}
	}
	if j.Constraint == "" {
		j.Constraint = "none"
	}
	if j.Ban == "" {
		j.Ban = "none"
	}
	if j.Name == "" {
		j.Name = j.Mode + ":" + j.Signature
	}

	return j
}

func (j job) validate() error {
	switch j.Mode {
	case modeEnumerate, modeTaut, modeFind:
	default:
		return errors.Wrapf(errUnknownMode, "%q", j.Mode)
	}
	if _, ok := constraints[j.Constraint]; !ok {
		return errors.Wrapf(errUnknownConstraint, "%q", j.Constraint)
	}
	if _, ok := bans[j.Ban]; !ok {
		return errors.Wrapf(errUnknownBan, "%q", j.Ban)
	}

	return nil
}

// loadRunFile reads and checks a batch description.
func loadRunFile(path string) (*runFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read run file %s", path)
	}
	var rf runFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, errors.Wrapf(err, "parse run file %s", path)
	}
	if len(rf.Runs) == 0 {
		return nil, errors.Wrapf(errNoJobs, "%s", path)
	}
	for i := range rf.Runs {
		rf.Runs[i] = rf.Runs[i].withDefaults()
		if err := rf.Runs[i].validate(); err != nil {
			return nil, errors.Wrapf(err, "%s: run %d", path, i+1)
		}
	}

	return &rf, nil
}
