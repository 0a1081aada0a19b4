// SPDX-License-Identifier: MIT

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var searchShort = map[string]string{
	modeEnumerate: "enumerate vertex normal surfaces",
	modeTaut:      "enumerate taut angle structures",
	modeFind:      "find one surface with a zero triangle coordinate",
}

func newSearchCmd(a *app, mode string) *cobra.Command {
	var j job
	cmd := &cobra.Command{
		Use:   mode + " <isosig>",
		Short: searchShort[mode],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := j
			run.Signature, run.Mode = args[0], mode
			res, err := a.run(cmd.Context(), run.withDefaults())
			if err != nil {
				return err
			}

			return a.writeResults([]*result{res})
		},
	}

	f := cmd.Flags()
	switch mode {
	case modeEnumerate:
		f.StringVar(&j.Coords, "coords", "quad", "coordinates (standard|quad|an|quadoct)")
		f.StringVar(&j.Constraint, "constraint", "none", "linear constraint (none|euler-positive|euler-zero)")
	case modeFind:
		f.StringVar(&j.Coords, "coords", "standard", "coordinates (standard|an)")
		f.StringVar(&j.Constraint, "constraint", "euler-positive", "linear constraint (none|euler-positive|euler-zero)")
	}
	if mode != modeTaut {
		f.StringVar(&j.Ban, "ban", "none", "banned discs (none|boundary|torus-boundary)")
	}
	if mode != modeFind {
		f.IntVar(&j.Limit, "limit", 0, "stop after this many solutions (0 for all)")
	}
	f.StringVar(&j.TypeOrder, "type-order", "", `order of type decisions ("" or "treedecomp")`)
	f.DurationVar(&j.Timeout, "timeout", 0, "cancel the search after this long")

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		config string
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "run the searches listed in a YAML run file",
		Long: `Run the searches listed in a YAML run file concurrently. Each search runs
on its own goroutine; --jobs bounds how many run at once. Flags override
the run file's jobs, output and metrics_file settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rf, err := loadRunFile(config)
			if err != nil {
				return err
			}
			if !cmd.Flag("jobs").Changed && rf.Jobs != 0 {
				jobs = rf.Jobs
			}
			if jobs < 1 {
				return errors.Wrapf(errConcurrency, "--jobs %d", jobs)
			}
			if !cmd.Flag("output").Changed && rf.Output != "" {
				a.output = rf.Output
				if err := a.configure(); err != nil {
					return err
				}
			}
			if !cmd.Flag("metrics-file").Changed && rf.MetricsFile != "" {
				a.metricsFile = rf.MetricsFile
			}

			results := make([]*result, len(rf.Runs))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, j := range rf.Runs {
				i, j := i, j
				g.Go(func() error {
					res, err := a.run(ctx, j)
					if err != nil {
						return errors.Wrapf(err, "run %s", j.Name)
					}
					results[i] = res

					return nil
				})
			}
			runErr := g.Wait()
			if err := a.writeResults(results); err != nil {
				return err
			}

			return runErr
		},
	}
	cmd.Flags().StringVar(&config, "config", "", "YAML run file")
	cmd.Flags().IntVar(&jobs, "jobs", 1, "maximum concurrent searches")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
