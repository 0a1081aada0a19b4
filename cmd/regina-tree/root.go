// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/regina"
)

var (
	errLogFormat = fmt.Errorf("regina-tree: unknown log format: %w", regina.ErrInvalidArgument)
	errOutput    = fmt.Errorf("regina-tree: unknown output format: %w", regina.ErrInvalidArgument)
)

// app holds the state shared by every command of one invocation.
type app struct {
	out     io.Writer
	log     *logrus.Logger
	metrics *metrics

	logLevel    string
	logFormat   string
	output      string
	metricsFile string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, log: logrus.New(), metrics: newMetrics()}
	a.log.SetOutput(errOut)

	cmd := &cobra.Command{
		Use:   "regina-tree",
		Short: "tree traversal for normal surfaces and angle structures",
		Long: `Enumerate vertex normal surfaces and taut angle structures, or look for
a single surface, on triangulations given by isomorphism signature.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.configure()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.metricsFile == "" {
				return nil
			}

			return a.metrics.write(a.metricsFile)
		},
	}

	cmd.SetGlobalNormalizationFunc(yamlFlagNames)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warning", "log level (debug|info|warning|error)")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format (text|json)")
	pf.StringVarP(&a.output, "output", "o", "text", "output format (text|yaml)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus run metrics to this file")

	cmd.AddCommand(
		newSearchCmd(a, modeEnumerate),
		newSearchCmd(a, modeTaut),
		newSearchCmd(a, modeFind),
		newInfoCmd(a),
		newMatrixCmd(a),
		newTDCmd(a),
		newBatchCmd(a),
	)

	return cmd
}

// yamlFlagNames accepts the run file spelling of a flag, so --type_order
// and --type-order name the same flag.
func yamlFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func (a *app) configure() error {
	lvl, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)
	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("%w: %q", errLogFormat, a.logFormat)
	}
	if a.output != "text" && a.output != "yaml" {
		return fmt.Errorf("%w: %q", errOutput, a.output)
	}

	return nil
}

// run executes one job under a fresh run id and records its metrics.
func (a *app) run(ctx context.Context, j job) (*result, error) {
	id := uuid.NewString()
	log := a.log.WithFields(logrus.Fields{"run_id": id, "job": j.Name})
	log.WithFields(logrus.Fields{
		"coords":     j.Coords,
		"constraint": j.Constraint,
		"ban":        j.Ban,
	}).Debug("run started")

	start := time.Now()
	res, err := execute(ctx, j, log)
	elapsed := time.Since(start)
	a.metrics.observe(j.Mode, res, elapsed)
	if err != nil {
		log.WithError(err).Error("run failed")

		return nil, err
	}
	res.RunID = id
	log.WithFields(logrus.Fields{
		"solutions": len(res.Solutions),
		"nodes":     res.Nodes,
		"complete":  res.Complete,
		"elapsed":   elapsed,
	}).Info("run finished")

	return res, nil
}
