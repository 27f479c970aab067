// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cli assembles the sexpctl cobra command tree.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp/internal/config"
	"github.com/sexprlang/sexp/internal/telemetry"
)

// Root builds the top-level sexpctl command with every subcommand
// attached.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "sexpctl",
		Short: "Inspect, format, and manipulate S-expression documents",
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		fmtCmd(),
		diffCmd(),
		statsCmd(),
		watchCmd(),
		replCmd(),
		snapshotCmd(),
		batchCmd(),
		serveMetricsCmd(),
	)
	return root
}

// loadConfig resolves configuration from cmd's flags and builds a
// Logger at the configured level. The watch, serve-metrics and
// snapshot subcommands call this at the start of their RunE.
func loadConfig(cmd *cobra.Command) (*config.Config, *telemetry.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	return cfg, telemetry.NewLogger(level), nil
}
