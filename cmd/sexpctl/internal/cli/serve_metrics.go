// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp/internal/telemetry"
)

func serveMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve-metrics",
		Short: "Serve Prometheus metrics for parsing, node allocation, serialization and the intern pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Forces registration against prometheus.DefaultRegisterer
			// if no package sexp call has already done so; serves the
			// same counters package sexp updates on every Parse, node
			// allocation and serialize, rather than a disconnected
			// private registry that would forever read zero.
			telemetry.Default()

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())

			logger.Infof("serving metrics on %s", cfg.MetricsAddr)
			return http.ListenAndServe(cfg.MetricsAddr, mux)
		},
	}
}
