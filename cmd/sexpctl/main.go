// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Command sexpctl is a small CLI around the sexp library: formatting,
// diffing, stats, a file watcher, a REPL, and snapshot persistence.
package main

import (
	"context"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/sexprlang/sexp/cmd/sexpctl/internal/cli"
	"github.com/sexprlang/sexp/internal/telemetry"
)

func main() {
	provider := telemetry.InstallTracerProvider()
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
