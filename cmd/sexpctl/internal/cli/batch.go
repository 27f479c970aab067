// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sexprlang/sexp"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>...",
		Short: "Canonicalize many files concurrently, reporting the first failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]string, len(args))

			var g errgroup.Group
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					doc, err := sexp.Parse(data)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					defer doc.Free()
					results[i] = doc.String()
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			for i, path := range args {
				fmt.Printf("%s:\n%s\n", path, results[i])
			}
			return nil
		},
	}
}
