// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp"
)

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Parse a file and print its canonical serialized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := sexp.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			defer doc.Free()

			fmt.Println(doc.String())
			return nil
		},
	}
}
