// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print node and intern-pool counts for a file",
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

			t := doc.Tree()
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"metric", "value"})
			table.Append([]string{"top-level forms", strconv.Itoa(len(t.Roots()))})
			table.Append([]string{"total nodes", strconv.FormatUint(uint64(t.Count()), 10)})
			table.Append([]string{"interned strings", strconv.Itoa(t.Pool().Len())})
			table.Render()
			return nil
		},
	}
}
