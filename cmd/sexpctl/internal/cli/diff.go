// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp"
)

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Canonicalize two files and diff their serialized forms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := canonicalize(args[0])
			if err != nil {
				return err
			}
			right, err := canonicalize(args[1])
			if err != nil {
				return err
			}

			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(left, right, false)
			fmt.Println(dmp.DiffPrettyText(diffs))
			return nil
		},
	}
}

func canonicalize(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	doc, err := sexp.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	defer doc.Free()
	return doc.String(), nil
}
