// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	digest "github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp"
	"github.com/sexprlang/sexp/internal/snapshot"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and load canonicalized documents from a badger-backed store",
	}
	cmd.AddCommand(snapshotSaveCmd(), snapshotLoadCmd())
	return cmd
}

func openStore(cmd *cobra.Command) (*snapshot.Store, func(), error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.SnapshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		dir = filepath.Join(home, ".sexpctl", "snapshots")
	}

	store, err := snapshot.OpenStore(dir, time.Hour)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(ctx)
	}
	return store, closeFn, nil
}

func snapshotSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Parse, canonicalize, and save a document, printing its digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := sexp.Parse(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			defer doc.Free()

			d, err := store.Save([]byte(doc.String()))
			if err != nil {
				return err
			}
			fmt.Println(d.String())
			return nil
		},
	}
}

func snapshotLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <digest>",
		Short: "Load and print a previously saved document by digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			d, err := digest.Parse(args[0])
			if err != nil {
				return err
			}

			data, err := store.Load(d)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
