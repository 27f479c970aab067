// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/sexprlang/sexp"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Reformat a file to stdout every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(args[0]); err != nil {
				return err
			}

			interval := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
			limiter := rate.NewLimiter(rate.Every(interval), 1)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					if !limiter.Allow() {
						continue
					}
					if err := reformat(args[0]); err != nil {
						logger.Errorf("reformat %s: %v", args[0], err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Errorf("watch: %v", err)
				}
			}
		},
	}
}

func reformat(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := sexp.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer doc.Free()
	fmt.Println(doc.String())
	return nil
}
