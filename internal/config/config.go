// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package config loads cmd/sexpctl's runtime configuration: cache
// sizing, snapshot storage location, the metrics listener address,
// and log level. Flags take precedence over an optional sexpctl.yaml
// in the working directory or $HOME/.sexpctl, which takes precedence over the
// package's defaults.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the fully-resolved configuration for one cmd/sexpctl
// invocation.
type Config struct {
	LogLevel        string
	SnapshotDir     string
	CacheSize       int
	MetricsAddr     string
	WatchDebounceMS int
}

const (
	keyLogLevel        = "log-level"
	keySnapshotDir     = "snapshot-dir"
	keyCacheSize       = "cache-size"
	keyMetricsAddr     = "metrics-addr"
	keyWatchDebounceMS = "watch-debounce-ms"
)

// BindFlags registers every configuration flag onto fs. Call this
// once per cobra command that needs configuration, then Load after
// flag parsing.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(keySnapshotDir, "", "directory for badger-backed tree snapshots (default: $HOME/.sexpctl/snapshots)")
	fs.Int(keyCacheSize, 256, "number of fingerprinted trees to keep in the in-memory snapshot cache")
	fs.String(keyMetricsAddr, "127.0.0.1:9464", "listen address for serve-metrics")
	fs.Int(keyWatchDebounceMS, 200, "milliseconds to debounce consecutive fsnotify events for the same file")
}

// Load resolves a Config from bound flags, an optional sexpctl.yaml,
// and environment variables prefixed SEXPCTL_.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigName("sexpctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.sexpctl")
	v.SetEnvPrefix("SEXPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	return &Config{
		LogLevel:        v.GetString(keyLogLevel),
		SnapshotDir:     v.GetString(keySnapshotDir),
		CacheSize:       v.GetInt(keyCacheSize),
		MetricsAddr:     v.GetString(keyMetricsAddr),
		WatchDebounceMS: v.GetInt(keyWatchDebounceMS),
	}, nil
}
