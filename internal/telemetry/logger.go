// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package telemetry wires the ambient observability stack — structured
// logging, metrics, and tracing — around the core parse/mutate/
// serialize operations. None of it is load-bearing for sexp's
// correctness; package sexp and cmd/sexpctl are the only callers.
package telemetry

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.Entry pre-populated with a document_id field so
// every log line from one parse/mutate/serialize call can be
// correlated without the caller threading an id through every call.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger builds a Logger at the given level, tagged with a fresh
// document id.
func NewLogger(level logrus.Level) *Logger {
	base := logrus.New()
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Logger{entry: base.WithField("document_id", uuid.NewString())}
}

// WithField returns a copy of l with an additional structured field.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
