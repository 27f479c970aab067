// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of process counters cmd/sexpctl serve-metrics
// exposes. Constructed once per registry; tests use NewMetrics with a
// private registry to avoid colliding with the default one.
type Metrics struct {
	ParsesTotal      prometheus.Counter
	ParseErrorsTotal prometheus.Counter
	NodesAllocated   prometheus.Counter
	InternedStrings  prometheus.Gauge
	SerializedBytes  prometheus.Counter
}

// NewMetrics registers every counter/gauge against reg and returns the
// bundle. Pass prometheus.DefaultRegisterer for process-wide metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParsesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sexp",
			Name:      "parses_total",
			Help:      "Number of Parse calls completed, successful or not.",
		}),
		ParseErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sexp",
			Name:      "parse_errors_total",
			Help:      "Number of Parse calls that returned ErrMalformedInput.",
		}),
		NodesAllocated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sexp",
			Name:      "nodes_allocated_total",
			Help:      "Number of tree nodes allocated across all trees.",
		}),
		InternedStrings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "sexp",
			Name:      "interned_strings",
			Help:      "Current number of distinct strings in the process-wide intern pool.",
		}),
		SerializedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sexp",
			Name:      "serialized_bytes_total",
			Help:      "Total bytes produced by Serialize/SerializeSubtree calls.",
		}),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide Metrics instance, registering it
// against prometheus.DefaultRegisterer on first use. Package sexp
// calls into this from Parse, Document.NewAtom/NewList, Document.String
// and Handle.String so the counters reflect real activity instead of
// sitting at zero; cmd/sexpctl's serve-metrics command scrapes the
// same default registry via promhttp.Handler rather than building its
// own.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}
