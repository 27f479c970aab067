// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistersAgainstGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	if n := testutil.CollectAndCount(reg); n != 5 {
		t.Fatalf("got %d collectors registered, want 5", n)
	}

	m.ParsesTotal.Inc()
	m.ParsesTotal.Inc()
	if got := testutil.ToFloat64(m.ParsesTotal); got != 2 {
		t.Fatalf("ParsesTotal = %v, want 2", got)
	}

	m.ParseErrorsTotal.Inc()
	if got := testutil.ToFloat64(m.ParseErrorsTotal); got != 1 {
		t.Fatalf("ParseErrorsTotal = %v, want 1", got)
	}

	m.NodesAllocated.Add(3)
	if got := testutil.ToFloat64(m.NodesAllocated); got != 3 {
		t.Fatalf("NodesAllocated = %v, want 3", got)
	}

	m.InternedStrings.Set(7)
	if got := testutil.ToFloat64(m.InternedStrings); got != 7 {
		t.Fatalf("InternedStrings = %v, want 7", got)
	}

	m.SerializedBytes.Add(42)
	if got := testutil.ToFloat64(m.SerializedBytes); got != 42 {
		t.Fatalf("SerializedBytes = %v, want 42", got)
	}
}

func TestDefaultIsASingleton(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Fatalf("Default() returned distinct instances across calls")
	}
}
