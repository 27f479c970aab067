// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is package-scoped like the rest of the pack's otel usage.
var tracer = otel.Tracer("github.com/sexprlang/sexp")

// InstallTracerProvider registers a sampling TracerProvider as the
// process-wide default so StartSpan produces recorded spans instead of
// no-ops. It installs no exporter; callers that need spans off-process
// are expected to wrap the returned provider's SpanProcessor slice
// themselves. Safe to call once at process startup.
func InstallTracerProvider() *sdktrace.TracerProvider {
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)
	return provider
}

// StartSpan starts a span named name as a child of ctx's span, if any.
// Callers must call the returned trace.Span's End method.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}
