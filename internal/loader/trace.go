package loader

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var loaderTracer = otel.Tracer("scalable-modern-datastack-architecture/internal/loader")
var loaderNoopSpan = trace.SpanFromContext(context.Background())

func startLoaderSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, loaderNoopSpan
	}
	return loaderTracer.Start(ctx, name)
}
