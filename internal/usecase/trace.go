package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

var usecaseTracer = otel.Tracer("fifa-results/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a child span under an already traced request.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func scopeAttributes(scope match.Scope) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("fifa.scope", scope.String())}
	if scope.ID != "" {
		attrs = append(attrs, attribute.String("fifa.scope_id", scope.ID))
	}
	return attrs
}
