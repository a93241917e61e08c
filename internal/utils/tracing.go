package utils

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-safekids"

// Attrs are loosely typed span attributes
type Attrs map[string]interface{}

func toAttributes(attrs Attrs) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		out = append(out, toAttribute(k, v))
	}
	return out
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Duration:
		return attribute.Int64(key, val.Milliseconds())
	case time.Time:
		return attribute.String(key, val.UTC().Format(time.RFC3339))
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprint(val))
	}
}

// TraceOperation starts a span and returns a func that stamps its duration
// and ends it
func TraceOperation(ctx context.Context, operationName string, attrs Attrs) (context.Context, trace.Span, func()) {
	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(toAttributes(attrs)...))
	return ctx, span, func() {
		AddTimingToSpan(span, start)
		span.End()
	}
}

// TraceDatabaseOperation traces one MongoDB command against collection
func TraceDatabaseOperation(ctx context.Context, operation, collection string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "db."+operation, Attrs{
		"db.system":     "mongodb",
		"db.operation":  operation,
		"db.collection": collection,
	})
}

// TraceEndpointStep traces a step of a request handler
func TraceEndpointStep(ctx context.Context, stepName string, attrs Attrs) (context.Context, trace.Span) {
	all := Attrs{"step.name": stepName}
	for k, v := range attrs {
		all[k] = v
	}
	return otel.Tracer(tracerName).Start(ctx, "endpoint.step."+stepName, trace.WithAttributes(toAttributes(all)...))
}

// TraceInputParsing traces request binding
func TraceInputParsing(ctx context.Context, inputType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "parse_input", Attrs{"input.type": inputType})
}

// TraceCacheGet traces a cache read
func TraceCacheGet(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "cache_get", Attrs{"cache.key": cacheKey, "cache.system": "redis"})
}

// TraceCacheInvalidation traces a cache delete
func TraceCacheInvalidation(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "cache_invalidation", Attrs{"cache.key": cacheKey, "cache.system": "redis"})
}

// TraceBusinessLogic traces a service-level rule such as an attendance
// transition
func TraceBusinessLogic(ctx context.Context, logicType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "business_logic", Attrs{"logic.type": logicType})
}

// TraceResponseSerialization traces writing the response body
func TraceResponseSerialization(ctx context.Context, responseType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "serialize_response", Attrs{"response.type": responseType})
}

// AddTimingToSpan records the time elapsed since startTime
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records err, marks the span failed and attaches attrs
func RecordErrorInSpan(span trace.Span, err error, attrs Attrs) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(toAttributes(attrs)...)
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}
