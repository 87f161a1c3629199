package pgstore

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Not parallel: swaps the package tracer.
func TestSpans_AttributesAndErrorStatus(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	prev := tracer
	tracer = tp.Tracer("pgstore-test")
	defer func() { tracer = prev }()

	_, okSpan := startSpan(context.Background(), "pgstore.Get", "SELECT")
	okSpan.End()

	_, failed := startSpan(context.Background(), "pgstore.Put", "UPSERT")
	recordError(failed, errors.New("connection reset"))
	failed.End()

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}

	for i, want := range []struct {
		name, op string
		status   codes.Code
	}{
		{"pgstore.Get", "SELECT", codes.Unset},
		{"pgstore.Put", "UPSERT", codes.Error},
	} {
		s := spans[i]
		if s.Name != want.name {
			t.Errorf("span %d name = %q, want %q", i, s.Name, want.name)
		}
		attrs := make(map[string]any)
		for _, a := range s.Attributes {
			attrs[string(a.Key)] = a.Value.AsInterface()
		}
		if attrs["db.system"] != "postgresql" {
			t.Errorf("%s db.system = %v, want postgresql", s.Name, attrs["db.system"])
		}
		if attrs["db.operation.name"] != want.op {
			t.Errorf("%s db.operation.name = %v, want %s", s.Name, attrs["db.operation.name"], want.op)
		}
		if s.Status.Code != want.status {
			t.Errorf("%s status = %v, want %v", s.Name, s.Status.Code, want.status)
		}
	}

	if got := spans[1].Status.Description; got != "connection reset" {
		t.Errorf("status description = %q, want %q", got, "connection reset")
	}
	if len(spans[1].Events) == 0 || spans[1].Events[0].Name != "exception" {
		t.Error("recordError did not add an exception event")
	}
}
