package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatal("health probe request logs must be skipped")
	}
	if shouldSkipUptraceLog("http request", []any{"method", "GET", "path", "/v1/teams"}) {
		t.Fatal("regular request logs must not be skipped")
	}
	if shouldSkipUptraceLog("team sync failed", []any{"path", "/healthz"}) {
		t.Fatal("non-request logs must not be skipped")
	}
}

func TestToOTelLogAttributes(t *testing.T) {
	attrs := toOTelLogAttributes([]any{
		"team_id", "team-1",
		"count", 3,
		"error", errors.New("boom"),
		"took", 150 * time.Millisecond,
	})

	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "team_id" || attrs[0].Value.AsString() != "team-1" {
		t.Fatalf("unexpected first attribute: %+v", attrs[0])
	}
	if attrs[1].Value.Kind() != otellog.KindInt64 {
		t.Fatalf("expected int attribute, got %v", attrs[1].Value.Kind())
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("errors must render their message, got %q", attrs[2].Value.AsString())
	}
	if attrs[3].Value.AsString() != "150ms" {
		t.Fatalf("durations must render as strings, got %q", attrs[3].Value.AsString())
	}
}

func TestToOTelLogAttributes_OddArgs(t *testing.T) {
	attrs := toOTelLogAttributes([]any{"dangling"})
	if len(attrs) != 1 || attrs[0].Key != "dangling" {
		t.Fatalf("unexpected attributes for odd args: %+v", attrs)
	}
}
