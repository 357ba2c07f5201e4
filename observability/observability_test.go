package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("ingest")
	if cfg.ServiceName != "ingest" {
		t.Errorf("service name = %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("sample rate = %f, want 1.0", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("ingest")
	if cfg.ServiceName != "ingest" || cfg.Interval != 15*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestStartSpan_NoProvider(t *testing.T) {
	// Without an installed provider spans are no-ops but must be usable.
	ctx, span := StartSpan(context.Background(), "test.op")
	defer span.End()

	SetSpanAttribute(ctx, "key", "value")
	SetSpanAttribute(ctx, "n", 42)
	SetSpanError(ctx, errors.New("boom"))
}

func TestNewMetrics(t *testing.T) {
	metrics, err := NewMetrics(Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	metrics.RecordStep(ctx, "transform", "ok", 10*time.Millisecond)
	metrics.RecordStep(ctx, "transform", "error", 5*time.Millisecond)
	metrics.RecordError(ctx, "run", "transform")
}
