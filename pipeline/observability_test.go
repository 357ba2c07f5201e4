package pipeline

import (
	"bytes"
	"context"
	goerrors "errors"
	"strings"
	"testing"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

func TestWithLogging_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "test")

	var got string
	step := WithLogging(Named("record", StepFunc[string](
		func(_ context.Context, s string, _ Next[string]) error {
			got = s
			return nil
		})), log)

	p := New[string](step)
	if err := p.Invoke(context.Background(), "x"); err != nil {
		t.Fatal(err)
	}
	if got != "x" {
		t.Errorf("wrapped step saw %q, want x", got)
	}
	if StepName(step) != "record" {
		t.Errorf("wrapper should preserve the step name, got %q", StepName(step))
	}
}

func TestWithLogging_LogsFaults(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "test")

	boom := goerrors.New("boom")
	p := New[int](WithLogging(failingStep[int](boom), log))

	err := p.Invoke(context.Background(), 1)
	if !goerrors.Is(err, boom) {
		t.Fatalf("fault must pass through the decorator, got %v", err)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("log output missing fault: %s", buf.String())
	}
}

func TestWithTracing_PassThrough(t *testing.T) {
	// No tracer provider installed: spans are no-ops, behavior unchanged.
	boom := goerrors.New("boom")
	p := New[int](WithTracing(failingStep[int](boom), "pipeline"))

	if err := p.Invoke(context.Background(), 1); !goerrors.Is(err, boom) {
		t.Errorf("fault must pass through the decorator, got %v", err)
	}
}

func TestWithMetrics_PassThrough(t *testing.T) {
	metrics, err := observability.NewMetrics(observability.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	var ran bool
	p := New[int](WithMetrics(StepFunc[int](
		func(_ context.Context, _ int, _ Next[int]) error {
			ran = true
			return nil
		}), metrics))

	if err := p.Invoke(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("wrapped step did not run")
	}

	boom := goerrors.New("boom")
	p2 := New[int](WithMetrics(failingStep[int](boom), metrics))
	if err := p2.Invoke(context.Background(), 1); !goerrors.Is(err, boom) {
		t.Errorf("fault must pass through the decorator, got %v", err)
	}
}
