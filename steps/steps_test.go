package steps

import (
	"context"
	"errors"
	"testing"
	"time"

	flowerrors "github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/pipeline"
	"github.com/kbukum/flowkit/resilience"
)

func TestTransform(t *testing.T) {
	var got int
	p := pipeline.New[int](
		Transform(func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		}),
		sink(&got),
	)
	if err := p.Invoke(context.Background(), 21); err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestTransform_ErrorShortCircuits(t *testing.T) {
	boom := errors.New("bad value")
	var ran bool
	p := pipeline.New[int](
		Transform(func(_ context.Context, _ int) (int, error) {
			return 0, boom
		}),
		pipeline.StepFunc[int](func(_ context.Context, _ int, _ pipeline.Next[int]) error {
			ran = true
			return nil
		}),
	)
	if err := p.Invoke(context.Background(), 1); !errors.Is(err, boom) {
		t.Errorf("expected transform error, got %v", err)
	}
	if ran {
		t.Error("downstream step must not run after a transform fault")
	}
}

func TestTap_DoesNotAlterData(t *testing.T) {
	var tapped, got int
	p := pipeline.New[int](
		Tap(func(_ context.Context, n int) error {
			tapped = n
			return nil
		}),
		sink(&got),
	)
	if err := p.Invoke(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if tapped != 7 || got != 7 {
		t.Errorf("tapped=%d got=%d, want 7 for both", tapped, got)
	}
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	var got []int
	p := pipeline.New[int](
		Filter[int](even),
		pipeline.StepFunc[int](func(_ context.Context, n int, _ pipeline.Next[int]) error {
			got = append(got, n)
			return nil
		}),
	)

	for _, n := range []int{1, 2, 3, 4} {
		if err := p.Invoke(context.Background(), n); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestFanOut(t *testing.T) {
	var got []int
	p := pipeline.New[int](
		FanOut(func(n int) []int { return []int{n, n + 1, n + 2} }),
		pipeline.StepFunc[int](func(_ context.Context, n int, _ pipeline.Next[int]) error {
			got = append(got, n)
			return nil
		}),
	)
	if err := p.Invoke(context.Background(), 10); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 10 || got[1] != 11 || got[2] != 12 {
		t.Errorf("branches = %v, want [10 11 12]", got)
	}
}

func TestFanOut_BranchFaultStopsRemaining(t *testing.T) {
	boom := errors.New("branch failed")
	var branches []int
	p := pipeline.New[int](
		FanOut(func(n int) []int { return []int{1, 2, 3} }),
		pipeline.StepFunc[int](func(_ context.Context, n int, _ pipeline.Next[int]) error {
			branches = append(branches, n)
			if n == 2 {
				return boom
			}
			return nil
		}),
	)
	if err := p.Invoke(context.Background(), 0); !errors.Is(err, boom) {
		t.Errorf("expected branch fault, got %v", err)
	}
	if len(branches) != 2 {
		t.Errorf("ran %v, want fan-out to stop after the faulting branch", branches)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	attempts := 0
	cfg := resilience.RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2.0,
	}

	p := pipeline.New[int](
		Retry[int](cfg),
		pipeline.StepFunc[int](func(_ context.Context, _ int, _ pipeline.Next[int]) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		}),
	)

	if err := p.Invoke(context.Background(), 1); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	boom := errors.New("persistent")
	attempts := 0
	cfg := resilience.RetryConfig{
		MaxAttempts:    2,
		InitialBackoff: time.Millisecond,
	}

	p := pipeline.New[int](
		Retry[int](cfg),
		pipeline.StepFunc[int](func(_ context.Context, _ int, _ pipeline.Next[int]) error {
			attempts++
			return boom
		}),
	)

	if err := p.Invoke(context.Background(), 1); !errors.Is(err, boom) {
		t.Errorf("expected last error, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestValidate(t *testing.T) {
	type order struct {
		ID    string `validate:"required"`
		Email string `validate:"required,email"`
	}

	var ran bool
	p := pipeline.New[order](
		Validate[order](),
		pipeline.StepFunc[order](func(_ context.Context, _ order, _ pipeline.Next[order]) error {
			ran = true
			return nil
		}),
	)

	if err := p.Invoke(context.Background(), order{ID: "1", Email: "a@b.co"}); err != nil {
		t.Fatalf("valid data should pass, got %v", err)
	}
	if !ran {
		t.Fatal("downstream step did not run for valid data")
	}

	ran = false
	err := p.Invoke(context.Background(), order{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation fault")
	}
	var appErr *flowerrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != flowerrors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT fault, got %v", err)
	}
	if ran {
		t.Error("downstream step must not run for invalid data")
	}
}

func TestRecover_AbsorbsDownstreamFault(t *testing.T) {
	log := logger.NewDefault("test")
	p := pipeline.New[int](
		Recover[int](log),
		pipeline.StepFunc[int](func(_ context.Context, _ int, _ pipeline.Next[int]) error {
			return errors.New("downstream boom")
		}),
	)

	if err := p.Invoke(context.Background(), 1); err != nil {
		t.Errorf("Recover should absorb the fault, got %v", err)
	}
}

// --- helpers ---

func sink(dst *int) pipeline.Step[int] {
	return pipeline.StepFunc[int](func(_ context.Context, n int, _ pipeline.Next[int]) error {
		*dst = n
		return nil
	})
}
