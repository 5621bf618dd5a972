package custom

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/attempt/pkg/attempt"
	"github.com/ib-77/attempt/pkg/attempt/core"
)

func TestRun_WithSuccessCallback(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	source := []int{1, 2, 3}

	var delivered atomic.Int32
	ch := Run(
		ctx,
		core.ToChanManyAttempts[int](ctx, source),
		Map(func(ctx context.Context, v int) int { return v * 2 },
			nil),
		core.CancellationHandlers[int, int]{},
		func(ctx context.Context, in attempt.Attempt[int]) {
			delivered.Add(1)
		},
		2)

	got := core.FromChanMany(ctx, ch)
	if len(got) != len(source) {
		t.Fatalf("expected %d results, got %d", len(source), len(got))
	}
	if delivered.Load() != int32(len(source)) {
		t.Fatalf("expected %d success callbacks, got %d", len(source), delivered.Load())
	}

	sum := 0
	for _, a := range got {
		if !a.IsSuccess() {
			t.Fatalf("expected success, got %v", a.Err())
		}
		sum += a.Value()
	}
	if sum != 12 {
		t.Fatalf("expected doubled sum 12, got %d", sum)
	}
}

func TestRunSingle_FailurePassesThrough(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	boom := errors.New("boom")
	in := make(chan attempt.Attempt[int], 2)
	in <- attempt.Value(5)
	in <- attempt.Fail[int](boom)
	close(in)

	ch := RunSingle(
		ctx,
		in,
		Try(func(ctx context.Context, v int) (int, error) { return v + 1, nil },
			nil),
		core.CancellationHandlers[int, int]{},
		nil)

	got := core.FromChanMany(ctx, ch)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}

	successes, failures := 0, 0
	for _, a := range got {
		if a.IsSuccess() {
			successes++
			if a.Value() != 6 {
				t.Fatalf("expected 6, got %d", a.Value())
			}
		} else {
			failures++
			if a.Err() != boom {
				t.Fatalf("expected boom, got %v", a.Err())
			}
		}
	}
	if successes != 1 || failures != 1 {
		t.Fatalf("expected one success and one failure, got %d/%d", successes, failures)
	}
}

func TestCancelRemainingAttempts(t *testing.T) {
	t.Parallel()

	ctx := core.WithProcessOptions(context.Background(), true)

	in := make(chan attempt.Attempt[int], 3)
	in <- attempt.Value(1)
	in <- attempt.Fail[int](errors.New("already failed"))
	in <- attempt.Value(3)
	close(in)

	out := make(chan attempt.Attempt[string], 3)
	CancelRemainingAttempts[int, string](ctx, in, out)
	close(out)

	count := 0
	for a := range out {
		count++
		if a.IsSuccess() {
			t.Fatalf("remaining attempts must come out failed")
		}
	}
	if count != 3 {
		t.Fatalf("expected 3 drained attempts, got %d", count)
	}
}

func TestCancelRemainingAttempts_DisabledViaOptions(t *testing.T) {
	t.Parallel()

	ctx := core.WithProcessOptions(context.Background(), false)

	in := make(chan attempt.Attempt[int], 1)
	in <- attempt.Value(1)
	close(in)

	out := make(chan attempt.Attempt[string], 1)
	CancelRemainingAttempts[int, string](ctx, in, out)
	close(out)

	if len(out) != 0 {
		t.Fatalf("expected no drained attempts when processing remaining is disabled")
	}
}

func TestTurnout_CancellationRoutesRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ctx = core.WithProcessOptions(ctx, true)

	in := make(chan attempt.Attempt[int])
	handlers := core.CancellationHandlers[int, int]{
		OnCancel:            CancelRemainingAttempts[int, int],
		OnCancelUnprocessed: CancelRemainingAttempt[int, int],
	}

	ch := Turnout(
		ctx,
		in,
		Map(func(ctx context.Context, v int) int { return v }, nil),
		handlers,
		nil,
		1)

	cancel()
	go func() {
		in <- attempt.Value(1)
		close(in)
	}()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case a, ok := <-ch:
			if !ok {
				return
			}
			if a.IsSuccess() {
				t.Fatalf("expected only cancellation failures after cancel, got success %v", a.Value())
			}
		case <-deadline:
			t.Fatalf("pipeline did not drain after cancellation")
		}
	}
}
