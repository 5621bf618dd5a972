package solo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ib-77/attempt/pkg/attempt"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, 10, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})
	if !ok.IsSuccess() || ok.Value() != 10 {
		t.Fatalf("expected success with 10, got %v / %v", ok.Value(), ok.Err())
	}

	bad := Validate(ctx, -1, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})
	if bad.IsSuccess() || bad.Err().Error() != "must be positive" {
		t.Fatalf("expected validation failure, got %v", bad.Err())
	}
}

func TestAndValidate_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	called := false
	out := AndValidate(ctx, attempt.Fail[int](boom), func(ctx context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})
	if called || out.Err() != boom {
		t.Fatalf("validate must not run on failed input")
	}
}

func TestAssert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Assert(ctx, Succeed(4),
		func(ctx context.Context, in int) bool { return in%2 == 0 },
		func(ctx context.Context, in int) error { return fmt.Errorf("odd: %d", in) })
	if !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out.Err())
	}

	out = Assert(ctx, Succeed(3),
		func(ctx context.Context, in int) bool { return in%2 == 0 },
		func(ctx context.Context, in int) error { return fmt.Errorf("odd: %d", in) })
	if out.IsSuccess() || out.Err().Error() != "odd: 3" {
		t.Fatalf("expected 'odd: 3', got %v", out.Err())
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed(2), func(ctx context.Context, r int) attempt.Attempt[string] {
		return attempt.Value(fmt.Sprintf("v%d", r))
	})
	if out.Value() != "v2" {
		t.Fatalf("expected v2, got %q", out.Value())
	}

	boom := errors.New("boom")
	short := Switch(ctx, Fail[int](boom), func(ctx context.Context, r int) attempt.Attempt[string] {
		t.Fatalf("onSuccess must not run on failure")
		return attempt.Value("")
	})
	if short.Err() != boom {
		t.Fatalf("expected boom, got %v", short.Err())
	}
}

func TestMap_PanicBecomesFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed(1), func(ctx context.Context, r int) int {
		panic("stage blew up")
	})
	if out.IsSuccess() {
		t.Fatalf("expected panic capture")
	}
	var pe *attempt.PanicError
	if !errors.As(out.Err(), &pe) {
		t.Fatalf("expected PanicError, got %v", out.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed(2), func(ctx context.Context, r int) (int, error) {
		return r * 3, nil
	})
	if out.Value() != 6 {
		t.Fatalf("expected 6, got %v", out.Value())
	}

	boom := errors.New("boom")
	failed := Try(ctx, Succeed(2), func(ctx context.Context, r int) (int, error) {
		return 0, boom
	})
	if failed.Err() != boom {
		t.Fatalf("expected boom, got %v", failed.Err())
	}
}

func TestDoubleMap_Routing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onError, onCancel := 0, 0
	out := DoubleMap(ctx, Fail[int](errors.New("plain")),
		func(ctx context.Context, r int) string { return "ok" },
		func(ctx context.Context, err error) string { onError++; return "err" },
		func(ctx context.Context, err error) string { onCancel++; return "cancel" })
	if out.IsSuccess() || onError != 1 || onCancel != 0 {
		t.Fatalf("expected error branch only, got err=%d cancel=%d", onError, onCancel)
	}

	out = DoubleMap(ctx, Fail[int](context.Canceled),
		func(ctx context.Context, r int) string { return "ok" },
		func(ctx context.Context, err error) string { onError++; return "err" },
		func(ctx context.Context, err error) string { onCancel++; return "cancel" })
	if out.IsSuccess() || onCancel != 1 {
		t.Fatalf("cancellation error must route to the cancel branch")
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kept := FailOnError(ctx, Succeed(5), func(ctx context.Context, in int) error { return nil })
	if !kept.IsSuccess() {
		t.Fatalf("expected success kept")
	}

	boom := errors.New("boom")
	failed := FailOnError(ctx, Succeed(5), func(ctx context.Context, in int) error { return boom })
	if failed.Err() != boom {
		t.Fatalf("expected boom, got %v", failed.Err())
	}
}

func TestFinally_Routing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers := func() (func(context.Context, int) string, func(context.Context, error) string, func(context.Context, error) string) {
		return func(ctx context.Context, r int) string { return "success" },
			func(ctx context.Context, err error) string { return "error" },
			func(ctx context.Context, err error) string { return "cancel" }
	}

	s, e, c := handlers()
	if got := Finally(ctx, Succeed(1), s, e, c); got != "success" {
		t.Fatalf("expected success, got %q", got)
	}
	if got := Finally(ctx, Fail[int](errors.New("x")), s, e, c); got != "error" {
		t.Fatalf("expected error, got %q", got)
	}
	if got := Finally(ctx, Fail[int](context.DeadlineExceeded), s, e, c); got != "cancel" {
		t.Fatalf("expected cancel, got %q", got)
	}
}

func TestAssertAll_JoinsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nonNegative := func(ctx context.Context, in attempt.Attempt[int]) attempt.Attempt[int] {
		return Assert(ctx, in,
			func(ctx context.Context, v int) bool { return v >= 0 },
			func(ctx context.Context, v int) error { return errors.New("negative") })
	}
	even := func(ctx context.Context, in attempt.Attempt[int]) attempt.Attempt[int] {
		return Assert(ctx, in,
			func(ctx context.Context, v int) bool { return v%2 == 0 },
			func(ctx context.Context, v int) error { return errors.New("odd") })
	}

	ok := AssertAll(ctx, Succeed(10), true, nonNegative, even)
	if !ok.IsSuccess() || ok.Value() != 10 {
		t.Fatalf("expected success with 10, got %v / %v", ok.Value(), ok.Err())
	}

	firstOnly := AssertAll(ctx, Succeed(-1), true, nonNegative, even)
	if firstOnly.IsSuccess() || firstOnly.Err().Error() != "negative" {
		t.Fatalf("expected first failure only, got %v", firstOnly.Err())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := Tee(ctx, Succeed(3), func(ctx context.Context, r attempt.Attempt[int]) {
		seen = r.Value()
	})
	if seen != 3 || out.Value() != 3 {
		t.Fatalf("tee must observe and pass through")
	}

	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r attempt.Attempt[int]) {
		t.Fatalf("tee must not run on failure")
	})
}
