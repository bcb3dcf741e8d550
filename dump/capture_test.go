package dump

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/twitnic/lean/internal/testutil/testlog"
)

func TestCaptureStackPushPop(t *testing.T) {
	testlog.Start(t)
	var base bytes.Buffer
	stack := NewCaptureStack(&base)

	if stack.Writer() != io.Writer(&base) {
		t.Fatalf("empty stack must write to base")
	}
	if _, err := stack.Pop(); !errors.Is(err, ErrNoCaptureLayer) {
		t.Fatalf("expected ErrNoCaptureLayer, got %v", err)
	}

	stack.Push()
	if _, err := io.WriteString(stack.Writer(), "buffered"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if base.Len() != 0 {
		t.Fatalf("layer write must not reach base")
	}

	got, err := stack.Pop()
	if err != nil {
		t.Fatalf("pop failed: %v", err)
	}
	if got != "buffered" {
		t.Fatalf("unexpected content: %q", got)
	}
	if stack.Depth() != 0 {
		t.Fatalf("unexpected depth: %d", stack.Depth())
	}
}

func TestCaptureDrainRestoreRoundTrip(t *testing.T) {
	testlog.Start(t)
	var base bytes.Buffer
	stack := NewCaptureStack(&base)
	stack.Push()
	io.WriteString(stack.Writer(), "first")
	stack.Push()
	io.WriteString(stack.Writer(), "second")

	drained := stack.drainAll()
	if len(drained) != 2 || drained[0] != "second" || drained[1] != "first" {
		t.Fatalf("drain order must be innermost first: %v", drained)
	}
	if stack.Depth() != 0 {
		t.Fatalf("drain must empty the stack")
	}

	if err := stack.restoreAll(drained); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if stack.Depth() != 2 {
		t.Fatalf("unexpected depth after restore: %d", stack.Depth())
	}
	got, _ := stack.Pop()
	if got != "second" {
		t.Fatalf("innermost layer content: %q", got)
	}
	got, _ = stack.Pop()
	if got != "first" {
		t.Fatalf("outermost layer content: %q", got)
	}
	if base.Len() != 0 {
		t.Fatalf("round trip must not leak into base: %q", base.String())
	}
}

func TestCaptureRestoreOnNonEmptyStackIsFatal(t *testing.T) {
	testlog.Start(t)
	stack := NewCaptureStack(&bytes.Buffer{})
	stack.Push()

	err := stack.restoreAll([]string{"x"})
	if !errors.Is(err, ErrCaptureCorrupted) {
		t.Fatalf("expected ErrCaptureCorrupted, got %v", err)
	}
}
