package dump

import (
	"bytes"
	"fmt"
	"io"
)

// CaptureStack is the explicit form of ambient output buffering: a stack of
// in-memory layers over a base writer. While any layer is pushed, writes land
// in the innermost buffer instead of reaching the base.
//
// A session drains the whole stack before rendering so a dump is never
// interleaved inside partially buffered content, then restores every layer
// with its buffered bytes re-seeded. Restoration runs on every exit path.
type CaptureStack struct {
	base   io.Writer
	layers []*bytes.Buffer
}

func NewCaptureStack(base io.Writer) *CaptureStack {
	return &CaptureStack{base: base}
}

// Push adds a new innermost buffering layer.
func (c *CaptureStack) Push() {
	c.layers = append(c.layers, &bytes.Buffer{})
}

// Pop removes the innermost layer and returns its buffered content.
func (c *CaptureStack) Pop() (string, error) {
	if len(c.layers) == 0 {
		return "", ErrNoCaptureLayer
	}
	last := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	return last.String(), nil
}

// Depth reports the number of active layers.
func (c *CaptureStack) Depth() int {
	return len(c.layers)
}

// Writer returns the destination of the next write: the innermost layer, or
// the base when no layer is active.
func (c *CaptureStack) Writer() io.Writer {
	if n := len(c.layers); n > 0 {
		return c.layers[n-1]
	}
	return c.base
}

// drainAll empties the stack innermost-first and returns the buffered
// contents in that order.
func (c *CaptureStack) drainAll() []string {
	contents := make([]string, 0, len(c.layers))
	for len(c.layers) > 0 {
		s, _ := c.Pop()
		contents = append(contents, s)
	}
	return contents
}

// restoreAll rebuilds the stack outermost-first from contents produced by
// drainAll, re-seeding each layer's bytes. The stack must still be empty; a
// layer pushed in between means the caller's buffering state can no longer be
// reproduced, which is fatal.
func (c *CaptureStack) restoreAll(contents []string) error {
	if len(c.layers) != 0 {
		return ErrCaptureCorrupted
	}
	for i := len(contents) - 1; i >= 0; i-- {
		c.Push()
		if _, err := io.WriteString(c.Writer(), contents[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrCaptureCorrupted, err)
		}
	}
	return nil
}
