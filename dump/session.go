package dump

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Session is the per-call configuration bundle. Setters chain and record the
// first configuration error where it happens; Render surfaces it before
// writing anything. A session is owned by one top-level render call and is
// never shared across concurrent calls.
type Session struct {
	depth          int
	showMethods    bool
	sorted         bool
	showStringForm bool
	wrap           bool
	drain          bool
	color          string
	labels         []string
	file           string
	line           int
	writer         io.Writer
	capture        *CaptureStack
	guard          *CycleGuard
	err            error
}

// New clones the process prototype into a fresh session.
func New() *Session {
	return Prototype().clone()
}

// Depth sets the recursion budget. Composite children at the budget collapse
// to one-line summaries.
func (s *Session) Depth(n int) *Session {
	if n < 1 {
		s.fail(ErrDepthTooSmall)
		return s
	}
	s.depth = n
	return s
}

func (s *Session) ShowMethods(on bool) *Session {
	s.showMethods = on
	return s
}

func (s *Session) Sorted(on bool) *Session {
	s.sorted = on
	return s
}

func (s *Session) ShowStringForm(on bool) *Session {
	s.showStringForm = on
	return s
}

// Wrap encloses each rendered value in a delimited block carrying the color
// tag, for output that ends up in a browser rather than a terminal.
func (s *Session) Wrap(on bool) *Session {
	s.wrap = on
	return s
}

func (s *Session) Color(tag string) *Session {
	s.color = tag
	return s
}

// Labels queues one prefix label per upcoming value, matched positionally.
func (s *Session) Labels(labels ...string) *Session {
	s.labels = append([]string(nil), labels...)
	return s
}

// Location overrides the caller-location footer. Render captures its own
// caller when this is not set.
func (s *Session) Location(file string, line int) *Session {
	s.file = file
	s.line = line
	return s
}

func (s *Session) DrainCapture(on bool) *Session {
	s.drain = on
	return s
}

func (s *Session) Capture(c *CaptureStack) *Session {
	s.capture = c
	return s
}

func (s *Session) Writer(w io.Writer) *Session {
	s.writer = w
	return s
}

func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Session) clone() *Session {
	out := *s
	out.labels = append([]string(nil), s.labels...)
	out.guard = NewCycleGuard()
	return &out
}

// Render dumps each value in argument order through this session's
// configuration. Cycle state is fresh per value; capture layers, if draining
// is enabled, are emptied first and restored on every exit path.
func (s *Session) Render(values ...any) (err error) {
	if s.err != nil {
		return s.err
	}
	if len(s.labels) > len(values) {
		return ErrTooManyLabels
	}
	if s.file == "" {
		if _, file, line, ok := runtime.Caller(1); ok {
			s.file, s.line = file, line
		}
	}
	if s.guard == nil {
		s.guard = NewCycleGuard()
	}

	if s.drain && s.capture != nil {
		drained := s.capture.drainAll()
		defer func() {
			if rerr := s.capture.restoreAll(drained); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	w := s.outputWriter()
	for i, v := range values {
		var sb strings.Builder
		if s.wrap {
			fmt.Fprintf(&sb, "<pre style=%q>\n", "color: "+s.color)
		}
		if i < len(s.labels) {
			sb.WriteString(s.labels[i])
			sb.WriteString(":\n")
		}
		sb.WriteString(renderValue(v, s, s.guard))
		fmt.Fprintf(&sb, "~ %s:%d\n", s.file, s.line)
		if s.wrap {
			sb.WriteString("</pre>\n")
		}
		if _, werr := io.WriteString(w, sb.String()); werr != nil {
			return fmt.Errorf("dump: write failed: %w", werr)
		}
		s.guard.Reset()
	}
	return nil
}

func (s *Session) outputWriter() io.Writer {
	if s.capture != nil {
		return s.capture.Writer()
	}
	if s.writer != nil {
		return s.writer
	}
	return defaultWriter()
}

// Dump renders each value through a clone of the process prototype, tagged
// with the caller's source location.
func Dump(values ...any) error {
	s := New()
	if _, file, line, ok := runtime.Caller(1); ok {
		s.Location(file, line)
	}
	return s.Render(values...)
}

// DumpLabeled is Dump with a positional label per value. Fewer labels than
// values leaves the tail unlabeled; more labels than values is a
// configuration error.
func DumpLabeled(labels []string, values ...any) error {
	s := New().Labels(labels...)
	if _, file, line, ok := runtime.Caller(1); ok {
		s.Location(file, line)
	}
	return s.Render(values...)
}
