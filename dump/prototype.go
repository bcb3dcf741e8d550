package dump

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// DefaultDepth is the recursion budget of a freshly built prototype.
const DefaultDepth = 3

const defaultColor = "#5a5a5a"

var (
	protoMu     sync.Mutex
	proto       atomic.Pointer[Session]
	protoFrozen bool
)

// Prototype returns the process-wide default session, building it lazily on
// first use. The read path is lock-free once initialized. Callers clone it;
// mutating the returned session directly changes every subsequent default,
// which is exactly the prototype's job.
func Prototype() *Session {
	if p := proto.Load(); p != nil {
		return p
	}
	protoMu.Lock()
	defer protoMu.Unlock()
	if p := proto.Load(); p != nil {
		return p
	}
	p := defaultSession()
	proto.Store(p)
	return p
}

// SetPrototype replaces the process default. Allowed exactly once per
// process; later calls return ErrPrototypeFrozen. A session carrying a
// configuration error is rejected.
func SetPrototype(s *Session) error {
	protoMu.Lock()
	defer protoMu.Unlock()
	if protoFrozen {
		return ErrPrototypeFrozen
	}
	if s.err != nil {
		return s.err
	}
	proto.Store(s)
	protoFrozen = true
	return nil
}

func defaultSession() *Session {
	return &Session{
		depth:          DefaultDepth,
		showStringForm: true,
		// A terminal gets plain text; piped or captured output gets the
		// delimited block.
		wrap:  !stdoutIsTerminal(),
		color: defaultColor,
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var stdoutWriter = sync.OnceValue(func() io.Writer {
	return colorable.NewColorableStdout()
})

func defaultWriter() io.Writer {
	return stdoutWriter()
}
