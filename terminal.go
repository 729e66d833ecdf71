package boundfmt

import (
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrMessage matches every *Error returned by NewError.
var ErrMessage = errors.New("boundfmt message")

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// SetLogger sets the logger Log uses when given nil. A nil l restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger returns the package logger. It is a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Error is a rendered message returned as an error value.
type Error struct {
	Msg       string
	Truncated bool
}

func (e *Error) Error() string { return e.Msg }

// Is reports whether target is ErrMessage.
func (e *Error) Is(target error) bool { return target == ErrMessage }

// NewError renders groups into an error value.
func NewError(groups ...[]Value) error {
	s, st := sprint(groups)
	return &Error{Msg: s, Truncated: st.truncated}
}

// Panic renders groups and panics with the text.
func Panic(groups ...[]Value) {
	panic(Sprint(groups...))
}

// Write renders groups and writes the bytes to w.
func Write(w io.Writer, groups ...[]Value) (int, error) {
	s, _ := sprint(groups)
	return io.WriteString(w, s)
}

// Log renders groups and logs the text at lvl. Nothing is rendered when lvl
// is disabled. A nil l uses Logger().
func Log(l *zap.Logger, lvl zapcore.Level, groups ...[]Value) {
	if l == nil {
		l = Logger()
	}
	if !l.Core().Enabled(lvl) {
		return
	}
	s, st := sprint(groups)
	l.Log(lvl, s,
		zap.Int("capacity", st.capacity),
		zap.Int("attempts", st.attempts),
		zap.Bool("truncated", st.truncated),
	)
}
