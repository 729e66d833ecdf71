package boundfmt

import (
	"errors"
	"fmt"
)

// MaxMessageLen is the largest message Render produces, in bytes. Longer
// messages are truncated.
const MaxMessageLen = 32768

const (
	smallCap  = 1024
	mediumCap = 1024 * 6
)

// capacities is the escalation sequence: most messages fit the first
// buffer, and the last one is the hard cap.
var capacities = [...]int{smallCap, mediumCap, MaxMessageLen}

// Sentinel errors for programmatic error handling.
var (
	ErrNotEnoughSpace = errors.New("not enough space")
	ErrInternal       = errors.New("internal error")
)

// Capacities returns the buffer sizes Render tries, in order.
func Capacities() []int {
	out := make([]int, len(capacities))
	copy(out, capacities[:])
	return out
}

// Message is a rendered message. It aliases the arena it was rendered into.
type Message struct {
	buf       []byte
	n         int
	truncated bool
	attempts  int
}

// Bytes returns the rendered bytes.
func (m Message) Bytes() []byte { return m.buf[:m.n:m.n] }

// String returns the rendered text.
func (m Message) String() string { return string(m.buf[:m.n]) }

// Len returns the number of rendered bytes.
func (m Message) Len() int { return m.n }

// Cap returns the capacity of the buffer the message was rendered into.
func (m Message) Cap() int { return len(m.buf) }

// Truncated reports whether the message hit the hard cap and was cut.
func (m Message) Truncated() bool { return m.truncated }

// Attempts returns how many buffer sizes were tried.
func (m Message) Attempts() int { return m.attempts }

// Render renders groups into arena, trying each size in Capacities until
// the message fits. The last attempt runs at min(len(arena), MaxMessageLen)
// and truncates whatever does not fit. Render panics with an error wrapping
// ErrInternal if that attempt still reports running out of space.
func Render(arena []byte, groups ...[]Value) Message {
	msg, err := escalate(arena, capacities[:], groups)
	if err != nil {
		panic(err)
	}
	return msg
}

// Sprint renders groups and returns the text.
func Sprint(groups ...[]Value) string {
	s, _ := sprint(groups)
	return s
}

// stats describes how a message returned by sprint was produced.
type stats struct {
	capacity  int
	attempts  int
	truncated bool
}

// sprint renders groups with one stack buffer per capacity, entering the
// larger ones only after the smaller ones ran out of space.
func sprint(groups [][]Value) (string, stats) {
	if s, _, err := renderSmall(groups); err == nil {
		return s, stats{capacity: smallCap, attempts: 1}
	}
	if s, _, err := renderMedium(groups); err == nil {
		return s, stats{capacity: mediumCap, attempts: 2}
	}
	s, truncated, err := renderMax(groups)
	if err != nil {
		panic(fmt.Errorf("%w: %v at final capacity %d", ErrInternal, err, MaxMessageLen))
	}
	return s, stats{capacity: MaxMessageLen, attempts: 3, truncated: truncated}
}

//go:noinline
func renderSmall(groups [][]Value) (string, bool, error) {
	var buf [smallCap]byte
	return attempt(buf[:], false, groups)
}

//go:noinline
func renderMedium(groups [][]Value) (string, bool, error) {
	var buf [mediumCap]byte
	return attempt(buf[:], false, groups)
}

//go:noinline
func renderMax(groups [][]Value) (string, bool, error) {
	var buf [MaxMessageLen]byte
	return attempt(buf[:], true, groups)
}

// attempt runs one writer pass over buf and copies the result out, so buf
// never leaves its caller's frame.
func attempt(buf []byte, final bool, groups [][]Value) (string, bool, error) {
	w := writer{buf: buf, final: final}
	truncated, err := w.write(groups)
	if err != nil {
		return "", false, err
	}
	return string(buf[:w.n]), truncated, nil
}

// Fill renders groups into dst in a single attempt and returns the number
// of bytes written. It returns an error wrapping ErrNotEnoughSpace if the
// whole message does not fit; dst is then partially written.
func Fill(dst []byte, groups ...[]Value) (int, error) {
	w := writer{buf: dst}
	if _, err := w.write(groups); err != nil {
		return 0, fmt.Errorf("%w: message exceeds %d bytes", err, len(dst))
	}
	return w.n, nil
}

func escalate(arena []byte, caps []int, groups [][]Value) (Message, error) {
	for i, c := range caps {
		final := i == len(caps)-1
		if c >= len(arena) {
			c = len(arena)
			final = true
		}
		buf := arena[:c]
		clear(buf)
		w := writer{buf: buf, final: final}
		truncated, err := w.write(groups)
		if err == nil {
			return Message{buf: buf, n: w.n, truncated: truncated, attempts: i + 1}, nil
		}
		if final {
			return Message{}, fmt.Errorf("%w: %v at final capacity %d", ErrInternal, err, c)
		}
	}
	return Message{}, fmt.Errorf("%w: empty capacity sequence", ErrInternal)
}
