package boundfmt

import "fmt"

// Mode selects how a value's text is written.
type Mode uint8

const (
	// Display writes the text verbatim.
	Display Mode = iota
	// Quoted wraps the text in double quotes and escapes special bytes.
	Quoted
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Display:
		return "display"
	case Quoted:
		return "quoted"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Fmt carries the formatting choices resolved by the caller.
// Indentation doubles as the padding count for alternate (multi-line)
// layouts.
type Fmt struct {
	Indentation uint8
	Alternate   bool
	Mode        Mode
}

// Preset formatting arguments.
var (
	FmtDisplay    = Fmt{Mode: Display}
	FmtDebug      = Fmt{Mode: Quoted}
	FmtAltDisplay = Fmt{Mode: Display, Alternate: true}
	FmtAltDebug   = Fmt{Mode: Quoted, Alternate: true}
)

const indentStep = 4

// Indent returns f with its indentation increased by one level.
func (f Fmt) Indent() Fmt {
	if f.Indentation > 255-indentStep {
		f.Indentation = 255
	} else {
		f.Indentation += indentStep
	}
	return f
}

// Unindent returns f with its indentation decreased by one level.
func (f Fmt) Unindent() Fmt {
	if f.Indentation < indentStep {
		f.Indentation = 0
	} else {
		f.Indentation -= indentStep
	}
	return f
}

// ShortStringCap is the number of bytes a ShortString holds inline.
const ShortStringCap = 22

// ShortString is a small string stored inline, used for punctuation and
// separators generated at construction time.
type ShortString struct {
	buf [ShortStringCap]byte
	n   uint8
}

// NewShortString copies s into a ShortString.
// It panics if s is longer than ShortStringCap bytes.
func NewShortString(s string) ShortString {
	return ConcatShort(s)
}

// ConcatShort concatenates parts into a ShortString.
// It panics if the result is longer than ShortStringCap bytes.
func ConcatShort(parts ...string) ShortString {
	var ss ShortString
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total > ShortStringCap {
		panic(fmt.Sprintf("boundfmt: short string of %d bytes exceeds %d", total, ShortStringCap))
	}
	for _, p := range parts {
		ss.n += uint8(copy(ss.buf[ss.n:], p))
	}
	return ss
}

// Len returns the length in bytes.
func (s ShortString) Len() int { return int(s.n) }

// String returns the contents as a string.
func (s ShortString) String() string { return string(s.buf[:s.n]) }

type kind uint8

const (
	kindStr kind = iota
	kindShort
	kindInt
	kindGroup
)

// inlineCap covers a sign and the 39 digits of the largest 128-bit value.
const inlineCap = 40

// Value describes one renderable unit: its text, the spaces written around
// it and how the text is written. Values are built once and never mutated by
// the renderer; the With/Pad methods return modified copies.
type Value struct {
	str    string
	group  []Value
	inline [inlineCap]byte
	start  uint8
	end    uint8
	kind   kind
	lpad   uint8
	rpad   uint8
	mode   Mode
}

// Empty renders as nothing.
var Empty = Text("")

// Text returns a value whose text is written verbatim.
func Text(s string) Value {
	return Value{str: s, kind: kindStr, mode: Display}
}

// Str returns a value for s written in f's mode.
func Str(s string, f Fmt) Value {
	return Value{str: s, kind: kindStr, mode: f.Mode}
}

// Short returns a value for an inline short string, written verbatim.
func Short(s ShortString) Value {
	v := Value{kind: kindShort, mode: Display, end: s.n}
	copy(v.inline[:], s.buf[:s.n])
	return v
}

// Bool returns a value for b. Booleans are always written in Display mode.
func Bool(b bool, _ Fmt) Value {
	if b {
		return Short(NewShortString("true"))
	}
	return Short(NewShortString("false"))
}

// Group returns a value that renders vs in order. A group adds no padding
// or quoting of its own.
//
// Groups may nest to any depth. Rendering nesting up to 64 levels deep
// does not allocate; past that the writer grows its work stack on the
// heap.
func Group(vs ...Value) Value {
	return Value{group: vs, kind: kindGroup}
}

// LeftPad returns the number of spaces written before the text.
func (v Value) LeftPad() uint8 { return v.lpad }

// RightPad returns the number of spaces written after the text.
func (v Value) RightPad() uint8 { return v.rpad }

// Mode returns how the text is written.
func (v Value) Mode() Mode { return v.mode }

// IsGroup reports whether v is a nested group.
func (v Value) IsGroup() bool { return v.kind == kindGroup }

// PadLeft returns a copy of v with n spaces before its text.
func (v Value) PadLeft(n uint8) Value {
	if v.kind != kindGroup {
		v.lpad = n
	}
	return v
}

// PadRight returns a copy of v with n spaces after its text.
func (v Value) PadRight(n uint8) Value {
	if v.kind != kindGroup {
		v.rpad = n
	}
	return v
}

// WithLeftPad sets the left padding to f.Indentation.
func (v Value) WithLeftPad(f Fmt) Value { return v.PadLeft(f.Indentation) }

// WithRightPad sets the right padding to f.Indentation.
func (v Value) WithRightPad(f Fmt) Value { return v.PadRight(f.Indentation) }

// inlineText returns the inline content of a short string or integer. The
// slice aliases v.
func (v *Value) inlineText() []byte {
	return v.inline[v.start:v.end]
}

// String renders v on its own at the largest capacity.
func (v Value) String() string {
	return Sprint([]Value{v})
}
