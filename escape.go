package boundfmt

// EscapeKind classifies how a byte is written in Quoted mode.
type EscapeKind uint8

const (
	// Unescaped bytes are written as-is.
	Unescaped EscapeKind = iota
	// Shorthand bytes are written as a backslash and one character.
	Shorthand
	// Hex bytes are written as \xHH.
	Hex
)

// Escape is the quoted form of a single byte. For Shorthand, Lo holds the
// character after the backslash. For Hex, Hi and Lo hold the two hex digits.
type Escape struct {
	Kind EscapeKind
	Hi   byte
	Lo   byte
}

const hexDigits = "0123456789ABCDEF"

var escapes = func() (t [256]Escape) {
	for i := range t {
		b := byte(i)
		switch {
		case b < 0x20 || b >= 0x7F:
			t[i] = Escape{Kind: Hex, Hi: hexDigits[b>>4], Lo: hexDigits[b&0xF]}
		default:
			t[i] = Escape{Kind: Unescaped, Lo: b}
		}
	}
	for b, c := range map[byte]byte{
		'\n': 'n',
		'\t': 't',
		'\r': 'r',
		'\\': '\\',
		'"':  '"',
		0:    '0',
	} {
		t[b] = Escape{Kind: Shorthand, Lo: c}
	}
	return t
}()

// Classify returns the quoted form of b.
func Classify(b byte) Escape {
	return escapes[b]
}

// EscapedLen returns the number of bytes b occupies in Quoted mode.
func EscapedLen(b byte) int {
	switch escapes[b].Kind {
	case Shorthand:
		return 2
	case Hex:
		return 4
	default:
		return 1
	}
}

// putEscaped writes the quoted form of b into dst and returns the number
// of bytes written. dst must have room for EscapedLen(b) bytes.
func putEscaped(dst []byte, b byte) int {
	e := escapes[b]
	switch e.Kind {
	case Shorthand:
		dst[0], dst[1] = '\\', e.Lo
		return 2
	case Hex:
		dst[0], dst[1], dst[2], dst[3] = '\\', 'x', e.Hi, e.Lo
		return 4
	default:
		dst[0] = b
		return 1
	}
}
