package boundfmt

import (
	"github.com/mattn/go-runewidth"
)

// Alignment controls where a value sits within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Align returns a copy of v whose padding makes it occupy width terminal
// columns. It replaces any padding v already had. Values wider than width
// get no padding, and groups are returned unchanged.
func Align(v Value, width int, align Alignment) Value {
	if v.kind == kindGroup {
		return v
	}
	pad := width - Width(v)
	if pad <= 0 {
		return v.PadLeft(0).PadRight(0)
	}
	var left, right int
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
		right = pad - left
	default:
		right = pad
	}
	return v.PadLeft(clampPad(left)).PadRight(clampPad(right))
}

// Width returns the number of terminal columns v's text occupies, including
// quotes and escapes but not padding.
func Width(v Value) int {
	switch v.kind {
	case kindGroup:
		n := 0
		for _, c := range v.group {
			n += int(c.lpad) + Width(c) + int(c.rpad)
		}
		return n
	case kindInt:
		return len(v.inlineText())
	case kindShort:
		return textWidth(string(v.inlineText()), v.mode)
	default:
		return textWidth(v.str, v.mode)
	}
}

func textWidth(s string, mode Mode) int {
	if mode == Display {
		return runewidth.StringWidth(s)
	}
	n := 2
	for i := 0; i < len(s); i++ {
		n += EscapedLen(s[i])
	}
	return n
}

func clampPad(n int) uint8 {
	if n > 255 {
		return 255
	}
	return uint8(n)
}
