package boundfmt

// stackDepth is the nesting depth the writer handles without growing its
// work stack. Deeper groups still render, but the stack moves to the heap.
const stackDepth = 64

// writer renders values into a fixed buffer. It never writes past
// len(buf). When final is set, running out of room ends the render instead
// of failing it.
type writer struct {
	buf   []byte
	n     int
	final bool
}

// write renders groups in order, flattening nested groups depth first.
// It returns ErrNotEnoughSpace when a value does not fit, unless the writer
// is final, in which case it stops and reports truncated.
func (w *writer) write(groups [][]Value) (truncated bool, err error) {
	var backing [stackDepth][]Value
	stack := backing[:0]
	for _, g := range groups {
		stack = append(stack[:0], g)
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(*top) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			v := &(*top)[0]
			*top = (*top)[1:]
			if v.kind == kindGroup {
				stack = append(stack, v.group)
				continue
			}
			if w.leaf(v) {
				continue
			}
			if !w.final {
				return false, ErrNotEnoughSpace
			}
			return true, nil
		}
	}
	return false, nil
}

// leaf writes one non-group value and reports whether all of it fit.
func (w *writer) leaf(v *Value) bool {
	if !w.pad(v.lpad) {
		return false
	}
	var fit bool
	switch v.kind {
	case kindInt:
		fit = writeText(w, v.inlineText(), Display)
	case kindShort:
		fit = writeText(w, v.inlineText(), v.mode)
	default:
		fit = writeText(w, v.str, v.mode)
	}
	padded := w.pad(v.rpad)
	return fit && padded
}

func (w *writer) pad(count uint8) bool {
	for i := uint8(0); i < count; i++ {
		if w.n == len(w.buf) {
			return false
		}
		w.buf[w.n] = ' '
		w.n++
	}
	return true
}

func writeText[S ~string | ~[]byte](w *writer, s S, mode Mode) bool {
	rem := len(w.buf) - w.n
	if mode == Display {
		n, truncated := Truncate(s, Display, rem)
		for i := 0; i < n; i++ {
			w.buf[w.n] = s[i]
			w.n++
		}
		return !truncated
	}

	if rem == 0 {
		return false
	}
	w.buf[w.n] = '"'
	w.n++
	n, truncated := Truncate(s, Quoted, rem-1)
	for i := 0; i < n; i++ {
		w.n += putEscaped(w.buf[w.n:], s[i])
	}
	if !truncated {
		w.buf[w.n] = '"'
		w.n++
	}
	return !truncated
}
