package boundfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderAt runs a single writer pass at capacity.
func renderAt(capacity int, final bool, groups ...[]Value) (string, bool, error) {
	buf := make([]byte, capacity)
	w := writer{buf: buf, final: final}
	truncated, err := w.write(groups)
	return string(buf[:w.n]), truncated, err
}

func TestWriterOverflowNotFinal(t *testing.T) {
	t.Parallel()
	_, _, err := renderAt(5, false, []Value{Text("hello world")})
	assert.ErrorIs(t, err, ErrNotEnoughSpace)
}

func TestWriterFinal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		capacity  int
		vs        []Value
		want      string
		wantTrunc bool
	}{
		"zero capacity quoted":  {capacity: 0, vs: []Value{Str("abc", FmtDebug)}, want: "", wantTrunc: true},
		"zero capacity display": {capacity: 0, vs: []Value{Text("abc")}, want: "", wantTrunc: true},
		"zero capacity empty":   {capacity: 0, vs: []Value{Empty}, want: "", wantTrunc: false},
		"left pad clipped":      {capacity: 3, vs: []Value{Text("x").PadLeft(5)}, want: "   ", wantTrunc: true},
		"right pad clipped":     {capacity: 3, vs: []Value{Text("ab").PadRight(3)}, want: "ab ", wantTrunc: true},
		"unterminated quote":    {capacity: 3, vs: []Value{Str("ab", FmtDebug)}, want: `"ab`, wantTrunc: true},
		"terminated quote":      {capacity: 4, vs: []Value{Str("ab", FmtDebug)}, want: `"ab"`, wantTrunc: false},
		"opening quote only":    {capacity: 1, vs: []Value{Str("ab", FmtDebug)}, want: `"`, wantTrunc: true},
		"escape not split":      {capacity: 4, vs: []Value{Str("a\x01", FmtDebug)}, want: `"a`, wantTrunc: true},
		"stops at first cut":    {capacity: 4, vs: []Value{Text("abc"), Text("def")}, want: "abcd", wantTrunc: true},
		"no closing bracket":    {capacity: 5, vs: []Value{Str("toolong", FmtDebug), Text("]")}, want: `"tool`, wantTrunc: true},
		"truncated integer":     {capacity: 2, vs: []Value{Int(12345, FmtDisplay)}, want: "12", wantTrunc: true},
		"fits exactly":          {capacity: 6, vs: []Value{Text("abc"), Int(-12, FmtDisplay)}, want: "abc-12", wantTrunc: false},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, trunc, err := renderAt(tt.capacity, true, tt.vs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTrunc, trunc)
		})
	}
}

// validQuoted reports whether s is an opening quote followed by complete
// escape sequences and at most a closing quote at the very end.
func validQuoted(s string) bool {
	if s == "" {
		return true
	}
	if s[0] != '"' {
		return false
	}
	for i := 1; i < len(s); {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return false
			}
			if s[i+1] == 'x' {
				if i+3 >= len(s) || !strings.ContainsRune(hexDigits, rune(s[i+2])) || !strings.ContainsRune(hexDigits, rune(s[i+3])) {
					return false
				}
				i += 4
				continue
			}
			if !strings.ContainsRune(`ntr\"0`, rune(s[i+1])) {
				return false
			}
			i += 2
		case '"':
			return i == len(s)-1
		default:
			i++
		}
	}
	return true
}

func TestQuotedTruncationNeverSplitsEscape(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"\nfoo\"\r",
		"a\x01b\x02\\c\"d\x00",
		strings.Repeat("\x7f\t", 20),
		"héllo wörld",
	}
	for _, in := range inputs {
		full := Str(in, FmtDebug).String()
		for capacity := 0; capacity <= len(full)+1; capacity++ {
			got, trunc, err := renderAt(capacity, true, []Value{Str(in, FmtDebug)})
			require.NoError(t, err)
			assert.True(t, validQuoted(got), "capacity %d: %q", capacity, got)
			assert.True(t, strings.HasPrefix(full, got), "capacity %d: %q", capacity, got)
			assert.Equal(t, capacity < len(full), trunc, "capacity %d", capacity)
			if trunc {
				assert.False(t, len(got) > 1 && strings.HasSuffix(got, `"`) && !strings.HasSuffix(got, `\"`), "capacity %d: %q", capacity, got)
			}
		}
	}
}

func TestDisplayCapacityMonotonic(t *testing.T) {
	t.Parallel()
	groups := [][]Value{
		{Text("alpha").PadRight(1), Int(12345, FmtDisplay), Text(" beta ")},
		{Group(Text("gamma"), Text("日本")).PadLeft(2)},
	}
	prev := ""
	for capacity := 0; capacity <= 40; capacity++ {
		got, _, err := renderAt(capacity, true, groups...)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, prev), "capacity %d: %q does not extend %q", capacity, got, prev)
		assert.LessOrEqual(t, len(got), capacity)
		prev = got
	}
	assert.Equal(t, "alpha 12345 beta gamma日本", prev)
}

func TestEscalate(t *testing.T) {
	t.Parallel()
	caps := []int{4, 8, 16}
	tests := map[string]struct {
		in           string
		want         string
		wantAttempts int
		wantCap      int
		wantTrunc    bool
	}{
		"first":     {in: "abc", want: "abc", wantAttempts: 1, wantCap: 4},
		"second":    {in: "hello", want: "hello", wantAttempts: 2, wantCap: 8},
		"final":     {in: "0123456789", want: "0123456789", wantAttempts: 3, wantCap: 16},
		"truncated": {in: strings.Repeat("x", 20), want: strings.Repeat("x", 16), wantAttempts: 3, wantCap: 16, wantTrunc: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			arena := make([]byte, 16)
			msg, err := escalate(arena, caps, [][]Value{{Text(tt.in)}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.String())
			assert.Equal(t, tt.wantAttempts, msg.Attempts())
			assert.Equal(t, tt.wantCap, msg.Cap())
			assert.Equal(t, tt.wantTrunc, msg.Truncated())
		})
	}
}

func TestEscalateZeroesAttempt(t *testing.T) {
	t.Parallel()
	arena := []byte(strings.Repeat("#", 16))
	msg, err := escalate(arena, []int{4, 16}, [][]Value{{Text("hello")}})
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.String())
	assert.Equal(t, make([]byte, 11), arena[5:])
}

func TestEscalateEmptySequence(t *testing.T) {
	t.Parallel()
	_, err := escalate(make([]byte, 8), nil, [][]Value{{Text("x")}})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCapacitiesStrictlyIncreasing(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(capacities); i++ {
		assert.Less(t, capacities[i-1], capacities[i])
	}
	assert.Equal(t, MaxMessageLen, capacities[len(capacities)-1])
}

func TestPutEscaped(t *testing.T) {
	t.Parallel()
	var buf [4]byte
	for i := 0; i < 256; i++ {
		n := putEscaped(buf[:], byte(i))
		assert.Equal(t, EscapedLen(byte(i)), n, "byte %#x", i)
	}
	n := putEscaped(buf[:], 0xab)
	assert.Equal(t, `\xAB`, string(buf[:n]))
}

func TestIntegerInlineRange(t *testing.T) {
	t.Parallel()
	v := Int128(-1<<63, 0, FmtDisplay)
	assert.Equal(t, uint8(0), v.start)
	assert.Equal(t, uint8(inlineCap), v.end)
	assert.Equal(t, kindInt, v.kind)
}
