package boundfmt

import "unicode/utf8"

// Truncate reports how many leading bytes of s can be written in mode
// without exceeding budget bytes of output, and whether s was cut short.
//
// In Display mode the cut backs off to the start of a UTF-8 sequence, so
// valid UTF-8 input is never split.
//
// In Quoted mode budget excludes the opening quote, which the caller writes
// first. Each byte costs its escaped length. The result is only untruncated
// when every byte fits and one byte is left for the closing quote; a cut
// value gets no closing quote, so an unterminated quote marks truncation.
func Truncate[S ~string | ~[]byte](s S, mode Mode, budget int) (n int, truncated bool) {
	if budget < 0 {
		budget = 0
	}
	if mode == Quoted {
		return truncateQuoted(s, budget)
	}
	if len(s) <= budget {
		return len(s), false
	}
	n = budget
	for back := 0; n > 0 && back < utf8.UTFMax-1 && !utf8.RuneStart(s[n]); back++ {
		n--
	}
	if !utf8.RuneStart(s[n]) {
		n = budget
	}
	return n, true
}

func truncateQuoted[S ~string | ~[]byte](s S, budget int) (int, bool) {
	// Every byte escapes to at most 4 bytes; +1 for the closing quote.
	if len(s)*4+1 <= budget {
		return len(s), false
	}
	width := 0
	for i := 0; i < len(s); i++ {
		w := EscapedLen(s[i])
		if width+w > budget {
			return i, true
		}
		width += w
	}
	return len(s), width+1 > budget
}
