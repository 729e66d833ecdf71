package boundfmt

import "math/bits"

// Int returns a value for n. Integers are always written in Display mode;
// f only carries the caller's formatting choice.
func Int(n int64, f Fmt) Value {
	if n < 0 {
		return newIntValue(true, 0, uint64(-(n+1))+1)
	}
	return newIntValue(false, 0, uint64(n))
}

// Uint returns a value for n.
func Uint(n uint64, f Fmt) Value {
	return newIntValue(false, 0, n)
}

// Int128 returns a value for the signed 128-bit integer whose two's
// complement representation is hi:lo.
func Int128(hi int64, lo uint64, f Fmt) Value {
	if hi < 0 {
		// magnitude = ^(hi:lo) + 1
		uhi, ulo := ^uint64(hi), ^lo
		var carry uint64
		ulo, carry = bits.Add64(ulo, 1, 0)
		uhi += carry
		return newIntValue(true, uhi, ulo)
	}
	return newIntValue(false, uint64(hi), lo)
}

// Uint128 returns a value for the unsigned 128-bit integer hi:lo.
func Uint128(hi, lo uint64, f Fmt) Value {
	return newIntValue(false, hi, lo)
}

// newIntValue writes the decimal digits of hi:lo least significant first
// into the tail of the inline buffer and records the occupied range.
func newIntValue(neg bool, hi, lo uint64) Value {
	v := Value{kind: kindInt, mode: Display, end: inlineCap}
	i := inlineCap
	for {
		var rem uint64
		hi, rem = hi/10, hi%10
		lo, rem = bits.Div64(rem, lo, 10)
		i--
		v.inline[i] = '0' + byte(rem)
		if hi == 0 && lo == 0 {
			break
		}
	}
	if neg {
		i--
		v.inline[i] = '-'
	}
	v.start = uint8(i)
	return v
}
