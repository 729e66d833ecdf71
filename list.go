package boundfmt

// Separator returns the value written after a list element or field.
// Without f.Alternate it is sep followed by a space, or nothing after the
// last element. With f.Alternate it is sep and a newline, padded on the
// right by f.Indentation so the next element starts indented.
//
// It panics if sep is longer than ShortStringCap-1 bytes.
func Separator(sep string, last bool, f Fmt) Value {
	switch {
	case !f.Alternate && !last:
		return Short(ConcatShort(sep, " "))
	case !f.Alternate:
		return Short(ShortString{})
	case !last:
		return Short(ConcatShort(sep, "\n")).PadRight(f.Indentation)
	default:
		return Short(ConcatShort(sep, "\n"))
	}
}

// Delimiters take the Fmt of the value they enclose. Openers pad their
// line break out to the element level, f.Indent(), and closers pad back to
// f.Indentation. Without f.Alternate braces carry their own spaces, as in
// Foo { x: 1 }, while brackets and parentheses do not.

// OpenParen returns "(" or, with f.Alternate, "(" and a newline.
func OpenParen(f Fmt) Value { return opener("(", "(\n", f) }

// CloseParen returns ")".
func CloseParen(f Fmt) Value { return closer(")", ")", f) }

// OpenBracket returns "[" or, with f.Alternate, "[" and a newline.
func OpenBracket(f Fmt) Value { return opener("[", "[\n", f) }

// CloseBracket returns "]".
func CloseBracket(f Fmt) Value { return closer("]", "]", f) }

// OpenBrace returns " { " or, with f.Alternate, " {" and a newline.
func OpenBrace(f Fmt) Value { return opener(" { ", " {\n", f) }

// CloseBrace returns " }" or, with f.Alternate, "}".
func CloseBrace(f Fmt) Value { return closer(" }", "}", f) }

// CommaSep returns the separator written between the elements of a value
// formatted with f.
func CommaSep(f Fmt) Value { return Separator(",", false, f.Indent()) }

// CommaTerm returns the separator written after the last element of a
// value formatted with f. It is empty unless f.Alternate is set.
func CommaTerm(f Fmt) Value { return Separator(",", true, f.Indent()) }

func opener(compact, alt string, f Fmt) Value {
	if !f.Alternate {
		return Short(NewShortString(compact))
	}
	return Short(NewShortString(alt)).PadRight(f.Indent().Indentation)
}

func closer(compact, alt string, f Fmt) Value {
	if !f.Alternate {
		return Short(NewShortString(compact))
	}
	return Short(NewShortString(alt)).PadLeft(f.Indentation)
}

// comma returns CommaTerm for the last of n elements and CommaSep otherwise.
func comma(f Fmt, i, n int) Value {
	if i == n-1 {
		return CommaTerm(f)
	}
	return CommaSep(f)
}

// List returns a bracketed list of elems, like [a, b]. With f.Alternate each
// element goes on its own line, indented one level past f.Indentation.
// Nested lists should be built with f.Indent() so their brackets line up.
func List(f Fmt, elems ...Value) Value {
	if len(elems) == 0 {
		return Short(NewShortString("[]"))
	}
	vs := make([]Value, 0, 2*len(elems)+2)
	vs = append(vs, OpenBracket(f))
	for i, e := range elems {
		vs = append(vs, e, comma(f, i, len(elems)))
	}
	return Group(append(vs, CloseBracket(f))...)
}

// Field is a named struct field.
type Field struct {
	Name  string
	Value Value
}

// Struct returns name followed by its braced fields, like
// Foo { x: 1, y: 2 }. Field values should be built with f.Indent(). A
// struct without fields is written as its name alone.
func Struct(f Fmt, name string, fields ...Field) Value {
	if len(fields) == 0 {
		return Text(name)
	}
	vs := make([]Value, 0, 4*len(fields)+3)
	vs = append(vs, Text(name), OpenBrace(f))
	for i, fd := range fields {
		vs = append(vs, Text(fd.Name), Short(NewShortString(": ")), fd.Value, comma(f, i, len(fields)))
	}
	return Group(append(vs, CloseBrace(f))...)
}

// Tuple returns name followed by its parenthesized elements, like
// Bar(false, true). Elements should be built with f.Indent(). A tuple
// without elements is written as its name alone.
func Tuple(f Fmt, name string, elems ...Value) Value {
	if len(elems) == 0 {
		return Text(name)
	}
	vs := make([]Value, 0, 2*len(elems)+3)
	vs = append(vs, Text(name), OpenParen(f))
	for i, e := range elems {
		vs = append(vs, e, comma(f, i, len(elems)))
	}
	return Group(append(vs, CloseParen(f))...)
}

// Strs returns a list of strings written in f's mode.
func Strs(f Fmt, ss ...string) Value {
	elems := make([]Value, len(ss))
	for i, s := range ss {
		elems[i] = Str(s, f)
	}
	return List(f, elems...)
}

// Ints returns a list of integers.
func Ints(f Fmt, ns ...int64) Value {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = Int(n, f)
	}
	return List(f, elems...)
}
