// Package boundfmt renders diagnostic messages into fixed-size buffers.
//
// A message is an ordered list of groups of [Value] descriptors. Each value
// is a piece of text, an integer, or a nested [Group], together with the
// spaces written before and after it and a [Mode] that decides whether the
// text is written verbatim ([Display]) or quoted and escaped ([Quoted]).
//
//	boundfmt.Sprint([]boundfmt.Value{
//		boundfmt.Text("the error was "),
//		boundfmt.Int(100, boundfmt.FmtDisplay),
//		boundfmt.Text(" and "),
//		boundfmt.Str("\nHello\tworld", boundfmt.FmtDebug),
//	})
//	// the error was 100 and "\nHello\tworld"
//
// # Bounded Rendering
//
// The renderer never allocates and never writes past its buffer. [Render]
// first tries a small buffer and only moves to the next size in
// [Capacities] when the message did not fit. The last size is the hard cap
// ([MaxMessageLen]): anything beyond it is dropped and the message is
// marked [Message.Truncated]. Being too long is never an error.
//
// Quoted text is escaped byte by byte:
//
//   - \n \t \r \\ \" and \0 use a backslash shorthand
//   - other bytes below 0x20 or from 0x7F up use \xHH
//   - everything else is written as-is
//
// A cut never splits an escape sequence. A quoted value that was cut has no
// closing quote, which is how truncation shows up in the output.
//
// # Terminal Actions
//
// What happens with the rendered text is up to the caller. [Sprint],
// [NewError], [Panic], [Write] and [Log] cover the common cases; [Fill]
// renders into a caller buffer in one pass and reports [ErrNotEnoughSpace]
// instead of truncating.
//
// # Construction Helpers
//
// [List], [Strs], [Ints] and [Separator] build bracketed lists in the
// compact or the alternate (one element per line) layout. [Struct] and
// [Tuple] build Foo { x: 1 } and Bar(1, 2) from the same delimiters
// ([OpenBrace], [CloseBrace], [OpenParen], [CloseParen], [CommaSep],
// [CommaTerm]), which are also exported for hand-built layouts. [Align]
// pads a value to a column width measured in terminal cells.
//
// # Errors
//
//   - [ErrNotEnoughSpace] — the message does not fit a [Fill] buffer
//   - [ErrInternal] — the final render attempt ran out of space; this is a
//     bug and [Render] panics with it
//   - [ErrMessage] — matches errors returned by [NewError]
package boundfmt
