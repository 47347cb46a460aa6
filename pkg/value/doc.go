// Package value formats Go values as OpenSCAD literals.
//
// Every type in this package implements [Value], whose Literal method returns
// the canonical, locale-independent source text for the value:
//
//	value.Number(1.50).Literal()          // 1.5
//	value.Bool(true).Literal()            // true
//	value.String(`say "hi"`).Literal()    // "say \"hi\""
//	value.Vec2(5, 5).Literal()            // [5, 5]
//	value.RGBA(1, 0, 0, 0.5).Literal()    // [1, 0, 0, 0.5]
//
// # Numbers
//
// Floating point numbers are rounded to [Precision] decimal places and printed
// without exponent, trailing zeros or a trailing decimal point. Negative zero
// prints as 0. Non-finite numbers have no OpenSCAD literal, so they print as
// the expressions 0/0, 1/0 and -1/0, which evaluate to nan, inf and -inf.
//
// # Decoding
//
// [FromAny] converts decoded TOML/JSON data (numbers, booleans, strings and
// nested arrays) into values, which is how model files supply parameters.
package value
