// Package verilog provides language-level utilities for Verilog,
// SystemVerilog, and Verilog-AMS source text.
//
// The package answers four families of questions that parsers,
// preprocessors, and EDA tools build on:
//   - Keyword, compiler-directive, and gate-primitive classification,
//     parameterized by the language standard in effect
//   - Interpretation of Verilog sized and based numeric literals
//     (width, signedness, and value in several forms)
//   - Comment stripping that respects string literals and preserves
//     line numbering
//   - Expansion of bus range expressions into scalar signal references
//
// # Quick Start
//
// Classification consults the process-wide active standard:
//
//	std, ok := verilog.IsKeyword("logic") // StdSV2005, true under the default standard
//
// Numeric literals:
//
//	v, ok := verilog.NumberValue("32'hfeed") // 65261, true
//	w, ok := verilog.NumberBits("32'hfeed")  // 32, true
//
// Comment stripping and bus expansion:
//
//	verilog.StripComments("a/*b*/c")  // "ac"
//	verilog.SplitBus("[31,5:4]")      // ["[31]", "[5]", "[4]"]
//
// # Language Standards
//
// The active standard is held by a [Language] value. The package-level
// classification functions use a process-global default initialized to
// the newest supported IEEE 1800 standard. Callers that need an
// independent standard setting (for example per-file `begin_keywords
// regions) should carry their own [Language]:
//
//	lang := verilog.New(verilog.Std1995)
//	_, ok := lang.IsKeyword("logic") // false: logic is SystemVerilog
//
// # Error Handling
//
// Malformed numeric literals and bus expressions are not errors: the
// number functions report absence with a false second result, and the
// bus expander returns a best-effort expansion. The only error type is
// [BadStandardError], returned when a standard name is unknown.
//
// # Thread Safety
//
// Classification reads are lock-free and safe for concurrent use.
// [Language.SetStandard] swaps the active standard atomically; callers
// that mutate the standard from multiple goroutines must serialize
// those writes themselves.
package verilog
