package verilog

import (
	"github.com/hdlkit/verilog/internal/strip"
)

// StripComments returns text with // line comments and /* */ block
// comments removed. Comment tokens inside double-quoted strings are
// not treated as comments, and newlines inside comments are preserved
// so downstream line numbering is unaffected.
//
// Quote state toggles on every '"': a backslash does not escape a
// quote inside a string.
func StripComments(text string) string {
	return strip.Comments(text)
}
