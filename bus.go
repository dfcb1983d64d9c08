package verilog

import (
	"github.com/hdlkit/verilog/internal/busexpand"
)

// SplitBus expands a bus expression into an ordered list of scalar
// references. Each bracketed group may hold comma-separated segments
// of the form a, a:b, or a:b:s, where the positions accept any Verilog
// numeric literal. Multiple groups zip to the longest group's length
// with shorter groups cycling, so "x[1:0]y[3:0]" expands to four
// references with the two-element side repeating.
//
// A bus without brackets is returned unchanged as a one-element list.
// Malformed input yields a best-effort expansion, never an error.
func SplitBus(bus string) []string {
	return busexpand.Split(bus)
}

// SplitBusNoComma expands the restricted prefix[a:b]suffix form, with
// no comma-separated segments and no stride. Commas are ordinary text.
func SplitBusNoComma(bus string) []string {
	return busexpand.SplitNoComma(bus)
}
