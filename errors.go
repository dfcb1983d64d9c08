package verilog

import (
	"fmt"
)

// BadStandardError is returned when a language standard name matches
// neither a canonical standard nor an accepted alias.
type BadStandardError struct {
	Input string // The offending standard name
}

func (e *BadStandardError) Error() string {
	return fmt.Sprintf("unknown language standard %q", e.Input)
}
