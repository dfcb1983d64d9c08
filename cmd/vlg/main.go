// vlg - Verilog language utilities
//
// Command-line access to keyword classification, numeric literal
// parsing, comment stripping, and bus expression expansion.
package main

import (
	"github.com/hdlkit/verilog/cmd/vlg/cmd"
)

func main() {
	cmd.Execute()
}
