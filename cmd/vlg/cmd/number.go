package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdlkit/verilog"
)

var numberCmd = &cobra.Command{
	Use:   "number LITERAL...",
	Short: "Decode Verilog numeric literals",
	Long: `Decode each literal and print its width, signedness, base, value,
and bit vector.

Examples:
  vlg number 32'sh1b
  vlg number 4'b111 12'o17 42`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	for _, lit := range args {
		n, ok := verilog.ParseNumber(lit)
		if !ok {
			fmt.Printf("%s\tnot a number\n", lit)
			continue
		}
		width := "unsized"
		if w, sized := n.Width(); sized {
			width = fmt.Sprintf("%d", w)
		}
		fmt.Printf("%s\twidth=%s signed=%v base=%s value=%d big=%s bits=%s\n",
			lit, width, n.Signed(), n.Base(), n.Value(), n.BigInt(), n.BitVector())
	}
	return nil
}
