package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdlkit/verilog"
)

var noComma bool

var expandCmd = &cobra.Command{
	Use:   "expand BUS...",
	Short: "Expand bus range expressions into scalar references",
	Long: `Expand each bus expression and print one scalar reference per line.

Examples:
  vlg expand 'data[7:0]'
  vlg expand 'foo[5:1:2,10:9]'
  vlg expand --nocomma 'a,b[1:0]'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)

	expandCmd.Flags().BoolVar(&noComma, "nocomma", false,
		"treat commas as ordinary text (no multi-segment ranges)")
}

func runExpand(cmd *cobra.Command, args []string) error {
	for _, bus := range args {
		var refs []string
		if noComma {
			refs = verilog.SplitBusNoComma(bus)
		} else {
			refs = verilog.SplitBus(bus)
		}
		for _, ref := range refs {
			fmt.Println(ref)
		}
	}
	return nil
}
