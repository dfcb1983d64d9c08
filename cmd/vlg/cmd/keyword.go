package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdlkit/verilog"
)

var keywordCmd = &cobra.Command{
	Use:   "keyword SYMBOL...",
	Short: "Classify symbols as keywords, directives, or gate primitives",
	Long: `Classify each symbol under the active standard and print the standard
that introduced it. Compiler directives (backtick-prefixed) and gate
primitives are classified independently of the active standard.

Examples:
  vlg keyword wire logic uwire
  vlg keyword --std 1364-1995 logic
  vlg keyword '` + "`define" + `' nand`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeyword,
}

func init() {
	rootCmd.AddCommand(keywordCmd)
}

func runKeyword(cmd *cobra.Command, args []string) error {
	for _, sym := range args {
		switch {
		case isDirective(sym):
			std, ok := verilog.IsCompDirect(sym)
			if !ok {
				fmt.Printf("%s\tnot a compiler directive\n", sym)
				continue
			}
			fmt.Printf("%s\tcompiler directive\t%s\n", sym, std)
		default:
			if std, ok := verilog.IsGatePrim(sym); ok {
				fmt.Printf("%s\tgate primitive\t%s\n", sym, std)
				continue
			}
			std, ok := verilog.IsKeyword(sym)
			if !ok {
				fmt.Printf("%s\tnot a keyword under %s\n", sym, verilog.ActiveStandard())
				continue
			}
			fmt.Printf("%s\tkeyword\t%s\n", sym, std)
		}
	}
	return nil
}

func isDirective(sym string) bool {
	return len(sym) > 0 && sym[0] == '`'
}
