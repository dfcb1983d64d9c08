package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdlkit/verilog"
)

var stdFlag string

var rootCmd = &cobra.Command{
	Use:   "vlg",
	Short: "Verilog language utilities",
	Long: `Utilities for Verilog, SystemVerilog, and Verilog-AMS source text:
keyword classification, numeric literal parsing, comment stripping,
and bus expression expansion.

Examples:
  vlg keyword logic wire uwire                # classify symbols
  vlg keyword --std 1364-1995 logic           # under an older standard
  vlg number 32'sh1b 4'b111 12'o17            # decode literals
  vlg strip design.v                          # remove comments
  vlg expand 'foo[5:1:2,10:9]'                # expand a bus range`,
	Version: verilog.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if stdFlag == "" {
			return nil
		}
		_, err := verilog.SetStandard(stdFlag)
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stdFlag, "std", "",
		"language standard (e.g. 1364-2001, 1800-2017, VAMS; default: latest)")
}
