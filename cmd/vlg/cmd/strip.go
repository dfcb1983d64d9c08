package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdlkit/verilog"
)

var stripCmd = &cobra.Command{
	Use:   "strip [FILE]",
	Short: "Remove comments from Verilog source",
	Long: `Remove // and /* */ comments from FILE (or stdin) and write the
result to stdout. String literals are respected and newlines inside
comments are preserved, so line numbers stay stable.

Examples:
  vlg strip design.v
  cat design.v | vlg strip`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read stdin: %w", err)
		}
	}
	_, err = io.WriteString(os.Stdout, verilog.StripComments(string(src)))
	return err
}
