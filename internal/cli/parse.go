// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <expression>...",
	Short: "Resolve a date/time expression",
	Long: `Resolve a date/time expression, the arguments being joined by spaces.

Example:
  strtotime parse next friday 10:00
  strtotime parse --ref 2024-03-14 "+1 week 2 days" --format unix
  strtotime parse "31 Dec 2003 23:59:59 -0700" --format yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(settings)

	parser, err := newParser(settings, logger)
	if err != nil {
		return err
	}
	ref, err := reference(parser)
	if err != nil {
		return err
	}

	expr := strings.Join(args, " ")
	res, err := parser.Resolve(expr, ref)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", expr, err)
	}
	if res.SoftErrors > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d part(s) of %q ignored\n", res.SoftErrors, expr)
	}

	return writeResult(cmd.OutOrStdout(), res, settings.Format)
}
