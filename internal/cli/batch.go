// SPDX-License-Identifier: MIT
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/fisherprime/strtotime/batch"
)

var batchTimeout time.Duration

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve expressions from a file, one per line",
	Long: `Batch resolves expressions concurrently against one reference time:
- Read expressions from the input file (one per line, "-" for stdin)
- Skip blank lines & lines starting with '#'
- Print results in input order

Example:
  strtotime batch dates.txt
  strtotime batch - --pool-size 16 --format unix < dates.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("pool-size", batch.DefPoolSize, "number of concurrent resolutions")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", time.Minute, "total timeout for the batch")

	_ = viper.BindPFlag("pool_size", batchCmd.Flags().Lookup("pool-size"))
}

func runBatch(cmd *cobra.Command, args []string) error {
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

	inputs, err := readInputs(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	r := batch.New(batch.WithParser(parser), batch.WithLogger(logger), batch.WithPoolSize(settings.PoolSize))
	outcomes, stats, err := r.Resolve(ctx, inputs, ref)

	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(out, "%d\t%s\terror: %v\n", o.Index+1, o.Input, o.Err)
			continue
		}

		line, fErr := formatResult(o.Result, settings.Format)
		if fErr != nil {
			return fErr
		}
		fmt.Fprintf(out, "%d\t%s\t%s\n", o.Index+1, o.Input, strings.TrimRight(line, "\n"))
	}

	fmt.Fprintf(os.Stderr, "resolved: %d, failed: %d, soft errors: %d\n", stats.Resolved, stats.Failed, stats.SoftErrors)

	return err
}

// readInputs reads the non-blank, non-comment lines of a file, or of stdin for "-".
func readInputs(stdin io.Reader, name string) (inputs []string, err error) {
	src := stdin
	if name != "-" {
		f, oErr := os.Open(name)
		if oErr != nil {
			return nil, fmt.Errorf("error opening input: %w", oErr)
		}
		defer f.Close()
		src = f
	}

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error reading input: %w", err)
	}

	return
}
