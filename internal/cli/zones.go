// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/fisherprime/strtotime/zone"
)

// zonesCmd represents the zones command
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the known timezone abbreviations",
	Long: `List the timezone abbreviations & their UTC offsets, including those added by
the configuration's "abbreviations" map. IANA names (e.g. Europe/Paris) are
resolved from the system's zone database & are not listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		table := zone.DefAbbreviations().With(settings.Abbreviations)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range table.Names() {
			minutes := table[name]

			sign := '+'
			if minutes < 0 {
				sign, minutes = '-', -minutes
			}
			fmt.Fprintf(w, "%s\t%c%02d:%02d\n", name, sign, minutes/60, minutes%60)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
