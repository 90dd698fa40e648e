// SPDX-License-Identifier: MIT

// Package cli implements the strtotime command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the strtotime command.
var Version = "v0.1.0"

var (
	cfgFile string
	debug   bool
	format  string
	refExpr string
	locName string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "strtotime",
	Short: "Parse free-form English date/time expressions",
	Long: `strtotime resolves expressions such as "next friday 10:00", "+1 week 2 days"
or "31 Dec 2003 23:59:59 -0700" against a reference time.

Unset fields are filled in from the reference time (default: now); relative
parts are applied afterwards.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strtotime %s\n", Version)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.strtotime/config.yaml)")
	flags.BoolVarP(&debug, "debug", "d", false, "log scanner & parser state")
	flags.StringVarP(&format, "format", "f", defFormat, "output format (rfc3339, unix, yaml, debug)")
	flags.StringVarP(&refExpr, "ref", "r", "", "reference time expression (default: now)")
	flags.StringVarP(&locName, "location", "l", "", "IANA location of results without a zone (default: local)")

	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("location", flags.Lookup("location"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.strtotime")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match STRTOTIME_*
	viper.SetEnvPrefix("STRTOTIME")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("debug") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
