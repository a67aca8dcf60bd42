package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "polyconf",
	Short:         "Polycom phone configuration manager",
	Long:          `polyconf builds Polycom provisioning files (<ext>.cfg) from line, server and BLF settings, and serves the configurator API.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().String("environment", "", "development or production (app.environment)")
	bindFlag("app.environment", rootCmd.PersistentFlags().Lookup("environment"))
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
