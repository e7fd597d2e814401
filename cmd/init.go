package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netcourse/netcourse/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a netcourse configuration with an interactive wizard",
	Long:  `Runs an interactive wizard for the backend addresses, server port, theme and lesson search, and writes the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (port %d). Start the course with `netcourse serve`.\n", cfgFile, cfg.Server.Port)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
