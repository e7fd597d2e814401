package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netcourse/netcourse/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "netcourse",
	Short: "Interactive networking course with a simulated CLI and an AI tutor",
	Long: `NetCourse serves a multi-module networking course: lessons, a simulated
command line for practice, an embedded terminal emulator, and a chat panel
that relays questions to a language-model backend, trying each configured
backend address in turn.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Variables already in the environment win over .env entries.
		return config.LoadDotEnv(".env")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".netcourse.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
