package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/netcourse/netcourse/internal/simcli"
)

var cliCmd = &cobra.Command{
	Use:   "cli [command line]",
	Short: "Practice with the simulated networking command line",
	Long: `Runs the simulated command line used by the course page. With arguments
it runs them once; without, it starts a prompt. Nothing touches the real
network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			printResult(cmd, simcli.Run(strings.Join(args, " ")))
			return nil
		}

		fmt.Fprintln(out, "Simulated CLI. Type 'help' for commands, 'exit' to quit.")
		for {
			prompt := promptui.Prompt{Label: "$"}
			line, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if strings.TrimSpace(line) == "exit" {
				return nil
			}
			printResult(cmd, simcli.Run(line))
		}
	},
}

func printResult(cmd *cobra.Command, res simcli.Result) {
	out := cmd.OutOrStdout()
	if res.Clear {
		fmt.Fprint(out, "\033[H\033[2J")
		return
	}
	if res.Output != "" {
		fmt.Fprintln(out, res.Output)
	}
}

func init() {
	rootCmd.AddCommand(cliCmd)
}
