package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/chatclient"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the tutor in the terminal",
	Long:  `Starts an interactive session that keeps conversation history. Type /reset to start over and /exit to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		conv := chatclient.NewConversation(newChatClient(cfg, logger), cfg.Chat.MaxHistory)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Ask anything about networking. /reset clears the history, /exit quits.")

		for {
			prompt := promptui.Prompt{Label: "you"}
			line, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			if err != nil {
				return err
			}

			switch line = strings.TrimSpace(line); line {
			case "":
				continue
			case "/exit", "/quit":
				return nil
			case "/reset":
				conv.Reset()
				fmt.Fprintln(out, "History cleared.")
				continue
			}

			reply, err := conv.Send(context.Background(), line)
			if err != nil {
				logger.Debug("ask failed", zap.Error(err))
				fmt.Fprintf(out, "tutor> %s (%v)\n", reply, err)
				continue
			}
			fmt.Fprintf(out, "tutor> %s\n", reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
