package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/simcli"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List course modules and lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, m := range catalog.Modules() {
			fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Title)
			for _, l := range m.Lessons {
				fmt.Fprintf(w, "  %s\t%s\n", l.ID, l.Title)
			}
		}
		return w.Flush()
	},
}

var lessonsShowHTML bool

var lessonsShowCmd = &cobra.Command{
	Use:   "show [module] [lesson]",
	Short: "Print one lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}
		l, err := catalog.Lesson(args[0], args[1])
		if err != nil {
			return fmt.Errorf("lesson %s/%s: %w", args[0], args[1], err)
		}

		out := cmd.OutOrStdout()
		if lessonsShowHTML {
			html, err := course.NewRenderer(0).Render(args[0], l)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, html)
			return nil
		}

		fmt.Fprintln(out, l.Body)
		fmt.Fprintf(out, "\nHint: %s\n", simcli.Hint(l.Topic))
		return nil
	},
}

func init() {
	lessonsShowCmd.Flags().BoolVar(&lessonsShowHTML, "html", false, "render the lesson to HTML")
	lessonsCmd.AddCommand(lessonsShowCmd)
	rootCmd.AddCommand(lessonsCmd)
}
