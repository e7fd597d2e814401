package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/embeddings"
	"github.com/netcourse/netcourse/internal/lessonindex"
	"github.com/netcourse/netcourse/internal/progress"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the semantic lesson search index",
	Long: `Embeds every lesson with the configured embedding provider and saves the
index to search.index_dir. The web server and the MCP server load it at
startup to answer lesson searches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		embedder, err := embeddings.New(cfg.Search)
		if err != nil {
			return fmt.Errorf("%w\nSet search.embedding_provider in %s", err, cfgFile)
		}
		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}

		idx, err := lessonindex.New(embedder)
		if err != nil {
			return err
		}
		reporter := progress.NewReporter(os.Stderr, "Indexing lessons")
		if err := idx.Build(context.Background(), catalog, reporter); err != nil {
			return fmt.Errorf("building lesson index: %w", err)
		}
		if err := idx.Persist(cfg.Search.IndexDir); err != nil {
			return fmt.Errorf("saving lesson index: %w", err)
		}

		logger.Info("lesson index saved",
			zap.Int("lessons", idx.Count()),
			zap.String("dir", cfg.Search.IndexDir),
			zap.String("embedder", embedder.Name()),
		)
		return nil
	},
}

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search lessons semantically",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		idx, err := openLessonIndex(cfg, logger)
		if err != nil {
			return err
		}
		if idx == nil {
			return fmt.Errorf("lesson search is unavailable: configure search.embedding_provider and run `netcourse index`")
		}

		hits, err := idx.Search(context.Background(), args[0], searchLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(hits) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}
		for _, h := range hits {
			fmt.Fprintf(out, "%5.1f%%  %s/%s  %s\n", h.Similarity*100, h.ModuleID, h.LessonID, h.Title)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of results")
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}
