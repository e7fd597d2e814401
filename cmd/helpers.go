package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/chatclient"
	"github.com/netcourse/netcourse/internal/config"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/embeddings"
	"github.com/netcourse/netcourse/internal/lessonindex"
	"github.com/netcourse/netcourse/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `netcourse init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setup loads the config and builds the logger every command shares.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, logger, nil
}

func newChatClient(cfg *config.Config, logger *zap.Logger) *chatclient.Client {
	return chatclient.New(chatclient.Options{
		BaseURL:  cfg.Chat.BaseURL,
		Defaults: cfg.Chat.BaseURLs(),
		Timeout:  cfg.Chat.Timeout,
		Logger:   logger,
	})
}

// loadCatalog returns the built-in course with any lessons from
// content.dir merged over it.
func loadCatalog(cfg *config.Config, logger *zap.Logger) (*course.Catalog, error) {
	catalog := course.Default()
	if cfg.Content.Dir == "" {
		return catalog, nil
	}

	files, err := course.LoadDir(cfg.Content.Dir, cfg.Content.Patterns())
	if err != nil {
		return nil, err
	}
	merged, err := catalog.Merge(files)
	if err != nil {
		return nil, fmt.Errorf("merging lessons from %s: %w", cfg.Content.Dir, err)
	}
	logger.Info("loaded lesson overrides", zap.String("dir", cfg.Content.Dir), zap.Int("files", len(files)))
	return merged, nil
}

// openLessonIndex loads the saved lesson index. It returns nil without error
// when search is disabled or no index has been built yet.
func openLessonIndex(cfg *config.Config, logger *zap.Logger) (*lessonindex.Index, error) {
	embedder, err := embeddings.New(cfg.Search)
	if errors.Is(err, embeddings.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	idx, err := lessonindex.New(embedder)
	if err != nil {
		return nil, err
	}
	if err := idx.Load(cfg.Search.IndexDir); err != nil {
		if errors.Is(err, lessonindex.ErrNoIndex) {
			logger.Warn("lesson search disabled until the index is built; run `netcourse index`",
				zap.String("dir", cfg.Search.IndexDir))
			return nil, nil
		}
		return nil, fmt.Errorf("loading lesson index: %w", err)
	}
	logger.Info("lesson index loaded", zap.Int("lessons", idx.Count()), zap.String("embedder", embedder.Name()))
	return idx, nil
}
