package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netcourse/netcourse/internal/chatapi"
	"github.com/netcourse/netcourse/internal/course"
	"github.com/netcourse/netcourse/internal/server"
	"github.com/netcourse/netcourse/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the course web server",
	Long: `Serves the course page, its JSON API, and the chat gateway that relays
questions to the language-model backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}

		siteOpts := site.Options{
			Catalog:      catalog,
			Renderer:     course.NewRenderer(0),
			TerminalURL:  cfg.Terminal.URL,
			DefaultTheme: cfg.UI.DefaultTheme,
			Logger:       logger,
		}
		idx, err := openLessonIndex(cfg, logger)
		if err != nil {
			return err
		}
		if idx != nil {
			siteOpts.Searcher = idx
		}
		pages, err := site.NewHandler(siteOpts)
		if err != nil {
			return fmt.Errorf("creating page handler: %w", err)
		}

		client := newChatClient(cfg, logger)
		gateway := chatapi.New(chatapi.Options{
			Asker:        client,
			RateLimitRPM: cfg.Chat.RateLimitRPM,
			MaxHistory:   cfg.Chat.MaxHistory,
			Logger:       logger,
		})

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			RequestTimeout: server.RequestTimeoutFor(client.Budget()),
		}, logger)
		pages.RegisterRoutes(srv.Router())
		gateway.RegisterRoutes(srv.Router())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("netcourse starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Server.Port),
			zap.Strings("chat_backends", client.Candidates()),
			zap.Int("lessons", catalog.Count()),
			zap.Bool("search", idx != nil),
		)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
