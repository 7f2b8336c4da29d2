package command

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/potluckapp/potluck/internal/app"
	"github.com/potluckapp/potluck/internal/app/devseed"
	"github.com/potluckapp/potluck/internal/config"
	"github.com/potluckapp/potluck/internal/sec"
	"github.com/potluckapp/potluck/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the recipe sharing web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			grp, ctx := errgroup.WithContext(cmd.Context())

			// In dev mode, make sure there is something to look at.
			if cfg.DevMode {
				if err := devseed.Seed(ctx, logger, store); err != nil {
					return err
				}
			}

			sessions := sec.NewSessions(time.Duration(cfg.SessionTTL))
			appServer := app.New(cfg, logger, store, sessions)

			serveApp(ctx, grp, cfg, logger, appServer)
			return grp.Wait()
		},
	}
}

func serveApp(
	ctx context.Context,
	grp *errgroup.Group,
	cfg *config.Config,
	logger *slog.Logger,
	srv *echo.Echo,
) {
	listener, err := server.Listen(ctx, cfg.WebAddress)
	if err != nil {
		grp.Go(func() error { return err })
		return
	}

	logger.InfoContext(ctx,
		"starting app server...",
		slog.String("address", cfg.WebAddress),
	)
	server.Serve(ctx, grp, srv.Server, listener, server.ShutdownTimeout)
}
