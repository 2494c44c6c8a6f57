package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/graw/pkg/cli/config"
	"github.com/secmon-lab/graw/pkg/controller/gateway"
	"github.com/secmon-lab/graw/pkg/controller/server"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/infra/svn"
	"github.com/secmon-lab/graw/pkg/scheduler"
	"github.com/secmon-lab/graw/pkg/supervisor"
	"github.com/secmon-lab/graw/pkg/tenant"
	"github.com/secmon-lab/graw/pkg/usecase"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		svnPath     string
		pollWorkers int64
		apiToken    types.APIToken

		discordCfg config.Discord
		cryptCfg   config.Crypt
		database   config.Database
		firestore  config.Firestore
		sentry     config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GRAW_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "svn-path",
			Usage:       "Path to svn binary",
			Value:       "svn",
			Sources:     cli.EnvVars("GRAW_SVN_PATH"),
			Destination: &svnPath,
		},
		&cli.Int64Flag{
			Name:        "poll-workers",
			Usage:       "Number of workers shared by all repository polls",
			Value:       4,
			Sources:     cli.EnvVars("GRAW_POLL_WORKERS"),
			Destination: &pollWorkers,
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "Bearer token of the tenant config API, disabled if empty",
			Sources:     cli.EnvVars("GRAW_API_TOKEN"),
			Destination: (*string)(&apiToken),
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			discordCfg.Flags(),
			cryptCfg.Flags(),
			database.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("SVNPath", svnPath),
				slog.Any("PollWorkers", pollWorkers),
				slog.Any("APIToken", apiToken),
				slog.Any("Discord", &discordCfg),
				slog.Any("Crypt", &cryptCfg),
				slog.Any("Database", &database),
				slog.Any("Firestore", &firestore),
				slog.Any("Sentry", &sentry),
			)

			if pollWorkers < 1 {
				return goerr.New("poll-workers must be positive", goerr.V("poll-workers", pollWorkers))
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			store, err := config.NewTenantStore(ctx, &database, &firestore)
			if err != nil {
				return err
			}

			discordClient, err := discordCfg.New()
			if err != nil {
				return err
			}

			crypter, err := cryptCfg.New()
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithRepositoryFactory(svn.NewFactory(svnPath)),
				infra.WithChannelResolver(discordClient),
				infra.WithCrypter(crypter),
				infra.WithTenantStore(store),
				infra.WithPlatform(discordClient),
			)

			sched := scheduler.New(int(pollWorkers))
			sup := supervisor.New(clients, sched)

			registry := tenant.New(store, discordClient, discordCfg.SuperAdmins())
			registry.AddStatusListener(sup)
			registry.AddConfigListener(sup)

			uc := usecase.New(clients, sup, registry)
			s := server.New(uc, server.WithMetrics(), server.WithAPIToken(apiToken))

			// Guilds are activated by the GuildCreate events that follow
			// the gateway connection.
			events := gateway.New(registry, uc, discordClient, clients.HTTPClient())
			removeHandlers := events.Register(ctx, discordClient.Session())
			if err := discordClient.Open(); err != nil {
				return err
			}

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			var result error
			select {
			case result = <-serverErr:

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					result = goerr.Wrap(err, "failed to shutdown server")
				}
			}

			removeHandlers()
			if err := discordClient.Close(); err != nil {
				errutil.HandleError(ctx, "failed to close discord session", err)
			}
			for _, id := range registry.ActiveTenants() {
				registry.DeactivateTenant(ctx, id)
			}
			sup.Shutdown(ctx)
			sched.Shutdown()
			sentry.Flush(5 * time.Second)

			return result
		},
	}
}
