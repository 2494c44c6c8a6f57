package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry receives errors that end in errutil.HandleError, such as failed
// polls and rejected tenant configs.
type Sentry struct {
	dsn         string
	environment string
	release     string
	enabled     bool
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("GRAW_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GRAW_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name reported to Sentry",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("GRAW_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", x.environment))
	}
	x.enabled = true

	return nil
}

// Flush waits for buffered events. It does nothing if Configure did not
// initialize the client.
func (x *Sentry) Flush(timeout time.Duration) bool {
	if !x.enabled {
		return true
	}
	return sentry.Flush(timeout)
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("DSN", x.dsn != ""),
		slog.Any("Environment", x.environment),
		slog.Any("Release", x.release),
	)
}
