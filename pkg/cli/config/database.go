package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/repository/postgres"
	"github.com/urfave/cli/v3"
)

type Database struct {
	dsn string `masq:"secret"`
}

func (x *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database-dsn",
			Usage:       "PostgreSQL connection string (optional)",
			Category:    "Storage",
			Sources:     cli.EnvVars("GRAW_DATABASE_DSN"),
			Destination: &x.dsn,
		},
	}
}

func (x *Database) Enabled() bool {
	return x.dsn != ""
}

func (x *Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.Enabled()),
	)
}

func (x *Database) NewTenantStore(ctx context.Context) (interfaces.TenantStore, error) {
	return postgres.New(ctx, x.dsn)
}
