package config

import (
	"log/slog"

	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra/discord"
	"github.com/urfave/cli/v3"
)

type Discord struct {
	token       types.BotToken `masq:"secret"`
	superAdmins []string
}

func (x *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GRAW_DISCORD_TOKEN"),
			Required:    true,
		},
		&cli.StringSliceFlag{
			Name:        "super-admin",
			Usage:       "User ID allowed to manage every guild (repeatable)",
			Category:    "Discord",
			Destination: &x.superAdmins,
			Sources:     cli.EnvVars("GRAW_SUPER_ADMINS"),
		},
	}
}

func (x *Discord) New() (*discord.Client, error) {
	return discord.New(x.token)
}

func (x *Discord) SuperAdmins() []types.UserID {
	ids := make([]types.UserID, 0, len(x.superAdmins))
	for _, id := range x.superAdmins {
		if id != "" {
			ids = append(ids, types.UserID(id))
		}
	}
	return ids
}

func (x *Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Any("superAdmins", x.superAdmins),
	)
}
