package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/graw/pkg/controller/server"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

// configOptions are the per-field overrides of the config command. Only the
// fields whose flag is set on the command line are sent.
type configOptions struct {
	repoURL         string
	username        string
	password        types.RepoPassword
	channel         string
	maintainerRole  string
	interval        int64
	responsive      bool
	dateFormat      string
	messageTemplate string
}

func (x *configOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "repo-url", Usage: "Repository URL", Category: "Tenant", Destination: &x.repoURL},
		&cli.StringFlag{Name: "username", Usage: "Repository username", Category: "Tenant", Destination: &x.username},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Repository password, empty to clear",
			Category:    "Tenant",
			Sources:     cli.EnvVars("GRAW_REPO_PASSWORD"),
			Destination: (*string)(&x.password),
		},
		&cli.StringFlag{Name: "channel", Usage: "Output channel ID", Category: "Tenant", Destination: &x.channel},
		&cli.StringFlag{Name: "maintainer-role", Usage: "Role allowed to manage the tenant", Category: "Tenant", Destination: &x.maintainerRole},
		&cli.Int64Flag{Name: "interval", Usage: "Poll interval in seconds", Category: "Tenant", Destination: &x.interval},
		&cli.BoolFlag{Name: "responsive", Usage: "Reply to chat commands", Category: "Tenant", Destination: &x.responsive},
		&cli.StringFlag{Name: "date-format", Usage: "Date pattern of notifications", Category: "Tenant", Destination: &x.dateFormat},
		&cli.StringFlag{Name: "message-template", Usage: "Template of notifications", Category: "Tenant", Destination: &x.messageTemplate},
	}
}

// patch builds a ConfigPatch of the fields selected by isSet.
func (x *configOptions) patch(isSet func(name string) bool) (*model.ConfigPatch, error) {
	var p model.ConfigPatch
	if isSet("repo-url") {
		p.RepoURL = &x.repoURL
	}
	if isSet("username") {
		p.Username = &x.username
	}
	if isSet("password") {
		p.Password = &x.password
	}
	if isSet("channel") {
		ch := types.ChannelID(x.channel)
		p.Channel = &ch
	}
	if isSet("maintainer-role") {
		role := types.RoleID(x.maintainerRole)
		p.MaintainerRole = &role
	}
	if isSet("interval") {
		interval := int(x.interval)
		p.PollInterval = &interval
	}
	if isSet("responsive") {
		p.Responsive = &x.responsive
	}
	if isSet("date-format") {
		p.DateFormat = &x.dateFormat
	}
	if isSet("message-template") {
		p.MessageTemplate = &x.messageTemplate
	}

	if err := p.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid tenant option", goerr.V("error", err.Error()))
	}
	return &p, nil
}

// configClient submits config patches to a running server.
type configClient struct {
	httpClient infra.HTTPClient
	serverURL  string
	apiToken   types.APIToken
	userID     types.UserID
}

func (x *configClient) submit(ctx context.Context, tenantID types.TenantID, patch *model.ConfigPatch) (*model.TenantConfig, error) {
	endpoint, err := url.JoinPath(x.serverURL, "tenants", string(tenantID), "config")
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid server URL", goerr.V("server_url", x.serverURL))
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode config patch")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build config request", goerr.V("url", endpoint))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(x.apiToken))
	req.Header.Set(server.UserHeader, string(x.userID))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send config request", goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("config request was rejected",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	var cfg model.TenantConfig
	if err := json.Unmarshal(respBody, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config response")
	}
	return &cfg, nil
}

func configCommand() *cli.Command {
	var (
		tenantID string
		opts     configOptions
		client   = configClient{httpClient: http.DefaultClient}
	)

	return &cli.Command{
		Name:  "config",
		Usage: "Update the configuration of a tenant on a running server",
		Flags: slice.Flatten(
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "tenant",
					Aliases:     []string{"t"},
					Usage:       "Tenant (guild) ID",
					Required:    true,
					Destination: &tenantID,
				},
				&cli.StringFlag{
					Name:        "server-url",
					Usage:       "Base URL of the graw server",
					Value:       "http://127.0.0.1:8000",
					Sources:     cli.EnvVars("GRAW_SERVER_URL"),
					Destination: &client.serverURL,
				},
				&cli.StringFlag{
					Name:        "api-token",
					Usage:       "Bearer token of the tenant config API",
					Required:    true,
					Sources:     cli.EnvVars("GRAW_API_TOKEN"),
					Destination: (*string)(&client.apiToken),
				},
				&cli.StringFlag{
					Name:        "user",
					Aliases:     []string{"u"},
					Usage:       "Discord user ID the change is made for",
					Required:    true,
					Sources:     cli.EnvVars("GRAW_USER"),
					Destination: (*string)(&client.userID),
				},
			},
			opts.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			id := types.TenantID(tenantID)
			ctx = logging.WithTenant(ctx, id)

			patch, err := opts.patch(c.IsSet)
			if err != nil {
				return err
			}

			cfg, err := client.submit(ctx, id, patch)
			if err != nil {
				return err
			}

			logging.From(ctx).Info("updated tenant config", slog.Any("config", cfg))
			return nil
		},
	}
}
