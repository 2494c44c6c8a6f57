// Package supervisor owns one monitor per active tenant and keeps each
// monitor's configuration in step with the tenant registry.
package supervisor

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/formatter"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/monitor"
	"github.com/secmon-lab/graw/pkg/scheduler"
	"github.com/secmon-lab/graw/pkg/tenant"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/secmon-lab/graw/pkg/utils/metrics"
)

type Supervisor struct {
	clients *infra.Clients
	sched   *scheduler.Scheduler

	mu       sync.Mutex
	monitors map[types.TenantID]*monitor.Monitor
}

var (
	_ tenant.StatusListener = (*Supervisor)(nil)
	_ tenant.ConfigListener = (*Supervisor)(nil)
)

func New(clients *infra.Clients, sched *scheduler.Scheduler) *Supervisor {
	return &Supervisor{
		clients:  clients,
		sched:    sched,
		monitors: make(map[types.TenantID]*monitor.Monitor),
	}
}

// Monitor returns the tenant's monitor, or nil if the tenant is not active.
func (x *Supervisor) Monitor(id types.TenantID) *monitor.Monitor {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.monitors[id]
}

// OnTenantActivated creates the tenant's monitor and, when cfg is present,
// configures and starts it.
func (x *Supervisor) OnTenantActivated(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) {
	ctx = logging.WithTenant(ctx, id)
	mon := monitor.New(id, x.clients.TenantStore(), x.sched)

	x.mu.Lock()
	prev := x.monitors[id]
	x.monitors[id] = mon
	metrics.ActiveMonitors.Set(float64(len(x.monitors)))
	x.mu.Unlock()

	if prev != nil {
		logging.From(ctx).Warn("replacing monitor of already active tenant")
		prev.Close()
	}

	if cfg != nil {
		x.applyConfig(ctx, mon, cfg)
		mon.Start(ctx)
	}
}

// OnTenantDeactivated closes and drops the tenant's monitor. Deactivating a
// tenant that has no monitor is a programming error and panics.
func (x *Supervisor) OnTenantDeactivated(ctx context.Context, id types.TenantID) {
	x.mu.Lock()
	mon, ok := x.monitors[id]
	delete(x.monitors, id)
	metrics.ActiveMonitors.Set(float64(len(x.monitors)))
	x.mu.Unlock()

	if !ok {
		panic(goerr.New("no monitor for deactivated tenant", goerr.V("tenant_id", id)))
	}
	mon.Close()
}

// OnConfigChange stops the tenant's monitor, applies newCfg and restarts
// it. Tenants without a monitor are ignored. A monitor closed by a
// deactivation meanwhile stays stopped.
func (x *Supervisor) OnConfigChange(ctx context.Context, id types.TenantID, oldCfg, newCfg *model.TenantConfig) {
	mon := x.Monitor(id)
	if mon == nil {
		return
	}
	ctx = logging.WithTenant(ctx, id)

	mon.Stop()
	x.applyConfig(ctx, mon, newCfg)
	mon.Start(ctx)
}

// Shutdown closes every monitor. Running poll cycles are allowed to finish.
func (x *Supervisor) Shutdown(ctx context.Context) {
	x.mu.Lock()
	monitors := make([]*monitor.Monitor, 0, len(x.monitors))
	for _, mon := range x.monitors {
		monitors = append(monitors, mon)
	}
	x.mu.Unlock()

	var wg sync.WaitGroup
	for _, mon := range monitors {
		wg.Add(1)
		go func(mon *monitor.Monitor) {
			defer wg.Done()
			mon.Close()
		}(mon)
	}
	wg.Wait()

	logging.From(ctx).Info("supervisor stopped", slog.Int("monitors", len(monitors)))
}

// applyConfig builds every piece of the monitor's configuration before
// installing any of it. On failure the monitor is left unconfigured.
func (x *Supervisor) applyConfig(ctx context.Context, mon *monitor.Monitor, cfg *model.TenantConfig) {
	settings, err := x.buildSettings(ctx, cfg)
	if err != nil {
		errutil.HandleError(ctx, "failed to apply tenant config", err)
		mon.Unconfigure(ctx)
		return
	}
	mon.Configure(*settings)
}

func (x *Supervisor) buildSettings(ctx context.Context, cfg *model.TenantConfig) (*monitor.Settings, error) {
	if cfg == nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "tenant config is nil")
	}

	repoURL, err := parseRepositoryURL(cfg.RepoURL)
	if err != nil {
		return nil, err
	}

	if cfg.PollInterval <= 0 {
		return nil, goerr.Wrap(types.ErrConfiguration, "poll interval must be positive",
			goerr.V("interval", cfg.PollInterval))
	}

	var channel interfaces.OutputChannel
	if cfg.Channel != "" {
		resolver := x.clients.ChannelResolver()
		if resolver == nil {
			return nil, goerr.Wrap(types.ErrConfiguration, "no channel resolver is configured")
		}
		channel, err = resolver.Channel(ctx, cfg.Channel)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve output channel",
				goerr.V("channel_id", cfg.Channel))
		}
	}

	var password types.RepoPassword
	if len(cfg.Password) > 0 {
		crypter := x.clients.Crypter()
		if crypter == nil {
			return nil, goerr.Wrap(types.ErrConfiguration, "no crypter is configured")
		}
		plain, err := crypter.Decrypt(cfg.Password)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to decrypt repository password")
		}
		password = types.RepoPassword(plain)
	}

	factory := x.clients.RepositoryFactory()
	if factory == nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "no repository factory is configured")
	}
	repo, err := factory.NewClient(repoURL, cfg.Username, password)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository client",
			goerr.V("url", repoURL.Redacted()))
	}

	fmtr, err := formatter.New(cfg.DateFormat, cfg.MessageTemplate)
	if err != nil {
		return nil, err
	}

	return &monitor.Settings{
		Repository:   repo,
		Formatter:    fmtr,
		Channel:      channel,
		PollInterval: time.Duration(cfg.PollInterval) * time.Second,
	}, nil
}

// parseRepositoryURL accepts absolute URLs. A host is required for every
// scheme except file.
func parseRepositoryURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, goerr.Wrap(types.ErrConfiguration, "repository URL is not set")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "malformed repository URL",
			goerr.V("url", raw), goerr.V("error", err.Error()))
	}
	if u.Scheme == "" || (u.Host == "" && u.Scheme != "file") {
		return nil, goerr.Wrap(types.ErrConfiguration, "repository URL must be absolute",
			goerr.V("url", raw))
	}
	return u, nil
}
