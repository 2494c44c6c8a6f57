// Package tenant tracks which tenants are active and owns their persisted
// configuration. Changes are broadcast to status and config listeners.
package tenant

import (
	"context"
	"hash/fnv"
	"log/slog"
	"slices"
	"sync"

	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/listener"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
)

// StatusListener is notified when a tenant becomes active or inactive. cfg
// is nil for a tenant that has never been configured.
type StatusListener interface {
	OnTenantActivated(ctx context.Context, id types.TenantID, cfg *model.TenantConfig)
	OnTenantDeactivated(ctx context.Context, id types.TenantID)
}

// ConfigListener is notified after a configuration has been committed.
// oldCfg is nil when the tenant had no stored configuration.
type ConfigListener interface {
	OnConfigChange(ctx context.Context, id types.TenantID, oldCfg, newCfg *model.TenantConfig)
}

type Registry struct {
	store       interfaces.TenantStore
	platform    interfaces.Platform
	superAdmins []types.UserID

	statusListeners *listener.Registry[StatusListener]
	configListeners *listener.Registry[ConfigListener]

	mu     sync.Mutex
	active map[types.TenantID]struct{}

	// locks serialize activation, deactivation and config updates of one
	// tenant. A tenant maps to a fixed stripe.
	locks [lockStripes]sync.Mutex
}

const lockStripes = 64

func New(store interfaces.TenantStore, platform interfaces.Platform, superAdmins []types.UserID) *Registry {
	return &Registry{
		store:           store,
		platform:        platform,
		superAdmins:     slices.Clone(superAdmins),
		statusListeners: listener.New[StatusListener](),
		configListeners: listener.New[ConfigListener](),
		active:          make(map[types.TenantID]struct{}),
	}
}

func (x *Registry) AddStatusListener(l StatusListener) listener.SubscriptionID {
	return x.statusListeners.Add(l)
}

func (x *Registry) RemoveStatusListener(id listener.SubscriptionID) bool {
	return x.statusListeners.Remove(id)
}

func (x *Registry) AddConfigListener(l ConfigListener) listener.SubscriptionID {
	return x.configListeners.Add(l)
}

func (x *Registry) RemoveConfigListener(id listener.SubscriptionID) bool {
	return x.configListeners.Remove(id)
}

// ActivateTenant loads the tenant's stored configuration and notifies status
// listeners. A load failure activates the tenant unconfigured. The load and
// the notification are serialized with UpdateConfig for the same tenant, so a
// config committed meanwhile is delivered after the activation.
func (x *Registry) ActivateTenant(ctx context.Context, id types.TenantID) {
	ctx = logging.WithTenant(ctx, id)

	lock := x.tenantLock(id)
	lock.Lock()
	defer lock.Unlock()

	x.mu.Lock()
	if _, ok := x.active[id]; ok {
		logging.From(ctx).Warn("tenant is already active")
	}
	x.active[id] = struct{}{}
	x.mu.Unlock()

	cfg, err := x.store.LoadConfig(ctx, id)
	if err != nil {
		errutil.HandleError(ctx, "failed to load tenant config", err)
		cfg = nil
	}

	logging.From(ctx).Info("tenant activated", slog.Bool("configured", cfg != nil))
	x.statusListeners.Fire(func(l StatusListener) {
		l.OnTenantActivated(ctx, id, cfg.Copy())
	})
}

// DeactivateTenant notifies status listeners that the tenant has gone away.
// The tenant must have been activated before.
func (x *Registry) DeactivateTenant(ctx context.Context, id types.TenantID) {
	ctx = logging.WithTenant(ctx, id)

	lock := x.tenantLock(id)
	lock.Lock()
	defer lock.Unlock()

	x.mu.Lock()
	delete(x.active, id)
	x.mu.Unlock()

	logging.From(ctx).Info("tenant deactivated")
	x.statusListeners.Fire(func(l StatusListener) {
		l.OnTenantDeactivated(ctx, id)
	})
}

// IsActive reports whether the tenant is currently active.
func (x *Registry) IsActive(id types.TenantID) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, ok := x.active[id]
	return ok
}

// ActiveTenants returns the active tenant IDs, sorted.
func (x *Registry) ActiveTenants() []types.TenantID {
	x.mu.Lock()
	defer x.mu.Unlock()

	ids := make([]types.TenantID, 0, len(x.active))
	for id := range x.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// GetConfig returns the stored configuration. When nothing is stored it
// returns the defaults if createIfAbsent is set, and nil otherwise.
func (x *Registry) GetConfig(ctx context.Context, id types.TenantID, createIfAbsent bool) (*model.TenantConfig, error) {
	cfg, err := x.store.LoadConfig(ctx, id)
	if err != nil {
		return nil, err
	}
	if cfg == nil && createIfAbsent {
		return model.DefaultTenantConfig(), nil
	}
	return cfg, nil
}

// UpdateConfig commits cfg and then notifies config listeners with the
// previous and the new configuration. Updates to one tenant are serialized
// so listeners observe them in commit order. A nil cfg is ignored.
func (x *Registry) UpdateConfig(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) error {
	if cfg == nil {
		return nil
	}
	ctx = logging.WithTenant(ctx, id)

	lock := x.tenantLock(id)
	lock.Lock()
	defer lock.Unlock()

	return x.commitLocked(ctx, id, cfg)
}

// ModifyConfig loads the configuration (defaults when absent), passes it to
// modify and commits the result like UpdateConfig. The whole cycle holds the
// tenant lock, so concurrent modifications never overwrite each other. An
// error from modify aborts without committing.
func (x *Registry) ModifyConfig(ctx context.Context, id types.TenantID, modify func(cfg *model.TenantConfig) (*model.TenantConfig, error)) (*model.TenantConfig, error) {
	ctx = logging.WithTenant(ctx, id)

	lock := x.tenantLock(id)
	lock.Lock()
	defer lock.Unlock()

	cfg, err := x.GetConfig(ctx, id, true)
	if err != nil {
		return nil, err
	}

	next, err := modify(cfg)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return cfg, nil
	}

	if err := x.commitLocked(ctx, id, next); err != nil {
		return nil, err
	}
	return next.Copy(), nil
}

func (x *Registry) commitLocked(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) error {
	newCfg := cfg.Copy()
	oldCfg, err := x.store.SwapConfig(ctx, id, newCfg)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("tenant config updated", slog.Any("config", newCfg))
	x.configListeners.Fire(func(l ConfigListener) {
		l.OnConfigChange(ctx, id, oldCfg.Copy(), newCfg.Copy())
	})
	return nil
}

func (x *Registry) tenantLock(id types.TenantID) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &x.locks[h.Sum32()%lockStripes]
}

// CheckManagementPermission reports whether userID may manage tenantID.
// Super-admins always may. Otherwise the user must own the tenant or hold
// its maintainer role. An empty tenantID only checks super-admins. Any
// lookup failure denies.
func (x *Registry) CheckManagementPermission(ctx context.Context, tenantID types.TenantID, userID types.UserID) bool {
	if slices.Contains(x.superAdmins, userID) {
		return true
	}
	if tenantID == "" {
		return false
	}

	ctx = logging.WithTenant(ctx, tenantID)
	logger := logging.From(ctx)

	owner, err := x.platform.OwnerID(ctx, tenantID)
	if err != nil {
		logger.Warn("failed to look up tenant owner", slog.Any("error", err))
		return false
	}
	if owner == userID {
		return true
	}

	cfg, err := x.store.LoadConfig(ctx, tenantID)
	if err != nil {
		logger.Warn("failed to load tenant config", slog.Any("error", err))
		return false
	}
	if cfg == nil || cfg.MaintainerRole == "" {
		return false
	}

	roles, err := x.platform.MemberRoles(ctx, tenantID, userID)
	if err != nil {
		logger.Warn("failed to look up member roles", slog.Any("error", err))
		return false
	}
	return slices.Contains(roles, cfg.MaintainerRole)
}
