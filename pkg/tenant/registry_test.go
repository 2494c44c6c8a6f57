package tenant_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/mock"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/tenant"
)

type recorder struct {
	mu          sync.Mutex
	activated   []types.TenantID
	configs     []*model.TenantConfig
	deactivated []types.TenantID
	changes     [][2]*model.TenantConfig
	events      []string
}

func (x *recorder) OnTenantActivated(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.activated = append(x.activated, id)
	x.configs = append(x.configs, cfg)
	x.events = append(x.events, "activated")
}

func (x *recorder) OnTenantDeactivated(ctx context.Context, id types.TenantID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.deactivated = append(x.deactivated, id)
	x.events = append(x.events, "deactivated")
}

func (x *recorder) OnConfigChange(ctx context.Context, id types.TenantID, oldCfg, newCfg *model.TenantConfig) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.changes = append(x.changes, [2]*model.TenantConfig{oldCfg, newCfg})
	x.events = append(x.events, "config")
}

// memStore is a minimal in-memory TenantStore backed by the generated mock.
func memStore() *mock.TenantStoreMock {
	var mu sync.Mutex
	configs := map[types.TenantID]*model.TenantConfig{}
	return &mock.TenantStoreMock{
		LoadConfigFunc: func(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
			mu.Lock()
			defer mu.Unlock()
			return configs[id].Copy(), nil
		},
		SwapConfigFunc: func(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
			mu.Lock()
			defer mu.Unlock()
			old := configs[id]
			configs[id] = cfg.Copy()
			return old, nil
		},
	}
}

func TestActivateAndDeactivate(t *testing.T) {
	store := memStore()
	reg := tenant.New(store, &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddStatusListener(rec)
	ctx := context.Background()

	cfg := model.DefaultTenantConfig()
	cfg.RepoURL = "svn://example.com/repo"
	gt.NoError(t, reg.UpdateConfig(ctx, "t1", cfg))

	reg.ActivateTenant(ctx, "t1")
	reg.ActivateTenant(ctx, "t2")

	gt.V(t, rec.activated).Equal([]types.TenantID{"t1", "t2"})
	gt.V(t, rec.configs[0].RepoURL).Equal("svn://example.com/repo")
	gt.True(t, rec.configs[1] == nil)
	gt.V(t, reg.ActiveTenants()).Equal([]types.TenantID{"t1", "t2"})

	reg.DeactivateTenant(ctx, "t1")
	gt.V(t, rec.deactivated).Equal([]types.TenantID{"t1"})
	gt.V(t, reg.ActiveTenants()).Equal([]types.TenantID{"t2"})
}

func TestIsActive(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	ctx := context.Background()

	gt.False(t, reg.IsActive("t1"))
	reg.ActivateTenant(ctx, "t1")
	gt.True(t, reg.IsActive("t1"))
	reg.DeactivateTenant(ctx, "t1")
	gt.False(t, reg.IsActive("t1"))
}

func TestConfigCommittedDuringActivationFollowsIt(t *testing.T) {
	store := memStore()
	loadConfig := store.LoadConfigFunc

	loading := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	store.LoadConfigFunc = func(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
		once.Do(func() {
			close(loading)
			<-release
		})
		return loadConfig(ctx, id)
	}

	reg := tenant.New(store, &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddStatusListener(rec)
	reg.AddConfigListener(rec)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		reg.ActivateTenant(ctx, "t1")
	}()
	<-loading

	go func() {
		defer wg.Done()
		cfg := model.DefaultTenantConfig()
		cfg.RepoURL = "svn://example.com/repo"
		gt.NoError(t, reg.UpdateConfig(ctx, "t1", cfg))
	}()

	// The update waits for the activation in flight.
	time.Sleep(20 * time.Millisecond)
	gt.A(t, store.SwapConfigCalls()).Length(0)

	close(release)
	wg.Wait()

	gt.V(t, rec.events).Equal([]string{"activated", "config"})
	gt.True(t, rec.configs[0] == nil)
	gt.V(t, rec.changes[0][1].RepoURL).Equal("svn://example.com/repo")
}

func TestActivateWithBrokenStore(t *testing.T) {
	store := &mock.TenantStoreMock{
		LoadConfigFunc: func(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
			return nil, errors.New("connection reset")
		},
	}
	reg := tenant.New(store, &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddStatusListener(rec)

	reg.ActivateTenant(context.Background(), "t1")

	gt.V(t, rec.activated).Equal([]types.TenantID{"t1"})
	gt.True(t, rec.configs[0] == nil)
}

func TestRemovedListenerIsNotNotified(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	rec := &recorder{}
	statusID := reg.AddStatusListener(rec)
	configID := reg.AddConfigListener(rec)

	gt.True(t, reg.RemoveStatusListener(statusID))
	gt.True(t, reg.RemoveConfigListener(configID))
	gt.False(t, reg.RemoveConfigListener(configID))

	ctx := context.Background()
	reg.ActivateTenant(ctx, "t1")
	gt.NoError(t, reg.UpdateConfig(ctx, "t1", model.DefaultTenantConfig()))

	gt.A(t, rec.activated).Length(0)
	gt.A(t, rec.changes).Length(0)
}

func TestGetConfig(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	ctx := context.Background()

	cfg := gt.R1(reg.GetConfig(ctx, "t1", false)).NoError(t)
	gt.True(t, cfg == nil)

	cfg = gt.R1(reg.GetConfig(ctx, "t1", true)).NoError(t)
	gt.V(t, cfg).Equal(model.DefaultTenantConfig())

	// Defaults are not persisted by reading them.
	cfg = gt.R1(reg.GetConfig(ctx, "t1", false)).NoError(t)
	gt.True(t, cfg == nil)
}

func TestUpdateConfig(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddConfigListener(rec)
	ctx := context.Background()

	gt.NoError(t, reg.UpdateConfig(ctx, "t1", nil))
	gt.A(t, rec.changes).Length(0)

	first := model.DefaultTenantConfig()
	first.PollInterval = 60
	gt.NoError(t, reg.UpdateConfig(ctx, "t1", first))

	second := model.DefaultTenantConfig()
	second.PollInterval = 90
	gt.NoError(t, reg.UpdateConfig(ctx, "t1", second))

	gt.A(t, rec.changes).Length(2)
	gt.True(t, rec.changes[0][0] == nil)
	gt.V(t, rec.changes[0][1].PollInterval).Equal(60)
	gt.V(t, rec.changes[1][0].PollInterval).Equal(60)
	gt.V(t, rec.changes[1][1].PollInterval).Equal(90)

	// The caller's value is copied before it is stored.
	second.PollInterval = 1
	stored := gt.R1(reg.GetConfig(ctx, "t1", false)).NoError(t)
	gt.V(t, stored.PollInterval).Equal(90)
}

func TestUpdateConfigStoreFailure(t *testing.T) {
	store := &mock.TenantStoreMock{
		SwapConfigFunc: func(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
			return nil, errors.New("deadlock detected")
		},
	}
	reg := tenant.New(store, &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddConfigListener(rec)

	gt.Error(t, reg.UpdateConfig(context.Background(), "t1", model.DefaultTenantConfig()))
	gt.A(t, rec.changes).Length(0)
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddConfigListener(rec)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cfg := model.DefaultTenantConfig()
			cfg.PollInterval = n
			gt.NoError(t, reg.UpdateConfig(ctx, "t1", cfg))
		}(i)
	}
	wg.Wait()

	// Each event's old value is the previous event's new value.
	gt.A(t, rec.changes).Length(20)
	gt.True(t, rec.changes[0][0] == nil)
	for i := 1; i < len(rec.changes); i++ {
		gt.V(t, rec.changes[i][0].PollInterval).Equal(rec.changes[i-1][1].PollInterval)
	}
}

func TestModifyConfig(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	rec := &recorder{}
	reg.AddConfigListener(rec)
	ctx := context.Background()

	t.Run("concurrent modifications keep every increment", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := reg.ModifyConfig(ctx, "t1", func(cfg *model.TenantConfig) (*model.TenantConfig, error) {
					cfg.PollInterval++
					return cfg, nil
				})
				gt.NoError(t, err)
			}()
		}
		wg.Wait()

		cfg := gt.R1(reg.GetConfig(ctx, "t1", false)).NoError(t)
		gt.V(t, cfg.PollInterval).Equal(model.DefaultPollInterval + 20)
		gt.A(t, rec.changes).Length(20)
	})

	t.Run("error aborts without commit", func(t *testing.T) {
		_, err := reg.ModifyConfig(ctx, "t1", func(cfg *model.TenantConfig) (*model.TenantConfig, error) {
			return nil, types.ErrValidationFailed
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, rec.changes).Length(20)
	})
}

func TestTenantLocksAreBounded(t *testing.T) {
	reg := tenant.New(memStore(), &mock.PlatformMock{}, nil)
	ctx := context.Background()

	locks := map[*sync.Mutex]struct{}{}
	for i := 0; i < 5000; i++ {
		id := types.TenantID(fmt.Sprintf("guild-%d", i))
		reg.ActivateTenant(ctx, id)
		reg.DeactivateTenant(ctx, id)

		lock := reg.TenantLock(id)
		gt.True(t, lock == reg.TenantLock(id))
		locks[lock] = struct{}{}
	}

	gt.True(t, len(locks) <= tenant.LockStripes)
	gt.A(t, reg.ActiveTenants()).Length(0)
}

func TestCheckManagementPermission(t *testing.T) {
	store := memStore()
	platform := &mock.PlatformMock{
		OwnerIDFunc: func(ctx context.Context, tenantID types.TenantID) (types.UserID, error) {
			if tenantID == "broken" {
				return "", errors.New("unknown guild")
			}
			return "owner", nil
		},
		MemberRolesFunc: func(ctx context.Context, tenantID types.TenantID, userID types.UserID) ([]types.RoleID, error) {
			if userID == "maintainer" {
				return []types.RoleID{"everyone", "maintainers"}, nil
			}
			return []types.RoleID{"everyone"}, nil
		},
	}
	reg := tenant.New(store, platform, []types.UserID{"admin"})
	ctx := context.Background()

	cfg := model.DefaultTenantConfig()
	cfg.MaintainerRole = "maintainers"
	gt.NoError(t, reg.UpdateConfig(ctx, "t1", cfg))

	testCases := map[string]struct {
		tenantID types.TenantID
		userID   types.UserID
		expect   bool
	}{
		"super admin":                 {tenantID: "t1", userID: "admin", expect: true},
		"super admin without tenant":  {tenantID: "", userID: "admin", expect: true},
		"owner":                       {tenantID: "t1", userID: "owner", expect: true},
		"maintainer":                  {tenantID: "t1", userID: "maintainer", expect: true},
		"member":                      {tenantID: "t1", userID: "member", expect: false},
		"no tenant":                   {tenantID: "", userID: "owner", expect: false},
		"owner lookup fails":          {tenantID: "broken", userID: "maintainer", expect: false},
		"maintainer without config":   {tenantID: "t2", userID: "maintainer", expect: false},
		"owner of unconfigured guild": {tenantID: "t2", userID: "owner", expect: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, reg.CheckManagementPermission(ctx, tc.tenantID, tc.userID)).Equal(tc.expect)
		})
	}
}
