package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/mock"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/infra/crypt"
	"github.com/secmon-lab/graw/pkg/tenant"
	"github.com/secmon-lab/graw/pkg/usecase"
)

func ptr[T any](v T) *T { return &v }

type configFixture struct {
	mu      sync.Mutex
	stored  *model.TenantConfig
	store   *mock.TenantStoreMock
	crypter interfaces.Crypter
	uc      *usecase.UseCase
}

func (f *configFixture) current() *model.TenantConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored.Copy()
}

func setupConfig(t *testing.T, withCrypter bool) *configFixture {
	t.Helper()
	f := &configFixture{}
	f.store = &mock.TenantStoreMock{
		LoadConfigFunc: func(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.stored.Copy(), nil
		},
		SwapConfigFunc: func(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			old := f.stored
			f.stored = cfg.Copy()
			return old, nil
		},
	}
	platform := &mock.PlatformMock{
		OwnerIDFunc: func(ctx context.Context, tenantID types.TenantID) (types.UserID, error) {
			return "owner", nil
		},
	}

	options := []infra.Option{infra.WithTenantStore(f.store)}
	if withCrypter {
		f.crypter = gt.R1(crypt.NewAES([]byte("0123456789abcdef"))).NoError(t)
		options = append(options, infra.WithCrypter(f.crypter))
	}

	registry := tenant.New(f.store, platform, []types.UserID{"admin"})
	f.uc = usecase.New(infra.New(options...), monitors{}, registry)
	return f
}

func TestUpdateTenantConfig(t *testing.T) {
	f := setupConfig(t, true)
	ctx := context.Background()

	cfg := gt.R1(f.uc.UpdateTenantConfig(ctx, "t1", "owner", &model.ConfigPatch{
		RepoURL:  ptr("svn://example.com/repo"),
		Channel:  ptr(types.ChannelID("c1")),
		Password: ptr(types.RepoPassword("s3cret")),
	})).NoError(t)

	gt.V(t, cfg.RepoURL).Equal("svn://example.com/repo")
	gt.V(t, cfg.PollInterval).Equal(model.DefaultPollInterval)

	stored := f.current()
	gt.V(t, stored.Channel).Equal(types.ChannelID("c1"))
	gt.V(t, string(stored.Password)).NotEqual("s3cret")
	plain := gt.R1(f.crypter.Decrypt(stored.Password)).NoError(t)
	gt.V(t, string(plain)).Equal("s3cret")

	t.Run("later patch keeps earlier fields", func(t *testing.T) {
		gt.R1(f.uc.UpdateTenantConfig(ctx, "t1", "admin", &model.ConfigPatch{
			PollInterval: ptr(30),
		})).NoError(t)

		stored := f.current()
		gt.V(t, stored.PollInterval).Equal(30)
		gt.V(t, stored.RepoURL).Equal("svn://example.com/repo")
		gt.True(t, len(stored.Password) > 0)
	})

	t.Run("empty password clears", func(t *testing.T) {
		gt.R1(f.uc.UpdateTenantConfig(ctx, "t1", "owner", &model.ConfigPatch{
			Password: ptr(types.RepoPassword("")),
		})).NoError(t)
		gt.True(t, f.current().Password == nil)
	})
}

func TestUpdateTenantConfigPermission(t *testing.T) {
	f := setupConfig(t, true)

	_, err := f.uc.UpdateTenantConfig(context.Background(), "t1", "stranger", &model.ConfigPatch{
		RepoURL: ptr("svn://example.com/repo"),
	})
	gt.True(t, errors.Is(err, types.ErrPermissionDenied))
	gt.A(t, f.store.SwapConfigCalls()).Length(0)
}

func TestUpdateTenantConfigRejects(t *testing.T) {
	testCases := map[string]struct {
		tenantID types.TenantID
		patch    *model.ConfigPatch
		crypter  bool
		err      error
	}{
		"empty tenant":    {patch: &model.ConfigPatch{}, crypter: true, err: types.ErrValidationFailed},
		"nil patch":       {tenantID: "t1", crypter: true, err: types.ErrValidationFailed},
		"zero interval":   {tenantID: "t1", patch: &model.ConfigPatch{PollInterval: ptr(0)}, crypter: true, err: types.ErrValidationFailed},
		"bad date format": {tenantID: "t1", patch: &model.ConfigPatch{DateFormat: ptr("yyyy-qq")}, crypter: true, err: types.ErrValidationFailed},
		"bad template":    {tenantID: "t1", patch: &model.ConfigPatch{MessageTemplate: ptr("{{#if}}")}, crypter: true, err: types.ErrValidationFailed},
		"no crypter":      {tenantID: "t1", patch: &model.ConfigPatch{Password: ptr(types.RepoPassword("x"))}, err: types.ErrConfiguration},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f := setupConfig(t, tc.crypter)
			_, err := f.uc.UpdateTenantConfig(context.Background(), tc.tenantID, "admin", tc.patch)
			gt.True(t, errors.Is(err, tc.err))
			gt.A(t, f.store.SwapConfigCalls()).Length(0)
		})
	}
}
