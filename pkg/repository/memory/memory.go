package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/repository"
)

type tenantStore struct {
	mu        sync.RWMutex
	configs   map[types.TenantID]*model.TenantConfig
	revisions map[types.TenantID]int64
}

var _ interfaces.TenantStore = (*tenantStore)(nil)

// New creates a new in-memory tenant store
func New() interfaces.TenantStore {
	return &tenantStore{
		configs:   make(map[types.TenantID]*model.TenantConfig),
		revisions: make(map[types.TenantID]int64),
	}
}

func (r *tenantStore) LoadConfig(ctx context.Context, id types.TenantID) (*model.TenantConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configs[id].Copy(), nil
}

func (r *tenantStore) SwapConfig(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error) {
	if cfg == nil {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "config is nil", goerr.V("tenant_id", id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.configs[id]
	r.configs[id] = cfg.Copy()
	return old, nil
}

func (r *tenantStore) LoadLastRevision(ctx context.Context, id types.TenantID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revisions[id], nil
}

func (r *tenantStore) StoreLastRevision(ctx context.Context, id types.TenantID, rev int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revisions[id] = rev
	return nil
}
