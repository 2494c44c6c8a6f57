package interfaces

import (
	"context"

	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

//go:generate moq -out ../mock/tenant_store_mock.go -pkg mock . TenantStore

// TenantStore persists tenant configuration and the last revision reported
// for each tenant.
type TenantStore interface {
	// LoadConfig returns nil without error if no configuration is stored.
	LoadConfig(ctx context.Context, id types.TenantID) (*model.TenantConfig, error)

	// SwapConfig stores cfg and returns the previously stored configuration
	// (nil if none) in a single transaction.
	SwapConfig(ctx context.Context, id types.TenantID, cfg *model.TenantConfig) (*model.TenantConfig, error)

	// LoadLastRevision returns 0 if no revision is stored.
	LoadLastRevision(ctx context.Context, id types.TenantID) (int64, error)
	StoreLastRevision(ctx context.Context, id types.TenantID, rev int64) error
}
