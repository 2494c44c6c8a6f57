package usecase

import (
	"context"

	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/infra"
	"github.com/secmon-lab/graw/pkg/monitor"
)

// MonitorLookup resolves the monitor of an active tenant. It returns nil for
// inactive tenants.
type MonitorLookup interface {
	Monitor(id types.TenantID) *monitor.Monitor
}

// TenantConfigurator commits tenant configurations and decides who may
// change them.
type TenantConfigurator interface {
	ModifyConfig(ctx context.Context, id types.TenantID, modify func(cfg *model.TenantConfig) (*model.TenantConfig, error)) (*model.TenantConfig, error)
	CheckManagementPermission(ctx context.Context, tenantID types.TenantID, userID types.UserID) bool
}

type UseCase struct {
	clients  *infra.Clients
	monitors MonitorLookup
	tenants  TenantConfigurator
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients, monitors MonitorLookup, tenants TenantConfigurator) *UseCase {
	return &UseCase{
		clients:  clients,
		monitors: monitors,
		tenants:  tenants,
	}
}
