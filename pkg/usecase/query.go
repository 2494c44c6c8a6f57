package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/monitor"
)

func (x *UseCase) lookup(tenantID types.TenantID) (*monitor.Monitor, error) {
	mon := x.monitors.Monitor(tenantID)
	if mon == nil {
		return nil, goerr.Wrap(types.ErrTenantNotFound, "tenant is not active", goerr.V("tenant_id", tenantID))
	}
	return mon, nil
}

// TenantStatus checks the tenant's repository and returns the resulting
// state with its description.
func (x *UseCase) TenantStatus(ctx context.Context, tenantID types.TenantID) (types.MonitorState, string, error) {
	mon, err := x.lookup(tenantID)
	if err != nil {
		return types.StateNotConfigured, "", err
	}

	state := mon.GetStatus(ctx)
	return state, monitor.StatusMessage(state), nil
}

func (x *UseCase) Revision(ctx context.Context, tenantID types.TenantID, number int64) (string, error) {
	mon, err := x.lookup(tenantID)
	if err != nil {
		return "", err
	}

	text, ok := mon.GetRevision(ctx, number)
	if !ok {
		return "", goerr.Wrap(types.ErrRevisionNotFound, "revision is not available",
			goerr.V("tenant_id", tenantID), goerr.V("revision", number))
	}
	return text, nil
}

func (x *UseCase) LatestRevision(ctx context.Context, tenantID types.TenantID) (string, error) {
	mon, err := x.lookup(tenantID)
	if err != nil {
		return "", err
	}

	text, ok := mon.GetLatestRevision(ctx)
	if !ok {
		return "", goerr.Wrap(types.ErrRevisionNotFound, "latest revision is not available",
			goerr.V("tenant_id", tenantID))
	}
	return text, nil
}
