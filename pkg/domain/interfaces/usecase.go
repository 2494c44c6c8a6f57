package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

type UseCase interface {
	ReplyToCommand(ctx context.Context, tenantID types.TenantID, text string) (string, bool)
	TenantStatus(ctx context.Context, tenantID types.TenantID) (types.MonitorState, string, error)
	Revision(ctx context.Context, tenantID types.TenantID, number int64) (string, error)
	LatestRevision(ctx context.Context, tenantID types.TenantID) (string, error)

	// UpdateTenantConfig applies patch on behalf of userID and returns the
	// committed configuration.
	UpdateTenantConfig(ctx context.Context, tenantID types.TenantID, userID types.UserID, patch *model.ConfigPatch) (*model.TenantConfig, error)
}
