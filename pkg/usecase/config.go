package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/formatter"
	"github.com/secmon-lab/graw/pkg/utils/logging"
)

// UpdateTenantConfig commits patch to the tenant's configuration when userID
// may manage the tenant. A running monitor picks the new configuration up
// through the config listeners of the registry.
func (x *UseCase) UpdateTenantConfig(ctx context.Context, tenantID types.TenantID, userID types.UserID, patch *model.ConfigPatch) (*model.TenantConfig, error) {
	ctx = logging.WithTenant(ctx, tenantID)

	if tenantID == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "tenant ID is empty")
	}
	if patch == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "config patch is empty")
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if !x.tenants.CheckManagementPermission(ctx, tenantID, userID) {
		return nil, goerr.Wrap(types.ErrPermissionDenied, "user may not manage the tenant",
			goerr.V("tenant_id", tenantID), goerr.V("user_id", userID))
	}

	cfg, err := x.tenants.ModifyConfig(ctx, tenantID, func(cfg *model.TenantConfig) (*model.TenantConfig, error) {
		next, err := patch.Apply(cfg)
		if err != nil {
			return nil, err
		}

		if patch.Password != nil {
			if next.Password, err = x.encryptPassword(*patch.Password); err != nil {
				return nil, err
			}
		}

		if _, err := formatter.New(next.DateFormat, next.MessageTemplate); err != nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "invalid notification format",
				goerr.V("error", err.Error()))
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("tenant config changed by user", slog.Any("user_id", userID))
	return cfg, nil
}

func (x *UseCase) encryptPassword(password types.RepoPassword) ([]byte, error) {
	if password == "" {
		return nil, nil
	}

	crypter := x.clients.Crypter()
	if crypter == nil {
		return nil, goerr.Wrap(types.ErrConfiguration, "no crypter is configured to store a password")
	}

	encrypted, err := crypter.Encrypt([]byte(password))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encrypt password")
	}
	return encrypted, nil
}
