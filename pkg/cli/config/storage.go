package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/repository/memory"
	"github.com/secmon-lab/graw/pkg/utils/logging"
)

// NewTenantStore picks PostgreSQL, then Firestore, then falls back to an
// in-memory store that loses its content on exit.
func NewTenantStore(ctx context.Context, db *Database, fs *Firestore) (interfaces.TenantStore, error) {
	switch {
	case db.Enabled() && fs.Enabled():
		return nil, goerr.Wrap(types.ErrInvalidOption, "database DSN and Firestore project are mutually exclusive")
	case db.Enabled():
		return db.NewTenantStore(ctx)
	case fs.Enabled():
		return fs.NewTenantStore(ctx)
	default:
		logging.From(ctx).Warn("no storage is configured, tenant configs are kept in memory")
		return memory.New(), nil
	}
}
