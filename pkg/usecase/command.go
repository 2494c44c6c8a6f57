package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/utils/logging"
)

var commandPattern = regexp.MustCompile(`^!svn(?: (\d+|stat))?$`)

// ReplyToCommand answers a chat command of the tenant:
//
//	!svn       latest revision
//	!svn stat  status message
//	!svn N     revision N
//
// It returns false when text is not a command or the tenant does not take
// commands (inactive, unconfigured or not responsive).
func (x *UseCase) ReplyToCommand(ctx context.Context, tenantID types.TenantID, text string) (string, bool) {
	m := commandPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	ctx = logging.WithTenant(ctx, tenantID)
	mon := x.monitors.Monitor(tenantID)
	if mon == nil {
		return "", false
	}

	cfg, err := x.clients.TenantStore().LoadConfig(ctx, tenantID)
	if err != nil {
		logging.From(ctx).Warn("failed to load tenant config", slog.Any("error", err))
		return "", false
	}
	if cfg == nil || !cfg.Responsive {
		return "", false
	}

	switch arg := m[1]; arg {
	case "":
		if reply, ok := mon.GetLatestRevision(ctx); ok {
			return reply, true
		}
		return mon.GetStatusMessage(), true

	case "stat":
		return mon.GetStatusMessage(), true

	default:
		notFound := "r" + arg + " doesn't exist"
		number, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return notFound, true
		}
		if reply, ok := mon.GetRevision(ctx, number); ok {
			return reply, true
		}
		return notFound, true
	}
}
