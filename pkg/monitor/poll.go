package monitor

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/secmon-lab/graw/pkg/utils/metrics"
)

// poll runs one cycle. Every revision after the last known one up to the
// latest is fetched and formatted before anything is sent, so a transport
// failure halfway through leaves the cycle for the next run to retry.
func (x *Monitor) poll(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.repo == nil {
		metrics.PollCycles.WithLabelValues("skipped").Inc()
		return
	}

	if x.checkLocked(ctx) != types.StateNormal {
		metrics.PollCycles.WithLabelValues("skipped").Inc()
		return
	}

	latest, err := x.repo.LatestRevision(ctx)
	if err != nil {
		metrics.PollCycles.WithLabelValues("error").Inc()
		logging.From(ctx).Warn("failed to get latest revision", slog.Any("error", err))
		return
	}

	var messages []string
	if x.lastRev > 0 && x.lastRev < latest {
		for n := x.lastRev + 1; n <= latest; n++ {
			rev, err := x.repo.Revision(ctx, n)
			if err != nil {
				metrics.PollCycles.WithLabelValues("error").Inc()
				logging.From(ctx).Warn("failed to fetch revision", slog.Int64("revision", n), slog.Any("error", err))
				return
			}

			text, err := x.formatter.Format(rev)
			if err != nil {
				logging.From(ctx).Warn("skip revision", slog.Int64("revision", n), slog.Any("error", err))
				continue
			}
			messages = append(messages, text)
		}
	}

	for _, text := range messages {
		x.sendLocked(ctx, text)
		metrics.RevisionsDispatched.Inc()
	}

	x.lastRev = latest
	if err := x.store.StoreLastRevision(ctx, x.tenantID, latest); err != nil {
		errutil.HandleError(ctx, "failed to store last revision", err)
	}
	metrics.PollCycles.WithLabelValues("ok").Inc()
}

// GetRevision checks the repository and returns the formatted revision when
// the repository is reachable and 1 <= number <= latest.
func (x *Monitor) GetRevision(ctx context.Context, number int64) (string, bool) {
	return x.queryRevision(ctx, func(int64) int64 { return number })
}

// GetLatestRevision is GetRevision for the repository's latest revision.
func (x *Monitor) GetLatestRevision(ctx context.Context) (string, bool) {
	return x.queryRevision(ctx, func(latest int64) int64 { return latest })
}

func (x *Monitor) queryRevision(ctx context.Context, pick func(latest int64) int64) (string, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	ctx = x.logCtx(ctx)
	if x.repo == nil {
		return "", false
	}
	if x.checkLocked(ctx) != types.StateNormal {
		return "", false
	}

	latest, err := x.repo.LatestRevision(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to get latest revision", slog.Any("error", err))
		return "", false
	}

	number := pick(latest)
	if number < 1 || number > latest {
		return "", false
	}

	text, err := x.formatRevisionLocked(ctx, number)
	if err != nil {
		logging.From(ctx).Warn("failed to get revision", slog.Int64("revision", number), slog.Any("error", err))
		return "", false
	}
	return text, true
}

func (x *Monitor) formatRevisionLocked(ctx context.Context, number int64) (string, error) {
	rev, err := x.repo.Revision(ctx, number)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch revision", goerr.V("revision", number))
	}

	text, err := x.formatter.Format(rev)
	if err != nil {
		return "", goerr.Wrap(err, "failed to format revision", goerr.V("revision", number))
	}
	return text, nil
}
