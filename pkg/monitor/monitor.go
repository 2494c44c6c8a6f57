// Package monitor tracks one tenant's repository: it runs the connectivity
// state machine and the scheduled poll that dispatches new revisions to the
// tenant's output channel.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/formatter"
	"github.com/secmon-lab/graw/pkg/scheduler"
	"github.com/secmon-lab/graw/pkg/utils/errutil"
	"github.com/secmon-lab/graw/pkg/utils/logging"
	"github.com/secmon-lab/graw/pkg/utils/metrics"
)

const (
	AlertConnectionRestored  = "Repository connection restored"
	AlertConnectionLost      = "Could not establish connection to repository"
	AlertCredentialsRejected = "Credentials rejected by repository"

	StatusNormal              = "Operating normally"
	StatusNoConnection        = "Unable to connect to repository"
	StatusNotConfigured       = "This server is not configured"
	StatusCredentialsRejected = "The configured repository credentials are being rejected"
	StatusUnknown             = "I don't know what's going on right now to be honest"
)

// Settings is a complete monitor configuration. A nil Channel disables
// polling; the monitor still answers queries.
type Settings struct {
	Repository   interfaces.RepositoryClient
	Formatter    *formatter.Formatter
	Channel      interfaces.OutputChannel
	PollInterval time.Duration
}

type Monitor struct {
	tenantID types.TenantID
	store    interfaces.TenantStore
	sched    *scheduler.Scheduler

	// lifecycle serializes Configure, Unconfigure, Start and Stop so that a
	// reconfiguration never overlaps a running poll cycle.
	lifecycle sync.Mutex
	task      *scheduler.Task
	closed    bool

	mu        sync.Mutex
	repo      interfaces.RepositoryClient
	formatter *formatter.Formatter
	channel   interfaces.OutputChannel
	interval  time.Duration
	state     types.MonitorState
	lastRev   int64
}

// New returns an unconfigured monitor for the tenant.
func New(tenantID types.TenantID, store interfaces.TenantStore, sched *scheduler.Scheduler) *Monitor {
	return &Monitor{
		tenantID: tenantID,
		store:    store,
		sched:    sched,
		state:    types.StateNotConfigured,
	}
}

func (x *Monitor) TenantID() types.TenantID {
	return x.tenantID
}

// Configure stops the poll task and installs settings. It does not restart
// polling; call Start afterwards.
func (x *Monitor) Configure(s Settings) {
	x.lifecycle.Lock()
	defer x.lifecycle.Unlock()
	x.stopLocked()

	x.mu.Lock()
	defer x.mu.Unlock()
	x.repo = s.Repository
	x.formatter = s.Formatter
	x.channel = s.Channel
	x.interval = s.PollInterval
}

// Unconfigure stops the poll task and drops the current configuration. The
// monitor goes back to NOT_CONFIGURED without sending a notification.
func (x *Monitor) Unconfigure(ctx context.Context) {
	x.lifecycle.Lock()
	defer x.lifecycle.Unlock()
	x.stopLocked()

	x.mu.Lock()
	defer x.mu.Unlock()
	x.repo = nil
	x.formatter = nil
	x.channel = nil
	x.transitionLocked(x.logCtx(ctx), types.StateNotConfigured)
}

// Start checks the repository, loads the last persisted revision and, when
// an output channel is configured, schedules the poll with the configured
// interval. The first poll runs immediately. Start is a no-op while a poll
// task is scheduled and after Close.
func (x *Monitor) Start(ctx context.Context) {
	x.lifecycle.Lock()
	defer x.lifecycle.Unlock()

	if x.task != nil || x.closed {
		return
	}

	ctx = x.logCtx(ctx)

	x.mu.Lock()
	if x.repo != nil {
		x.checkLocked(ctx)
	}

	lastRev, err := x.store.LoadLastRevision(ctx, x.tenantID)
	if err != nil {
		errutil.HandleError(ctx, "failed to load last revision", err)
		lastRev = 0
	}
	x.lastRev = lastRev

	schedule := x.repo != nil && x.channel != nil
	interval := x.interval
	x.mu.Unlock()

	if !schedule {
		logging.From(ctx).Info("monitor started without polling")
		return
	}

	x.task = x.sched.ScheduleWithFixedDelay(context.WithoutCancel(ctx), "poll:"+x.tenantID.String(), x.poll, 0, interval)
	logging.From(ctx).Info("monitor started",
		slog.Duration("interval", interval),
		slog.Int64("last_revision", lastRev),
	)
}

// Stop cancels the poll task. A cycle that is already running is allowed to
// finish and Stop blocks until it does. Stop is idempotent.
func (x *Monitor) Stop() {
	x.lifecycle.Lock()
	defer x.lifecycle.Unlock()
	x.stopLocked()
}

// Close stops the monitor for good. Later calls to Start do nothing, so a
// reconfiguration that races the tenant's deactivation cannot revive it.
func (x *Monitor) Close() {
	x.lifecycle.Lock()
	defer x.lifecycle.Unlock()
	x.closed = true
	x.stopLocked()
}

func (x *Monitor) stopLocked() {
	if x.task != nil {
		x.task.Cancel()
		x.task = nil
	}
}

// State returns the last computed state without probing.
func (x *Monitor) State() types.MonitorState {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.state
}

// GetStatus checks the repository, applies the resulting state transition
// and returns the new state.
func (x *Monitor) GetStatus(ctx context.Context) types.MonitorState {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.repo == nil {
		return x.state
	}
	return x.checkLocked(x.logCtx(ctx))
}

// GetStatusMessage describes the last computed state.
func (x *Monitor) GetStatusMessage() string {
	return StatusMessage(x.State())
}

func StatusMessage(state types.MonitorState) string {
	switch state {
	case types.StateNormal:
		return StatusNormal
	case types.StateNoConnection:
		return StatusNoConnection
	case types.StateBadCredentials:
		return StatusCredentialsRejected
	case types.StateNotConfigured:
		return StatusNotConfigured
	default:
		return StatusUnknown
	}
}

func (x *Monitor) logCtx(ctx context.Context) context.Context {
	return logging.WithTenant(ctx, x.tenantID)
}

func (x *Monitor) checkLocked(ctx context.Context) types.MonitorState {
	err := x.repo.TestConnection(ctx)

	next := types.StateNormal
	switch {
	case err == nil:
	case errors.Is(err, types.ErrAuthFailure):
		next = types.StateBadCredentials
	default:
		next = types.StateNoConnection
	}
	if err != nil {
		logging.From(ctx).Debug("repository check failed", slog.Any("error", err))
	}

	return x.transitionLocked(ctx, next)
}

// transitionLocked moves the monitor to next and sends the alert that
// belongs to the change, if any.
func (x *Monitor) transitionLocked(ctx context.Context, next types.MonitorState) types.MonitorState {
	prev := x.state
	x.state = next
	if prev == next {
		return next
	}

	metrics.StateTransitions.WithLabelValues(next.String()).Inc()
	logging.From(ctx).Info("monitor state changed",
		slog.String("from", prev.String()),
		slog.String("to", next.String()),
	)

	var alert string
	switch next {
	case types.StateNormal:
		if prev != types.StateNotConfigured {
			alert = AlertConnectionRestored
		}
	case types.StateNoConnection:
		alert = AlertConnectionLost
	case types.StateBadCredentials:
		alert = AlertCredentialsRejected
	}

	if alert != "" {
		x.sendLocked(ctx, alert)
	}
	return next
}

func (x *Monitor) sendLocked(ctx context.Context, text string) {
	if x.channel == nil {
		return
	}
	if err := x.channel.SendMessage(ctx, text); err != nil {
		logging.From(ctx).Warn("failed to send message", slog.Any("error", err))
	}
}
