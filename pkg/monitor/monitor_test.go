package monitor_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/graw/pkg/domain/mock"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
	"github.com/secmon-lab/graw/pkg/formatter"
	"github.com/secmon-lab/graw/pkg/monitor"
	"github.com/secmon-lab/graw/pkg/scheduler"
	"github.com/secmon-lab/graw/pkg/utils/testutil"
)

// fakeRepo serves revisions 1..latest. connErr is returned by TestConnection.
type fakeRepo struct {
	mu       sync.Mutex
	latest   int64
	connErr error
	fetchErr map[int64]error
	badTime  map[int64]bool
}

func (x *fakeRepo) set(latest int64, connErr error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.latest = latest
	x.connErr = connErr
}

func (x *fakeRepo) client() *mock.RepositoryClientMock {
	return &mock.RepositoryClientMock{
		TestConnectionFunc: func(ctx context.Context) error {
			x.mu.Lock()
			defer x.mu.Unlock()
			return x.connErr
		},
		LatestRevisionFunc: func(ctx context.Context) (int64, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			return x.latest, nil
		},
		RevisionFunc: func(ctx context.Context, number int64) (*model.RevisionRecord, error) {
			x.mu.Lock()
			defer x.mu.Unlock()
			if err := x.fetchErr[number]; err != nil {
				return nil, err
			}
			ts := "2024-01-02T03:04:05Z"
			if x.badTime[number] {
				ts = "not a time"
			}
			return &model.RevisionRecord{
				Number:    number,
				Author:    "alice",
				Timestamp: ts,
				Message:   "change " + strconv.FormatInt(number, 10),
			}, nil
		},
	}
}

func newChannel() *mock.OutputChannelMock {
	return &mock.OutputChannelMock{
		SendMessageFunc: func(ctx context.Context, text string) error { return nil },
	}
}

func sent(ch *mock.OutputChannelMock) []string {
	var out []string
	for _, c := range ch.SendMessageCalls() {
		out = append(out, c.Text)
	}
	return out
}

func newStore(lastRev int64) *mock.TenantStoreMock {
	var mu sync.Mutex
	return &mock.TenantStoreMock{
		LoadLastRevisionFunc: func(ctx context.Context, id types.TenantID) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			return lastRev, nil
		},
		StoreLastRevisionFunc: func(ctx context.Context, id types.TenantID, rev int64) error {
			mu.Lock()
			defer mu.Unlock()
			lastRev = rev
			return nil
		},
	}
}

func newFormatter(t *testing.T) *formatter.Formatter {
	return gt.R1(formatter.New("yyyy", "{{rnum}}")).NoError(t)
}

type fixture struct {
	repo    *fakeRepo
	client  *mock.RepositoryClientMock
	channel *mock.OutputChannelMock
	store   *mock.TenantStoreMock
	sched   *scheduler.Scheduler
	mon     *monitor.Monitor
}

func setup(t *testing.T, lastRev, latest int64) *fixture {
	t.Helper()
	f := &fixture{
		repo:    &fakeRepo{latest: latest},
		channel: newChannel(),
		store:   newStore(lastRev),
		sched:   scheduler.New(2),
	}
	t.Cleanup(f.sched.Shutdown)

	f.client = f.repo.client()
	f.mon = monitor.New("tenant-1", f.store, f.sched)
	f.mon.Configure(monitor.Settings{
		Repository:   f.client,
		Formatter:    newFormatter(t),
		Channel:      f.channel,
		PollInterval: time.Hour,
	})
	t.Cleanup(f.mon.Stop)
	return f
}

func (f *fixture) startAndWaitCycle(t *testing.T) {
	t.Helper()
	f.mon.Start(context.Background())
	testutil.WaitUntil(t, func() bool { return len(f.store.StoreLastRevisionCalls()) > 0 })
}

func TestPollNoNewRevision(t *testing.T) {
	f := setup(t, 5, 5)
	f.startAndWaitCycle(t)

	gt.A(t, f.channel.SendMessageCalls()).Length(0)
	gt.V(t, f.store.StoreLastRevisionCalls()[0].Rev).Equal(int64(5))
}

func TestPollDispatchesInOrder(t *testing.T) {
	f := setup(t, 5, 8)
	f.startAndWaitCycle(t)

	gt.V(t, sent(f.channel)).Equal([]string{"6", "7", "8"})
	gt.V(t, f.store.StoreLastRevisionCalls()[0].Rev).Equal(int64(8))
}

func TestPollWithoutHistoryAdoptsLatest(t *testing.T) {
	f := setup(t, 0, 8)
	f.startAndWaitCycle(t)

	gt.A(t, f.channel.SendMessageCalls()).Length(0)
	gt.V(t, f.store.StoreLastRevisionCalls()[0].Rev).Equal(int64(8))
}

func TestPollFetchFailureSendsNothing(t *testing.T) {
	f := setup(t, 5, 8)
	f.repo.fetchErr = map[int64]error{7: errors.New("broken pipe")}

	f.mon.Start(context.Background())
	testutil.WaitUntil(t, func() bool { return len(f.client.RevisionCalls()) >= 2 })
	f.mon.Stop()

	gt.A(t, f.channel.SendMessageCalls()).Length(0)
	gt.A(t, f.store.StoreLastRevisionCalls()).Length(0)
}

func TestPollSkipsUnformattableRevision(t *testing.T) {
	f := setup(t, 5, 8)
	f.repo.badTime = map[int64]bool{7: true}
	f.startAndWaitCycle(t)

	gt.V(t, sent(f.channel)).Equal([]string{"6", "8"})
	gt.V(t, f.store.StoreLastRevisionCalls()[0].Rev).Equal(int64(8))
}

func TestPollSkippedWhenUnreachable(t *testing.T) {
	f := setup(t, 5, 8)
	f.repo.set(8, goerr.Wrap(types.ErrConnection, "refused"))

	f.mon.Start(context.Background())
	testutil.WaitUntil(t, func() bool { return len(f.channel.SendMessageCalls()) > 0 })
	f.mon.Stop()

	gt.V(t, sent(f.channel)).Equal([]string{monitor.AlertConnectionLost})
	gt.A(t, f.store.StoreLastRevisionCalls()).Length(0)
}

func TestStateTransitions(t *testing.T) {
	f := setup(t, 1, 1)
	ctx := context.Background()

	gt.V(t, f.mon.GetStatus(ctx)).Equal(types.StateNormal)
	gt.A(t, f.channel.SendMessageCalls()).Length(0)

	f.repo.set(1, errors.New("dial tcp: refused"))
	gt.V(t, f.mon.GetStatus(ctx)).Equal(types.StateNoConnection)
	gt.V(t, f.mon.GetStatus(ctx)).Equal(types.StateNoConnection)
	gt.V(t, f.mon.GetStatusMessage()).Equal(monitor.StatusNoConnection)

	f.repo.set(1, goerr.Wrap(types.ErrAuthFailure, "E170001"))
	gt.V(t, f.mon.GetStatus(ctx)).Equal(types.StateBadCredentials)
	gt.V(t, f.mon.GetStatusMessage()).Equal(monitor.StatusCredentialsRejected)

	f.repo.set(1, nil)
	gt.V(t, f.mon.GetStatus(ctx)).Equal(types.StateNormal)
	gt.V(t, f.mon.GetStatusMessage()).Equal(monitor.StatusNormal)

	gt.V(t, sent(f.channel)).Equal([]string{
		monitor.AlertConnectionLost,
		monitor.AlertCredentialsRejected,
		monitor.AlertConnectionRestored,
	})
}

func TestRepeatedStatusNotifiesOnce(t *testing.T) {
	f := setup(t, 1, 1)
	ctx := context.Background()
	f.repo.set(1, errors.New("timeout"))

	f.mon.GetStatus(ctx)
	f.mon.GetStatus(ctx)

	gt.A(t, f.channel.SendMessageCalls()).Length(1)
}

func TestGetRevisionBounds(t *testing.T) {
	f := setup(t, 1, 3)
	ctx := context.Background()

	_, ok := f.mon.GetRevision(ctx, 0)
	gt.False(t, ok)
	_, ok = f.mon.GetRevision(ctx, 4)
	gt.False(t, ok)

	text, ok := f.mon.GetRevision(ctx, 2)
	gt.True(t, ok)
	gt.V(t, text).Equal("2")

	text, ok = f.mon.GetLatestRevision(ctx)
	gt.True(t, ok)
	gt.V(t, text).Equal("3")

	f.repo.set(3, errors.New("down"))
	_, ok = f.mon.GetRevision(ctx, 2)
	gt.False(t, ok)
}

func TestNotConfigured(t *testing.T) {
	sched := scheduler.New(1)
	defer sched.Shutdown()
	store := newStore(0)

	mon := monitor.New("tenant-1", store, sched)
	ctx := context.Background()
	mon.Start(ctx)
	defer mon.Stop()

	gt.V(t, mon.GetStatus(ctx)).Equal(types.StateNotConfigured)
	gt.V(t, mon.GetStatusMessage()).Equal(monitor.StatusNotConfigured)
	_, ok := mon.GetRevision(ctx, 1)
	gt.False(t, ok)
	gt.A(t, store.StoreLastRevisionCalls()).Length(0)
}

func TestUnconfigureIsSilent(t *testing.T) {
	f := setup(t, 1, 1)
	ctx := context.Background()
	f.repo.set(1, errors.New("down"))
	f.mon.GetStatus(ctx)

	f.mon.Unconfigure(ctx)

	gt.V(t, f.mon.State()).Equal(types.StateNotConfigured)
	gt.A(t, f.channel.SendMessageCalls()).Length(1)
}

func TestNoChannelNoPolling(t *testing.T) {
	sched := scheduler.New(1)
	defer sched.Shutdown()
	store := newStore(1)
	repo := &fakeRepo{latest: 4}

	mon := monitor.New("tenant-1", store, sched)
	mon.Configure(monitor.Settings{
		Repository:   repo.client(),
		Formatter:    newFormatter(t),
		PollInterval: time.Millisecond,
	})
	ctx := context.Background()
	mon.Start(ctx)
	defer mon.Stop()

	time.Sleep(20 * time.Millisecond)
	gt.A(t, store.StoreLastRevisionCalls()).Length(0)

	text, ok := mon.GetRevision(ctx, 4)
	gt.True(t, ok)
	gt.V(t, text).Equal("4")
}

func TestStopWaitsForRunningCycle(t *testing.T) {
	sched := scheduler.New(1)
	defer sched.Shutdown()
	store := newStore(1)

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	client := &mock.RepositoryClientMock{
		TestConnectionFunc: func(ctx context.Context) error { return nil },
		LatestRevisionFunc: func(ctx context.Context) (int64, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release
			}
			return 1, nil
		},
	}

	mon := monitor.New("tenant-1", store, sched)
	mon.Configure(monitor.Settings{
		Repository:   client,
		Formatter:    newFormatter(t),
		Channel:      newChannel(),
		PollInterval: time.Hour,
	})
	mon.Start(context.Background())
	<-entered

	var stopped atomic.Bool
	go func() {
		mon.Stop()
		stopped.Store(true)
	}()

	time.Sleep(20 * time.Millisecond)
	gt.False(t, stopped.Load())

	close(release)
	testutil.WaitUntil(t, stopped.Load)
	gt.A(t, store.StoreLastRevisionCalls()).Length(1)

	// Restarting schedules a fresh task whose first run is immediate.
	mon.Start(context.Background())
	defer mon.Stop()
	testutil.WaitUntil(t, func() bool { return len(store.StoreLastRevisionCalls()) == 2 })
}

func TestStartAfterCloseDoesNothing(t *testing.T) {
	f := setup(t, 5, 5)
	f.startAndWaitCycle(t)

	f.mon.Close()
	f.mon.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	gt.A(t, f.store.LoadLastRevisionCalls()).Length(1)
	gt.A(t, f.store.StoreLastRevisionCalls()).Length(1)

	// Close is idempotent and Stop after Close is harmless.
	f.mon.Close()
	f.mon.Stop()
}

func TestStatusMessageUnknown(t *testing.T) {
	gt.V(t, monitor.StatusMessage(types.MonitorState(99))).Equal(monitor.StatusUnknown)
}
