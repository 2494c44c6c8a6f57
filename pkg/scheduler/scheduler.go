// Package scheduler runs recurring tasks on a fixed-size worker pool. Tasks
// use fixed-delay semantics: the next run is armed only after the previous
// run has returned, so runs of one task never overlap.
package scheduler

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/secmon-lab/graw/pkg/utils/logging"
)

type Scheduler struct {
	queue  chan *Task
	closed chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// New starts a scheduler with size workers. When every worker is busy, due
// tasks wait for a free worker.
func New(size int) *Scheduler {
	if size < 1 {
		size = 1
	}

	x := &Scheduler{
		queue:  make(chan *Task),
		closed: make(chan struct{}),
	}

	x.wg.Add(size)
	for i := 0; i < size; i++ {
		go x.worker()
	}

	return x
}

func (x *Scheduler) worker() {
	defer x.wg.Done()
	for {
		select {
		case <-x.closed:
			return
		case t := <-x.queue:
			t.run()
		}
	}
}

// ScheduleWithFixedDelay runs fn after initialDelay and then repeatedly,
// waiting delay after each run returns. ctx is handed to every run; it does
// not cancel the task, use Task.Cancel for that.
func (x *Scheduler) ScheduleWithFixedDelay(ctx context.Context, name string, fn func(ctx context.Context), initialDelay, delay time.Duration) *Task {
	t := &Task{
		name:      name,
		ctx:       ctx,
		fn:        fn,
		delay:     delay,
		sched:     x,
		cancelled: make(chan struct{}),
		finished:  make(chan struct{}),
	}

	t.mu.Lock()
	t.timer = time.AfterFunc(initialDelay, t.fire)
	t.mu.Unlock()

	return t
}

// Shutdown stops the workers after their current runs. Tasks that become
// due afterwards are never run.
func (x *Scheduler) Shutdown() {
	x.once.Do(func() {
		close(x.closed)
	})
	x.wg.Wait()
}

type taskState int

const (
	stateWaiting taskState = iota
	stateQueued
	stateRunning
	stateCancelled
)

// Task is a handle to a scheduled recurring task.
type Task struct {
	name  string
	ctx   context.Context
	fn    func(ctx context.Context)
	delay time.Duration
	sched *Scheduler

	mu        sync.Mutex
	state     taskState
	timer     *time.Timer
	cancelled chan struct{}
	finished  chan struct{}
}

func (x *Task) fire() {
	x.mu.Lock()
	if x.state != stateWaiting {
		x.mu.Unlock()
		return
	}
	x.state = stateQueued
	x.mu.Unlock()

	select {
	case x.sched.queue <- x:
	case <-x.cancelled:
	case <-x.sched.closed:
	}
}

func (x *Task) run() {
	x.mu.Lock()
	if x.state != stateQueued {
		x.mu.Unlock()
		return
	}
	x.state = stateRunning
	x.mu.Unlock()

	x.invoke()

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.state == stateCancelled {
		close(x.finished)
		return
	}
	x.state = stateWaiting
	x.timer = time.AfterFunc(x.delay, x.fire)
}

func (x *Task) invoke() {
	defer func() {
		if r := recover(); r != nil {
			logging.From(x.ctx).Error("scheduled task panicked",
				slog.String("task", x.name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	x.fn(x.ctx)
}

// Cancel stops the task. If a run has not started yet it is dropped and
// Cancel returns immediately; if a run is in progress Cancel blocks until it
// returns. Calling Cancel more than once is safe.
func (x *Task) Cancel() {
	x.mu.Lock()
	switch x.state {
	case stateCancelled:
		x.mu.Unlock()

	case stateRunning:
		x.state = stateCancelled
		close(x.cancelled)
		x.mu.Unlock()

	default:
		x.state = stateCancelled
		close(x.cancelled)
		x.timer.Stop()
		close(x.finished)
		x.mu.Unlock()
	}

	<-x.finished
}
