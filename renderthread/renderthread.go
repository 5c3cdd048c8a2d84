// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderthread

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Render thread errors.
var (
	// ErrClosed is returned when submitting to a closed render thread.
	ErrClosed = errors.New("renderthread: render thread is closed")

	// ErrTimeout is returned when a task does not complete within the
	// caller's wait window. The task itself still runs to completion.
	ErrTimeout = errors.New("renderthread: task did not complete within the wait window")

	// ErrNilTask is returned when submitting a nil task function.
	ErrNilTask = errors.New("renderthread: task must not be nil")
)

// defaultQueueDepth is the task queue buffer size. Submissions beyond
// this depth block until the thread catches up.
const defaultQueueDepth = 16

// DeviceProvider supplies the shared GPU context the render thread
// operates on. It is an alias for gpucontext.DeviceProvider, giving the
// interface a renderthread-local name while staying fully compatible
// with the gpucontext ecosystem.
type DeviceProvider = gpucontext.DeviceProvider

// NullProvider is a DeviceProvider with no GPU behind it. It is the
// default for render threads created without WithDeviceProvider and is
// sufficient for CPU-backed pixel sources.
type NullProvider struct{}

// Device returns nil for the null provider.
func (NullProvider) Device() gpucontext.Device { return nil }

// Queue returns nil for the null provider.
func (NullProvider) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null provider.
func (NullProvider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null provider.
func (NullProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns a zero AdapterInfo for the null provider.
func (NullProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// Ensure NullProvider implements DeviceProvider.
var _ DeviceProvider = NullProvider{}

// task pairs a function with the channel its result is delivered on.
// done has capacity 1 so the thread never blocks delivering a result to
// a caller that already gave up waiting.
type task struct {
	fn   func() error
	done chan error
}

// RenderThread is the single worker goroutine responsible for all GPU
// command submission. Create one with New; it starts immediately and
// runs until Close.
//
// RenderThread is safe for concurrent use from any number of goroutines.
type RenderThread struct {
	tasks chan task
	done  chan struct{}

	// exited is closed by the worker after the shutdown drain, so a
	// waiter can tell a delivered result from a stranded task.
	exited chan struct{}

	wg sync.WaitGroup

	// running gates submissions; cleared by Close before done is closed.
	running atomic.Bool

	closeOnce sync.Once

	provider DeviceProvider
	logger   atomic.Pointer[slog.Logger]

	// depth is only consulted during New.
	depth int
}

// Option configures a RenderThread during creation.
type Option func(*RenderThread)

// WithDeviceProvider sets the shared GPU context handle the thread's
// tasks operate on. The default is NullProvider.
func WithDeviceProvider(p DeviceProvider) Option {
	return func(t *RenderThread) {
		if p != nil {
			t.provider = p
		}
	}
}

// WithQueueDepth sets the task queue buffer size. Values below 1 keep
// the default.
func WithQueueDepth(n int) Option {
	return func(t *RenderThread) {
		if n >= 1 {
			t.depth = n
		}
	}
}

// WithLogger sets the logger for scheduling diagnostics. The default
// discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(t *RenderThread) {
		if l != nil {
			t.logger.Store(l)
		}
	}
}

// New creates a render thread and starts its worker goroutine.
func New(opts ...Option) *RenderThread {
	t := &RenderThread{
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
		provider: NullProvider{},
		depth:    defaultQueueDepth,
	}
	t.logger.Store(slog.New(slog.DiscardHandler))
	for _, opt := range opts {
		opt(t)
	}
	t.tasks = make(chan task, t.depth)
	t.running.Store(true)

	t.wg.Add(1)
	go t.loop()
	return t
}

// Provider returns the shared GPU context handle.
func (t *RenderThread) Provider() DeviceProvider { return t.provider }

// Device returns the GPU device from the provider, or nil without a GPU.
func (t *RenderThread) Device() gpucontext.Device { return t.provider.Device() }

// Queue returns the GPU queue from the provider, or nil without a GPU.
func (t *RenderThread) Queue() gpucontext.Queue { return t.provider.Queue() }

// SetLogger replaces the scheduling logger. Safe for concurrent use.
// Pass nil to disable logging.
func (t *RenderThread) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	t.logger.Store(l)
}

// Run submits fn to the render thread and blocks until it completes,
// returning the task's error. Returns ErrClosed if the thread has been
// closed; a task already queued when Close is called still executes and
// its result is still delivered.
func (t *RenderThread) Run(fn func() error) error {
	return t.RunWithTimeout(fn, 0)
}

// RunWithTimeout submits fn and blocks until it completes or d elapses.
// The wait window covers both time spent queued and time spent
// executing. A non-positive d means wait without bound.
//
// On ErrTimeout the task is not cancelled: it runs to completion on the
// thread and its result is discarded.
func (t *RenderThread) RunWithTimeout(fn func() error, d time.Duration) error {
	if fn == nil {
		return ErrNilTask
	}
	if !t.running.Load() {
		return ErrClosed
	}

	var expired <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		expired = timer.C
	}

	tk := task{fn: fn, done: make(chan error, 1)}
	select {
	case t.tasks <- tk:
	case <-expired:
		t.logger.Load().Warn("task submission timed out", "timeout", d)
		return ErrTimeout
	case <-t.done:
		return ErrClosed
	}

	return t.wait(tk, expired, d)
}

// wait blocks until tk's result arrives, the wait window expires, or the
// worker has exited. A submit can win its race with Close and land in the
// queue after the shutdown drain already ran; such a task never executes,
// so once the worker has exited the result either is already buffered or
// will never come.
func (t *RenderThread) wait(tk task, expired <-chan time.Time, d time.Duration) error {
	select {
	case err := <-tk.done:
		return err
	case <-expired:
		t.logger.Load().Warn("task timed out", "timeout", d)
		return ErrTimeout
	case <-t.exited:
		select {
		case err := <-tk.done:
			return err
		default:
			return ErrClosed
		}
	}
}

// Close stops the render thread. Queued tasks are drained and executed,
// then the worker goroutine exits. Close blocks until the worker has
// stopped and is idempotent; subsequent submissions return ErrClosed.
func (t *RenderThread) Close() {
	t.closeOnce.Do(func() {
		t.running.Store(false)
		close(t.done)
		t.wg.Wait()
	})
}

// loop is the worker goroutine body.
func (t *RenderThread) loop() {
	defer t.wg.Done()

	for {
		select {
		case <-t.done:
			t.drain()
			close(t.exited)
			return
		case tk := <-t.tasks:
			t.execute(tk)
		}
	}
}

// drain executes all tasks still queued at shutdown so no caller is
// left waiting on an undelivered result.
func (t *RenderThread) drain() {
	for {
		select {
		case tk := <-t.tasks:
			t.execute(tk)
		default:
			return
		}
	}
}

func (t *RenderThread) execute(tk task) {
	tk.done <- t.runProtected(tk.fn)
}

// runProtected runs a task and converts a panic into an error. A panic
// must not take down the process-wide render thread.
func (t *RenderThread) runProtected(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderthread: task panic: %v", r)
			t.logger.Load().Error("task panicked", "panic", r)
		}
	}()
	return fn()
}
