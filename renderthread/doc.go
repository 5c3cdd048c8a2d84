// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package renderthread provides the dedicated worker thread that owns
// all GPU command submission.
//
// A RenderThread is a single goroutine draining a FIFO task queue.
// Callers submit blocking tasks with Run or RunWithTimeout and suspend
// until the task completes on the thread; the thread itself never
// blocks on a caller. Because one goroutine executes every task, work
// submitted from multiple goroutines is serialized in queue order and
// needs no further locking around the shared GPU context.
//
// # Device Sharing
//
// The render thread RECEIVES its GPU context from the host application
// via a gpucontext.DeviceProvider; it does not create one. Hosts without
// a GPU pass nothing and get NullProvider, which is sufficient for
// CPU-backed sources.
//
//	rt := renderthread.New(
//	    renderthread.WithDeviceProvider(app.DeviceHandle()),
//	)
//	defer rt.Close()
//
// # Timeouts
//
// RunWithTimeout bounds only the caller's wait, not the task: a task
// that misses its deadline still runs to completion on the thread and
// its result is discarded. There is no cancellation of in-flight tasks.
package renderthread
