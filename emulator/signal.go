package emulator

import (
	"context"
	"sync"
)

// Signal is polled once per cycle by the execution engine.
type Signal interface {
	// ShouldExit must not block.
	ShouldExit() bool
}

// Releaser is an optional Signal extension. While ShouldRelease returns false
// the engine holds in its priming state.
type Releaser interface {
	ShouldRelease() bool
}

// Controller is a one-way exit and release signal, from a single controlling
// goroutine to a single engine.
type Controller struct {
	exit    chan struct{}
	release chan struct{}

	exitOnce    sync.Once
	releaseOnce sync.Once
}

var _ Signal = (*Controller)(nil)
var _ Releaser = (*Controller)(nil)

// NewController creates a new controller. If hold is set, the engine does
// not start executing until Release is called. A held engine sleeps between
// polls, backing off up to HOLD_DELAY_MAX, so Release and Exit may take up to
// that long to be seen.
func NewController(hold bool) (ctl *Controller) {
	ctl = &Controller{
		exit:    make(chan struct{}),
		release: make(chan struct{}),
	}

	if !hold {
		ctl.Release()
	}

	return
}

// Exit asserts the exit signal. It cannot be de-asserted.
func (ctl *Controller) Exit() {
	ctl.exitOnce.Do(func() { close(ctl.exit) })
}

// Release lets a held engine start executing.
func (ctl *Controller) Release() {
	ctl.releaseOnce.Do(func() { close(ctl.release) })
}

// Done is closed when the exit signal is asserted.
func (ctl *Controller) Done() <-chan struct{} {
	return ctl.exit
}

// ShouldExit is true once Exit has been called.
func (ctl *Controller) ShouldExit() bool {
	return poll(ctl.exit)
}

// ShouldRelease is true once Release has been called.
func (ctl *Controller) ShouldRelease() bool {
	return poll(ctl.release)
}

// poll checks a channel without blocking.
func poll(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

type contextSignal struct {
	ctx context.Context
}

// ShouldExit is true once the context is done.
func (cs contextSignal) ShouldExit() bool {
	return poll(cs.ctx.Done())
}

// ContextSignal exits when the context is done.
func ContextSignal(ctx context.Context) Signal {
	return contextSignal{ctx: ctx}
}

// never is the signal used when none is supplied.
type never struct{}

func (never) ShouldExit() bool { return false }
