package emulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_PollDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController(true)
	ctx := New([]byte{0x00}, ctl)
	before := *ctx.State

	for range 3 {
		assert.False(ctl.ShouldExit())
		assert.False(ctl.ShouldRelease())
	}
	ctl.Exit()
	ctl.Exit()
	assert.True(ctl.ShouldExit())
	assert.True(ctl.ShouldExit())

	assert.Equal(before, *ctx.State)

	select {
	case <-ctl.Done():
	default:
		t.Fatal("Done() not closed after Exit()")
	}
}

func TestController_Hold(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController(true)
	assert.False(ctl.ShouldRelease())
	ctl.Release()
	ctl.Release()
	assert.True(ctl.ShouldRelease())
	assert.False(ctl.ShouldExit())

	ctl = NewController(false)
	assert.True(ctl.ShouldRelease())
}

func TestController_Goroutine(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController(false)
	go ctl.Exit()

	<-ctl.Done()
	assert.True(ctl.ShouldExit())
}

func TestContextSignal(t *testing.T) {
	assert := assert.New(t)

	cctx, cancel := context.WithCancel(context.Background())
	signal := ContextSignal(cctx)

	assert.False(signal.ShouldExit())
	_, ok := signal.(Releaser)
	assert.False(ok)

	cancel()
	assert.True(signal.ShouldExit())
	assert.True(signal.ShouldExit())
}

func TestNever(t *testing.T) {
	assert := assert.New(t)

	ctx := New(nil, nil)
	assert.False(ctx.signal.ShouldExit())
}
