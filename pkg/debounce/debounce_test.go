package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := New(50 * time.Millisecond)
	defer d.Stop()

	var calls int64
	for i := 0; i < 10; i++ {
		d.Trigger(func() { atomic.AddInt64(&calls, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	// Only the final trigger should fire.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&calls) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls int64
	d.Trigger(func() { atomic.AddInt64(&calls, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func TestDebouncer_FiresAgainAfterQuiet(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var calls int64
	d.Trigger(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestGroup_DebouncesPerKey(t *testing.T) {
	g := NewGroup(30 * time.Millisecond)
	defer g.Stop()

	var a, b int64
	for i := 0; i < 5; i++ {
		g.Trigger("a", func() { atomic.AddInt64(&a, 1) })
		g.Trigger("b", func() { atomic.AddInt64(&b, 1) })
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&a) == 1 && atomic.LoadInt64(&b) == 1
	}, time.Second, 10*time.Millisecond)
}
