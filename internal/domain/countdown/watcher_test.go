//go:build unit

package countdown_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	reason countdown.StopReason
	err    error
}

type harness struct {
	clk    *clock.MockClock
	frames chan countdown.Frame
	done   chan result
}

func startWatch(t *testing.T, ctx context.Context, c *car.Car) *harness {
	t.Helper()

	h := &harness{
		clk:    clock.NewMockClock(base),
		frames: make(chan countdown.Frame, 16),
		done:   make(chan result, 1),
	}
	resolver := car.NewResolver()
	w := countdown.NewWatcher(h.clk, time.Second)

	go func() {
		reason, err := w.Run(ctx,
			func(now time.Time) car.Snapshot { return resolver.Resolve(c, now) },
			func(f countdown.Frame) error {
				h.frames <- f
				return nil
			},
		)
		h.done <- result{reason: reason, err: err}
	}()
	return h
}

func (h *harness) next(t *testing.T) countdown.Frame {
	t.Helper()
	select {
	case f := <-h.frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame emitted")
		return countdown.Frame{}
	}
}

func (h *harness) waitTicker(t *testing.T) *clock.MockTicker {
	t.Helper()
	require.Eventually(t, func() bool { return len(h.clk.Tickers()) == 1 }, 2*time.Second, 5*time.Millisecond)
	return h.clk.Tickers()[0]
}

func (h *harness) result(t *testing.T) result {
	t.Helper()
	select {
	case r := <-h.done:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
		return result{}
	}
}

func TestWatcher_SoftLockExpiresAfterTwoSeconds(t *testing.T) {
	c := builder.NewCarBuilder().WithSoftLock(base.Add(2 * time.Second)).BuildDomain()
	h := startWatch(t, context.Background(), c)

	first := h.next(t)
	assert.Equal(t, car.StatusSoftLocked, first.Status)
	assert.Equal(t, "00:02", first.Label)

	ticker := h.waitTicker(t)

	h.clk.Advance(time.Second)
	assert.Equal(t, "00:01", h.next(t).Label)

	h.clk.Advance(time.Second)
	last := h.next(t)
	assert.Equal(t, countdown.AvailableNow, last.Label)
	assert.Equal(t, car.StatusAvailable, last.Status)

	r := h.result(t)
	assert.Equal(t, countdown.StopExpired, r.reason)
	assert.NoError(t, r.err)
	assert.True(t, ticker.Stopped(), "ticker must be torn down once the lock lapses")

	// further ticks are dropped, nothing else is emitted
	h.clk.Advance(time.Second)
	assert.Empty(t, h.frames)
}

func TestWatcher_NotSoftLockedStartsNoTicker(t *testing.T) {
	c := builder.NewCarBuilder().WithRented().BuildDomain()
	h := startWatch(t, context.Background(), c)

	f := h.next(t)
	assert.Equal(t, car.StatusBooked, f.Status)
	assert.Empty(t, f.Label)

	r := h.result(t)
	assert.Equal(t, countdown.StopNotSoftLocked, r.reason)
	assert.Empty(t, h.clk.Tickers())
}

func TestWatcher_CancelTearsDownTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := builder.NewCarBuilder().WithSoftLock(base.Add(10 * time.Minute)).BuildDomain()
	h := startWatch(t, ctx, c)

	assert.Equal(t, "10:00", h.next(t).Label)
	ticker := h.waitTicker(t)

	h.clk.Advance(time.Second)
	assert.Equal(t, "09:59", h.next(t).Label)

	cancel()
	r := h.result(t)
	assert.Equal(t, countdown.StopCancelled, r.reason)
	assert.True(t, ticker.Stopped())
}

func TestWatcher_StatusChangeStopsTicking(t *testing.T) {
	c := builder.NewCarBuilder().WithSoftLock(base.Add(10 * time.Minute)).BuildDomain()
	h := &harness{
		clk:    clock.NewMockClock(base),
		frames: make(chan countdown.Frame, 16),
		done:   make(chan result, 1),
	}
	resolver := car.NewResolver()
	flipAt := base.Add(time.Second)

	go func() {
		reason, err := countdown.NewWatcher(h.clk, time.Second).Run(context.Background(),
			func(now time.Time) car.Snapshot {
				if !now.Before(flipAt) {
					return resolver.Resolve(builder.NewCarBuilder().WithRented().BuildDomain(), now)
				}
				return resolver.Resolve(c, now)
			},
			func(f countdown.Frame) error {
				h.frames <- f
				return nil
			},
		)
		h.done <- result{reason: reason, err: err}
	}()

	h.next(t)
	ticker := h.waitTicker(t)
	h.clk.Advance(time.Second)

	f := h.next(t)
	assert.Equal(t, car.StatusBooked, f.Status)
	assert.Equal(t, "09:59", f.Label)

	r := h.result(t)
	assert.Equal(t, countdown.StopStatusChanged, r.reason)
	assert.True(t, ticker.Stopped())
}

func TestWatcher_EmitFailureStops(t *testing.T) {
	c := builder.NewCarBuilder().WithSoftLock(base.Add(time.Minute)).BuildDomain()
	clk := clock.NewMockClock(base)
	boom := errors.New("client gone")

	reason, err := countdown.NewWatcher(clk, time.Second).Run(context.Background(),
		func(now time.Time) car.Snapshot { return car.NewResolver().Resolve(c, now) },
		func(countdown.Frame) error { return boom },
	)

	assert.Equal(t, countdown.StopEmitFailed, reason)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, clk.Tickers())
}
