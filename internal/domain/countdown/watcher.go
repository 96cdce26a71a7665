package countdown

import (
	"context"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/pkg/clock"
)

type StopReason string

const (
	// The car was not soft-locked when the watch began; no ticker was started.
	StopNotSoftLocked StopReason = "not_soft_locked"
	// The deadline passed and the label reached "Available now".
	StopExpired StopReason = "expired"
	// The status left soft_locked before the deadline.
	StopStatusChanged StopReason = "status_changed"
	// The viewer went away.
	StopCancelled StopReason = "cancelled"
	// The emit callback failed.
	StopEmitFailed StopReason = "emit_failed"
)

// Frame is one recomputation of the availability shown to the viewer.
type Frame struct {
	At      time.Time
	Status  car.Status
	Message string
	Label   string
}

// SnapshotFunc derives the availability snapshot at now.
type SnapshotFunc func(now time.Time) car.Snapshot

type Watcher struct {
	clock    clock.Clock
	interval time.Duration
}

func NewWatcher(c clock.Clock, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{clock: c, interval: interval}
}

// Run emits an initial frame and, only while the car stays soft-locked, one frame per tick.
// The ticker is stopped before Run returns, whatever the reason.
func (w *Watcher) Run(ctx context.Context, snapshot SnapshotFunc, emit func(Frame) error) (StopReason, error) {
	now := w.clock.Now()
	snap := snapshot(now)
	target := snap.SoftLockExpiresAt

	if err := emit(frameOf(now, snap, target)); err != nil {
		return StopEmitFailed, err
	}
	if snap.Status != car.StatusSoftLocked {
		return StopNotSoftLocked, nil
	}

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return StopCancelled, nil
		case now = <-ticker.C():
			snap = snapshot(now)
			frame := frameOf(now, snap, target)
			if err := emit(frame); err != nil {
				return StopEmitFailed, err
			}
			if frame.Label == AvailableNow {
				return StopExpired, nil
			}
			if snap.Status != car.StatusSoftLocked {
				return StopStatusChanged, nil
			}
		}
	}
}

// frameOf labels against the deadline captured when the watch began, so a lapsed lock still
// reads "Available now" after the resolver has stopped reporting it.
func frameOf(now time.Time, snap car.Snapshot, target *time.Time) Frame {
	f := Frame{At: now, Status: snap.Status, Message: snap.Message}
	if target != nil {
		f.Label, _ = Remaining(target, now)
	}
	return f
}
