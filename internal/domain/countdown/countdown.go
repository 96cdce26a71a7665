// Package countdown turns a soft-lock deadline into the label shown on the reserve button
// and keeps that label fresh while the lock is held.
package countdown

import (
	"fmt"
	"time"
)

const AvailableNow = "Available now"

// Remaining formats the time left until target as seen at now. It reports false when there
// is no target at all.
//
//	target <= now      "Available now"
//	>= 1h left         "{h}h {m}m"
//	otherwise          "MM:SS"
func Remaining(target *time.Time, now time.Time) (string, bool) {
	if target == nil {
		return "", false
	}

	left := target.Sub(now)
	if left <= 0 {
		return AvailableNow, true
	}

	if left >= time.Hour {
		hours := int(left / time.Hour)
		minutes := int((left % time.Hour) / time.Minute)
		return fmt.Sprintf("%dh %dm", hours, minutes), true
	}

	secs := int(left / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60), true
}
