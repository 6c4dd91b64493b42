package anim

import (
	"context"
	"time"
)

// Pause waits for d or until ctx is done, whichever comes first. An early
// wakeup is not an error: the pause simply ends.
func Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
