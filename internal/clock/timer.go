// Package clock provides helpers for time-related operations.
package clock

import "time"

// ResetTimer restarts t so that it fires d from now, discarding a pending expiry
// that has not been received yet.
func ResetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
