package game

import (
	"fmt"
	"time"
)

// statusLine is the optional HUD text.
func statusLine(frames uint64, faces int, paused bool, uptime time.Duration, lastErr error) string {
	state := "Running - Space to pause"
	if paused {
		state = "Paused - Space to resume"
	}
	status := fmt.Sprintf("%s | faces: %d | frame %d | %s | O: open scene, H: hide, Esc/Q: quit",
		state, faces, frames, formatDuration(uptime))
	if lastErr != nil {
		status += " | Error: " + lastErr.Error()
	}
	return status
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
