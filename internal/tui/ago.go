package tui

import (
	"fmt"
	"time"
)

// Ago describes how long before now t was. Durations under a minute are
// rounded to 10 second blocks, other than the first ten seconds, so that text
// rendered every frame doesn't change every second.
func Ago(now, t time.Time) string {
	diff := max(now.Sub(t), 0)
	switch {
	case diff < 10*time.Second:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Truncate(10*time.Second).Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	}
}
