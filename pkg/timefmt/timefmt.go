// Package timefmt renders millisecond durations for display.
package timefmt

import "fmt"

const (
	msPerSecond = 1000
	secPerMin   = 60
	minPerHour  = 60
)

// HHMMSS formats ms as HH:MM:SS. Hours are not wrapped, so long totals render as e.g. 123:04:05.
func HHMMSS(ms int64) string {
	secs := seconds(ms)

	return fmt.Sprintf("%02d:%02d:%02d", secs/(secPerMin*minPerHour), (secs/secPerMin)%minPerHour, secs%secPerMin)
}

// MMSS formats ms as MM:SS with unbounded minutes; used for countdowns.
func MMSS(ms int64) string {
	secs := seconds(ms)

	return fmt.Sprintf("%02d:%02d", secs/secPerMin, secs%secPerMin)
}

func seconds(ms int64) int64 {
	if ms < 0 {
		return 0
	}

	return ms / msPerSecond
}
