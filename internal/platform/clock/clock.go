package clock

import "time"

// Clock abstracts time so session and streak logic stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time. History dates are rendered and
// parsed in the device's local zone, matching what the user sees on screen.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
