package timefmt

import "fmt"

// Seconds renders a second count as "M:SS" with the seconds component
// zero-padded, e.g. 65 -> "1:05". Minutes are unbounded. Negative input
// clamps to "0:00".
func Seconds(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
