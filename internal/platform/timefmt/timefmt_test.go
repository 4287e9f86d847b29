package timefmt_test

import (
	"testing"

	"breathe5/internal/platform/timefmt"
)

func TestSeconds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{300, "5:00"},
		{3600, "60:00"},
	}
	for _, c := range cases {
		if got := timefmt.Seconds(c.in); got != c.want {
			t.Fatalf("Seconds(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSecondsClampsNegative(t *testing.T) {
	t.Parallel()
	if got := timefmt.Seconds(-7); got != "0:00" {
		t.Fatalf("negative input should clamp to 0:00, got %q", got)
	}
}
