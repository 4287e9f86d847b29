package domain

import (
	"strconv"
	"strings"
	"time"
)

// Record is the slice of a stored session the insights engine consumes.
type Record struct {
	Duration  string
	Completed bool
	EndedAt   time.Time
}

// Snapshot is pure derived state, recomputed from the full history on every
// read. Minutes are the integer minute components of completed sessions'
// stored duration strings; a malformed duration contributes 0.
type Snapshot struct {
	CompletedSessions int
	TotalMinutes      int
	LongestSession    int
	CurrentStreak     int
}

// ComputeSnapshot aggregates the full history. Incomplete sessions never
// count toward any aggregate.
func ComputeSnapshot(history []Record, now time.Time) Snapshot {
	snap := Snapshot{}
	for _, r := range history {
		if !r.Completed {
			continue
		}
		snap.CompletedSessions++
		mins := minutesComponent(r.Duration)
		snap.TotalMinutes += mins
		if mins > snap.LongestSession {
			snap.LongestSession = mins
		}
	}
	snap.CurrentStreak = TrailingDayStreak(history, now)
	return snap
}

// TrailingDayStreak counts completed sessions that ended within the rolling
// 24-hour window before now. The cutoff is computed once and reused for
// every record. This is not a consecutive-calendar-day streak.
func TrailingDayStreak(history []Record, now time.Time) int {
	cutoff := now.AddDate(0, 0, -1)
	streak := 0
	for _, r := range history {
		if !r.Completed || r.EndedAt.IsZero() {
			continue
		}
		if !r.EndedAt.Before(cutoff) {
			streak++
		}
	}
	return streak
}

func minutesComponent(duration string) int {
	head, _, _ := strings.Cut(duration, ":")
	mins, err := strconv.Atoi(head)
	if err != nil || mins < 0 {
		return 0
	}
	return mins
}

type Achievement struct {
	Name     string
	Icon     string
	Unlocked bool
}

// Achievements evaluates the fixed threshold set against a snapshot.
func Achievements(s Snapshot) []Achievement {
	return []Achievement{
		{Name: "First Session", Icon: "🥇", Unlocked: s.CompletedSessions >= 1},
		{Name: "5 Sessions", Icon: "🏆", Unlocked: s.CompletedSessions >= 5},
		{Name: "10 Sessions", Icon: "🔟", Unlocked: s.CompletedSessions >= 10},
		{Name: "30 Minutes", Icon: "⏳", Unlocked: s.TotalMinutes >= 30},
		{Name: "1 Hour", Icon: "⏰", Unlocked: s.TotalMinutes >= 60},
		{Name: "3-Day Streak", Icon: "🔥", Unlocked: s.CurrentStreak >= 3},
	}
}

// Recommendation picks the first matching rule of a fixed priority chain.
func Recommendation(s Snapshot) string {
	switch {
	case s.CompletedSessions == 0:
		return "Try starting with a 5-minute session today!"
	case s.TotalMinutes < 30:
		return "Aim for 30 total minutes this week!"
	case s.CurrentStreak == 0:
		return "Try meditating today to start a new streak!"
	case s.LongestSession < 10:
		return "Great job! Consider trying a longer session today."
	default:
		return "You're doing amazing! Keep up the consistency!"
	}
}
