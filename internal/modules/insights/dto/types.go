package dto

type AchievementOutput struct {
	Name     string
	Icon     string
	Unlocked bool
}

type SnapshotOutput struct {
	CompletedSessions int
	TotalMinutes      int
	LongestSession    int
	CurrentStreak     int
	Achievements      []AchievementOutput
	Recommendation    string
	// Degraded mirrors the history read: true when insights were computed
	// over an empty fallback because the store could not be read.
	Degraded bool
}
