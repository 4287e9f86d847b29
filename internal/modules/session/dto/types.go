package dto

import "time"

type StartInput struct {
	Username string
}

type StartOutput struct {
	Username  string
	StartedAt time.Time
}

type StopInput struct {
	// Manual marks a user-initiated stop before the countdown expired.
	Manual bool
}

type StopOutput struct {
	Username  string
	Duration  string
	Seconds   int
	Completed bool
}

type ActiveOutput struct {
	Username  string
	StartedAt time.Time
	Remaining int
}

type StoredSessionOutput struct {
	Username  string
	Date      string
	Duration  string
	Completed bool
	// EndedAt is the parsed end instant; zero when the stored date could
	// not be recovered.
	EndedAt time.Time
}

type HistoryOutput struct {
	Sessions []StoredSessionOutput
	// Degraded is set when the store could not be read and history fell
	// back to empty.
	Degraded bool
}
