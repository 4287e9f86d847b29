package domain

import (
	"time"

	apperrors "breathe5/internal/platform/errors"
	"breathe5/internal/platform/timefmt"
)

// TotalSeconds is the configured length of one breathing session.
const TotalSeconds = 300

const TotalDuration = TotalSeconds * time.Second

// DateLayout is the storage form of StoredSession.Date. It stays fixed so
// stored dates parse back without ambiguity.
const DateLayout = "2006-01-02 15:04:05"

const DefaultUsername = "Guest"

// ActiveSession marks a running countdown. It is persisted separately from
// history so an interrupted run can be noticed and finished later.
type ActiveSession struct {
	Username  string    `json:"username"`
	StartedAt time.Time `json:"started_at"`
}

// Remaining reports the seconds left of the configured length as of now,
// clamped to [0, TotalSeconds].
func (a ActiveSession) Remaining(now time.Time) int {
	elapsed := int(now.Sub(a.StartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > TotalSeconds {
		elapsed = TotalSeconds
	}
	return TotalSeconds - elapsed
}

// Session is one meditation attempt, completed or abandoned.
type Session struct {
	Username  string
	StartedAt time.Time
	EndedAt   time.Time
	Completed bool
}

func (s Session) Validate() error {
	if s.StartedAt.IsZero() || s.EndedAt.IsZero() {
		return apperrors.ErrInvalidSession
	}
	if s.EndedAt.Before(s.StartedAt) {
		return apperrors.ErrInvalidSession
	}
	return nil
}

// Seconds is the whole-second elapsed length of the session.
func (s Session) Seconds() int {
	return int(s.EndedAt.Sub(s.StartedAt) / time.Second)
}

// FormattedDuration renders the elapsed time as "M:SS".
func (s Session) FormattedDuration() string {
	return timefmt.Seconds(s.Seconds())
}

// StoredSession is the wire form kept in the history file. Date and Duration
// are projections frozen at persistence time; the raw instants ride along so
// aggregates do not have to parse the strings back.
type StoredSession struct {
	Username  string    `json:"username"`
	Date      string    `json:"date"`
	Duration  string    `json:"duration"`
	Completed bool      `json:"completed"`
	StartedAt time.Time `json:"started_at,omitzero"`
	EndedAt   time.Time `json:"ended_at,omitzero"`
}

// StorageObject freezes the session into its wire form. A blank username
// falls back to the default.
func (s Session) StorageObject() StoredSession {
	name := s.Username
	if name == "" {
		name = DefaultUsername
	}
	return StoredSession{
		Username:  name,
		Date:      s.EndedAt.Format(DateLayout),
		Duration:  s.FormattedDuration(),
		Completed: s.Completed,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

// When reports the instant the stored session ended, falling back to the
// frozen date string for records written without raw instants.
func (s StoredSession) When() (time.Time, bool) {
	if !s.EndedAt.IsZero() {
		return s.EndedAt, true
	}
	t, err := time.ParseInLocation(DateLayout, s.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
