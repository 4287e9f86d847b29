package service

import (
	"context"
	"time"

	"breathe5/internal/modules/session/domain"
	"breathe5/internal/platform/clock"
	apperrors "breathe5/internal/platform/errors"
)

type SessionService struct {
	clock clock.Clock
}

func NewSessionService(clock clock.Clock) *SessionService {
	return &SessionService{clock: clock}
}

// Now exposes the injected clock for remaining-time checks.
func (s *SessionService) Now() time.Time {
	return s.clock.Now()
}

// Begin captures the start instant for a new countdown.
func (s *SessionService) Begin(_ context.Context, username string) domain.ActiveSession {
	if username == "" {
		username = domain.DefaultUsername
	}
	return domain.ActiveSession{Username: username, StartedAt: s.clock.Now()}
}

// Finish closes a running countdown and decides what gets persisted.
// Natural expiry pins the end instant to the full configured length. A
// manual stop ends now with Completed=false, unless the full length has
// already elapsed, in which case the session counts as completed anyway.
func (s *SessionService) Finish(_ context.Context, active domain.ActiveSession, manual bool) (domain.Session, error) {
	if active.StartedAt.IsZero() {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	now := s.clock.Now()
	completed := !manual || now.Sub(active.StartedAt) >= domain.TotalDuration
	end := now
	if completed {
		end = active.StartedAt.Add(domain.TotalDuration)
	}
	session := domain.Session{
		Username:  active.Username,
		StartedAt: active.StartedAt,
		EndedAt:   end,
		Completed: completed,
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}
