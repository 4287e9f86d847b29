package domain_test

import (
	"errors"
	"testing"
	"time"

	"breathe5/internal/modules/session/domain"
	apperrors "breathe5/internal/platform/errors"
)

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	base := domain.Session{
		Username:  "Mina",
		StartedAt: start,
		EndedAt:   start.Add(90 * time.Second),
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("session should be valid: %v", err)
	}
	zeroStart := base
	zeroStart.StartedAt = time.Time{}
	if err := zeroStart.Validate(); !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Fatalf("zero start should fail, got %v", err)
	}
	zeroEnd := base
	zeroEnd.EndedAt = time.Time{}
	if err := zeroEnd.Validate(); !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Fatalf("zero end should fail, got %v", err)
	}
	backwards := base
	backwards.EndedAt = start.Add(-time.Second)
	if err := backwards.Validate(); !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Fatalf("end before start should fail, got %v", err)
	}
}

func TestSessionFormattedDuration(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	s := domain.Session{StartedAt: start, EndedAt: start.Add(90 * time.Second)}
	if got := s.FormattedDuration(); got != "1:30" {
		t.Fatalf("want 1:30, got %s", got)
	}
	s.EndedAt = start.Add(domain.TotalDuration)
	if got := s.FormattedDuration(); got != "5:00" {
		t.Fatalf("want 5:00, got %s", got)
	}
}

func TestStorageObjectFreezesProjections(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	end := start.Add(domain.TotalDuration)
	stored := domain.Session{
		Username:  "Mina",
		StartedAt: start,
		EndedAt:   end,
		Completed: true,
	}.StorageObject()

	if stored.Date != "2026-03-01 09:05:00" {
		t.Fatalf("unexpected date: %s", stored.Date)
	}
	if stored.Duration != "5:00" {
		t.Fatalf("unexpected duration: %s", stored.Duration)
	}
	if !stored.Completed {
		t.Fatalf("completed flag lost")
	}
	if !stored.EndedAt.Equal(end) {
		t.Fatalf("raw end instant lost")
	}
}

func TestStorageObjectDefaultsUsername(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	stored := domain.Session{StartedAt: start, EndedAt: start.Add(time.Minute)}.StorageObject()
	if stored.Username != domain.DefaultUsername {
		t.Fatalf("blank username should fall back to %s, got %s", domain.DefaultUsername, stored.Username)
	}
}

func TestStoredSessionWhen(t *testing.T) {
	t.Parallel()
	end := time.Date(2026, 3, 1, 9, 5, 0, 0, time.Local)

	withInstant := domain.StoredSession{Date: "ignored", EndedAt: end}
	got, ok := withInstant.When()
	if !ok || !got.Equal(end) {
		t.Fatalf("raw instant should win: %v %t", got, ok)
	}

	legacy := domain.StoredSession{Date: "2026-03-01 09:05:00"}
	got, ok = legacy.When()
	if !ok || !got.Equal(end) {
		t.Fatalf("legacy date should parse back: %v %t", got, ok)
	}

	broken := domain.StoredSession{Date: "yesterday-ish"}
	if _, ok := broken.When(); ok {
		t.Fatalf("unparseable date should report false")
	}
}

func TestActiveSessionRemaining(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	active := domain.ActiveSession{StartedAt: start}

	if got := active.Remaining(start); got != domain.TotalSeconds {
		t.Fatalf("fresh session should have full time, got %d", got)
	}
	if got := active.Remaining(start.Add(90 * time.Second)); got != 210 {
		t.Fatalf("want 210, got %d", got)
	}
	if got := active.Remaining(start.Add(time.Hour)); got != 0 {
		t.Fatalf("expired session should clamp to 0, got %d", got)
	}
	if got := active.Remaining(start.Add(-time.Minute)); got != domain.TotalSeconds {
		t.Fatalf("clock skew should clamp to full time, got %d", got)
	}
}
