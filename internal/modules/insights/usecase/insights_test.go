package usecase_test

import (
	"context"
	"testing"
	"time"

	"breathe5/internal/modules/insights/usecase"
	sessiondto "breathe5/internal/modules/session/dto"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

type stubSessions struct {
	history sessiondto.HistoryOutput
}

func (s stubSessions) Start(context.Context, sessiondto.StartInput) (sessiondto.StartOutput, error) {
	return sessiondto.StartOutput{}, nil
}

func (s stubSessions) Stop(context.Context, sessiondto.StopInput) (sessiondto.StopOutput, error) {
	return sessiondto.StopOutput{}, nil
}

func (s stubSessions) Active(context.Context) (sessiondto.ActiveOutput, error) {
	return sessiondto.ActiveOutput{}, nil
}

func (s stubSessions) History(context.Context) (sessiondto.HistoryOutput, error) {
	return s.history, nil
}

func (s stubSessions) ClearHistory(context.Context) error { return nil }

func TestComputeMapsHistory(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	sessions := stubSessions{history: sessiondto.HistoryOutput{
		Sessions: []sessiondto.StoredSessionOutput{
			{Username: "Mina", Duration: "5:00", Completed: true, EndedAt: now.Add(-time.Hour)},
			{Username: "Mina", Duration: "1:30", Completed: false, EndedAt: now.Add(-2 * time.Hour)},
		},
	}}
	uc := usecase.NewInteractor(sessions, fakeClock{now: now})

	out, err := uc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.CompletedSessions != 1 || out.TotalMinutes != 5 || out.CurrentStreak != 1 {
		t.Fatalf("unexpected snapshot: %+v", out)
	}
	if len(out.Achievements) != 6 {
		t.Fatalf("want 6 achievements, got %d", len(out.Achievements))
	}
	if out.Recommendation == "" {
		t.Fatalf("recommendation should always be set")
	}
	if out.Degraded {
		t.Fatalf("healthy history should not degrade")
	}
}

func TestComputeCarriesDegradedFlag(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	uc := usecase.NewInteractor(stubSessions{history: sessiondto.HistoryOutput{Degraded: true}}, fakeClock{now: now})

	out, err := uc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !out.Degraded {
		t.Fatalf("degraded flag should pass through")
	}
	if out.CompletedSessions != 0 {
		t.Fatalf("degraded history computes over empty: %+v", out)
	}
}
