package usecase

import (
	"context"
	"errors"
	"sync"

	sessiondto "breathe5/internal/modules/session/dto"
	sessionin "breathe5/internal/modules/session/port/in"
	sessionout "breathe5/internal/modules/session/port/out"
	"breathe5/internal/modules/session/service"
	apperrors "breathe5/internal/platform/errors"
)

// Interactor is the timer controller: it guards the single-active-session
// state machine and decides what reaches the history store. The mutex
// serializes the load-finish-append-clear cycle so overlapping Start/Stop
// calls cannot observe the active session between steps; a second Stop
// racing the first sees ErrNoActiveSession instead of appending twice.
type Interactor struct {
	svc     *service.SessionService
	history sessionout.HistoryStore
	active  sessionout.ActiveSessionStore
	mu      sync.Mutex
}

func NewInteractor(svc *service.SessionService, history sessionout.HistoryStore, active sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, history: history, active: active}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, err := i.active.LoadActive(ctx)
	if err == nil {
		return sessiondto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.StartOutput{}, err
	}

	active := i.svc.Begin(ctx, input.Username)
	if err := i.active.SaveActive(ctx, active); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return sessiondto.StartOutput{Username: active.Username, StartedAt: active.StartedAt}, nil
}

func (i *Interactor) Stop(ctx context.Context, input sessiondto.StopInput) (sessiondto.StopOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.StopOutput{}, err
	}
	session, err := i.svc.Finish(ctx, active, input.Manual)
	if err != nil {
		return sessiondto.StopOutput{}, err
	}
	if err := i.history.Append(ctx, session.StorageObject()); err != nil {
		return sessiondto.StopOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return sessiondto.StopOutput{}, err
	}
	return sessiondto.StopOutput{
		Username:  session.Username,
		Duration:  session.FormattedDuration(),
		Seconds:   session.Seconds(),
		Completed: session.Completed,
	}, nil
}

func (i *Interactor) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	active, err := i.active.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveOutput{}, err
	}
	return sessiondto.ActiveOutput{
		Username:  active.Username,
		StartedAt: active.StartedAt,
		Remaining: active.Remaining(i.svc.Now()),
	}, nil
}

// History reads the persisted sequence in insertion order. Store failures
// degrade to an empty history with the Degraded flag set; callers never see
// an error for a missing or corrupt store.
func (i *Interactor) History(ctx context.Context) (sessiondto.HistoryOutput, error) {
	records, err := i.history.ReadAll(ctx)
	if err != nil {
		return sessiondto.HistoryOutput{Degraded: true}, nil
	}
	out := sessiondto.HistoryOutput{Sessions: make([]sessiondto.StoredSessionOutput, 0, len(records))}
	for _, r := range records {
		ended, _ := r.When()
		out.Sessions = append(out.Sessions, sessiondto.StoredSessionOutput{
			Username:  r.Username,
			Date:      r.Date,
			Duration:  r.Duration,
			Completed: r.Completed,
			EndedAt:   ended,
		})
	}
	return out, nil
}

func (i *Interactor) ClearHistory(ctx context.Context) error {
	return i.history.Clear(ctx)
}
