package out

import (
	"context"

	"breathe5/internal/modules/session/domain"
)

// HistoryStore persists the append-only session history.
type HistoryStore interface {
	Append(ctx context.Context, record domain.StoredSession) error
	ReadAll(ctx context.Context) ([]domain.StoredSession, error)
	Clear(ctx context.Context) error
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, active domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}
