package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	out "breathe5/internal/modules/session/adapter/out"
	"breathe5/internal/modules/session/domain"
	apperrors "breathe5/internal/platform/errors"
)

func record(end time.Time) domain.StoredSession {
	start := end.Add(-domain.TotalDuration)
	return domain.Session{
		Username:  "Mina",
		StartedAt: start,
		EndedAt:   end,
		Completed: true,
	}.StorageObject()
}

func TestHistoryStoreAppendAndReadAll(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "meditation_history.json")
	store := out.NewFileHistoryStore(path)
	ctx := context.Background()

	first := record(time.Date(2026, 3, 1, 9, 5, 0, 0, time.Local))
	second := record(time.Date(2026, 3, 1, 12, 5, 0, 0, time.Local))
	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	history, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("want 2 records, got %d", len(history))
	}
	if history[0].Date != first.Date || history[1].Date != second.Date {
		t.Fatalf("records out of order: %s / %s", history[0].Date, history[1].Date)
	}
}

func TestHistoryStoreMissingFileReadsEmpty(t *testing.T) {
	t.Parallel()
	store := out.NewFileHistoryStore(filepath.Join(t.TempDir(), "missing.json"))
	history, err := store.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("want empty history, got %d", len(history))
	}
}

func TestHistoryStoreRejectsZeroInstants(t *testing.T) {
	t.Parallel()
	store := out.NewFileHistoryStore(filepath.Join(t.TempDir(), "h.json"))
	err := store.Append(context.Background(), domain.StoredSession{Username: "Mina"})
	if !errors.Is(err, apperrors.ErrInvalidSession) {
		t.Fatalf("want ErrInvalidSession, got %v", err)
	}
}

func TestHistoryStoreCorruptFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "h.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := out.NewFileHistoryStore(path)
	ctx := context.Background()

	if _, err := store.ReadAll(ctx); !errors.Is(err, apperrors.ErrStorageCorrupt) {
		t.Fatalf("want ErrStorageCorrupt, got %v", err)
	}

	// Appending over a corrupt store rewrites it from scratch.
	if err := store.Append(ctx, record(time.Date(2026, 3, 1, 9, 5, 0, 0, time.Local))); err != nil {
		t.Fatalf("append over corrupt store: %v", err)
	}
	history, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read after recovery: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("want 1 record after recovery, got %d", len(history))
	}
}

func TestHistoryStoreClear(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "h.json")
	store := out.NewFileHistoryStore(path)
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear without file should be idempotent: %v", err)
	}
	if err := store.Append(ctx, record(time.Date(2026, 3, 1, 9, 5, 0, 0, time.Local))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	history, err := store.ReadAll(ctx)
	if err != nil || len(history) != 0 {
		t.Fatalf("cleared store should read empty: %v %d", err, len(history))
	}
}

func TestActiveSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := out.NewFileActiveSessionStore(filepath.Join(t.TempDir(), "active.json"))
	ctx := context.Background()

	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("want ErrNoActiveSession, got %v", err)
	}

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	if err := store.SaveActive(ctx, domain.ActiveSession{Username: "Mina", StartedAt: start}); err != nil {
		t.Fatalf("save: %v", err)
	}
	active, err := store.LoadActive(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if active.Username != "Mina" || !active.StartedAt.Equal(start) {
		t.Fatalf("round trip lost data: %+v", active)
	}

	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.LoadActive(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("cleared store should report no session, got %v", err)
	}
	if err := store.ClearActive(ctx); err != nil {
		t.Fatalf("double clear should be idempotent: %v", err)
	}
}
