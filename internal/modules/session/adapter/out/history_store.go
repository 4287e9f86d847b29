package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"breathe5/internal/modules/session/domain"
	sessionout "breathe5/internal/modules/session/port/out"
	apperrors "breathe5/internal/platform/errors"
)

// FileHistoryStore keeps the whole history as one JSON list in a single
// file. Append is read-all, append in memory, rewrite; the mutex serializes
// that read-modify-write cycle so concurrent callers cannot lose updates.
type FileHistoryStore struct {
	path string
	mu   sync.Mutex
}

func NewFileHistoryStore(historyPath string) *FileHistoryStore {
	return &FileHistoryStore{path: historyPath}
}

func (s *FileHistoryStore) Append(_ context.Context, record domain.StoredSession) error {
	if record.StartedAt.IsZero() || record.EndedAt.IsZero() {
		return apperrors.ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// A corrupt store reads as empty here: the append rewrites the whole
	// file, which is the documented lossy-recovery path.
	history, _ := s.readLocked()
	history = append(history, record)
	return s.writeLocked(history)
}

func (s *FileHistoryStore) ReadAll(_ context.Context) ([]domain.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *FileHistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *FileHistoryStore) readLocked() ([]domain.StoredSession, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.StoredSession{}, nil
		}
		return nil, fmt.Errorf("read history: %w", apperrors.ErrStorageUnavailable)
	}
	var history []domain.StoredSession
	if err := json.Unmarshal(payload, &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", apperrors.ErrStorageCorrupt)
	}
	return history, nil
}

func (s *FileHistoryStore) writeLocked(history []domain.StoredSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	payload, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

var _ sessionout.HistoryStore = (*FileHistoryStore)(nil)
