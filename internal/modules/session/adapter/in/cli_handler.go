package in

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sessiondto "breathe5/internal/modules/session/dto"
	sessionin "breathe5/internal/modules/session/port/in"
	"breathe5/internal/platform/markdown"
	"breathe5/internal/platform/slug"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, username string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{Username: username})
}

func (h CLIHandler) Stop(ctx context.Context, manual bool) (sessiondto.StopOutput, error) {
	return h.usecase.Stop(ctx, sessiondto.StopInput{Manual: manual})
}

func (h CLIHandler) Active(ctx context.Context) (sessiondto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}

func (h CLIHandler) History(ctx context.Context) (sessiondto.HistoryOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) ClearHistory(ctx context.Context) error {
	return h.usecase.ClearHistory(ctx)
}

// ExportJournal writes the full history as a markdown journal note and
// returns the path written. An empty dir defaults to the working directory.
func (h CLIHandler) ExportJournal(ctx context.Context, dir, username string) (string, error) {
	history, err := h.usecase.History(ctx)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}

	completed := 0
	for _, s := range history.Sessions {
		if s.Completed {
			completed++
		}
	}
	meta := map[string]any{
		"app":                "breathe5",
		"sessions":           len(history.Sessions),
		"completed_sessions": completed,
	}

	var body strings.Builder
	body.WriteString("# Meditation Journal\n\n")
	if len(history.Sessions) == 0 {
		body.WriteString("No sessions recorded yet.\n")
	}
	for _, s := range history.Sessions {
		status := "abandoned"
		if s.Completed {
			status = "completed"
		}
		body.WriteString(fmt.Sprintf("- %s — %s for %s (%s)\n", s.Date, s.Username, s.Duration, status))
	}

	rendered, err := markdown.RenderFrontmatter(meta, body.String())
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("journal-%s.md", slug.Make(username)))
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal: %w", err)
	}
	return path, nil
}
