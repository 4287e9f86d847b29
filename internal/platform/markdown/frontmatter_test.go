package markdown_test

import (
	"strings"
	"testing"

	"breathe5/internal/platform/markdown"
)

func TestRenderFrontmatter(t *testing.T) {
	t.Parallel()
	out, err := markdown.RenderFrontmatter(map[string]any{
		"app":      "breathe5",
		"sessions": 3,
	}, "# Meditation Journal\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "---\n") {
		t.Fatalf("frontmatter should open the document: %q", out)
	}
	if !strings.Contains(out, "app: breathe5\n") || !strings.Contains(out, "sessions: 3\n") {
		t.Fatalf("metadata missing: %q", out)
	}
	if !strings.Contains(out, "---\n\n# Meditation Journal\n") {
		t.Fatalf("body should follow the closing separator with a blank line: %q", out)
	}
}

func TestRenderFrontmatterKeepsLeadingNewline(t *testing.T) {
	t.Parallel()
	out, err := markdown.RenderFrontmatter(map[string]any{"app": "breathe5"}, "\nbody")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "\n\n\nbody") {
		t.Fatalf("should not double up blank lines: %q", out)
	}
}
