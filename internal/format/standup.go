package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// noData is rendered in place of an empty section
const noData = "(No data)"

// Standup holds the content of a daily standup note.
// Every section is an ordered list of bullet items.
type Standup struct {
	Yesterday    []string `yaml:"yesterday"`
	Today        []string `yaml:"today"`
	Tomorrow     []string `yaml:"tomorrow"`
	Blockers     []string `yaml:"blockers"`
	Accelerators []string `yaml:"accelerators"`
}

// RenderStandup renders the standup note for the given YYYY-MM-DD date.
// The template is fixed; empty sections render a single "(No data)" bullet.
func RenderStandup(date string, s Standup) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# Standup: %s\n\n", date))
	builder.WriteString("---\n\n")

	writeSection(&builder, "Yesterday", s.Yesterday)
	writeSection(&builder, "Today", s.Today)
	writeSection(&builder, "Tomorrow", s.Tomorrow)

	builder.WriteString("---\n\n")

	writeSection(&builder, "Blockers", s.Blockers)
	writeSection(&builder, "Accelerators", s.Accelerators)

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

func writeSection(builder *strings.Builder, heading string, items []string) {
	builder.WriteString(fmt.Sprintf("## %s\n\n", heading))
	builder.WriteString(renderBullets(items))
	builder.WriteString("\n\n")
}

// renderBullets renders one "- item" line per element, without a trailing newline
func renderBullets(items []string) string {
	if len(items) == 0 {
		items = []string{noData}
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + collapseNewlines(item)
	}
	return strings.Join(lines, "\n")
}

// collapseNewlines keeps a multi-line item on its own bullet
func collapseNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", " ")

	for strings.Contains(content, "  ") {
		content = strings.ReplaceAll(content, "  ", " ")
	}

	return strings.TrimSpace(content)
}

// StandupFileName returns "standup-YYYYMMDD.md" for a YYYY-MM-DD date
func StandupFileName(date string) string {
	return "standup-" + strings.ReplaceAll(date, "-", "") + ".md"
}

// WriteStandup renders the note and writes it into dir, replacing any file
// written earlier the same day. It returns the path that was written.
func WriteStandup(dir, date string, s Standup) (string, error) {
	path := filepath.Join(dir, StandupFileName(date))
	if err := os.WriteFile(path, []byte(RenderStandup(date, s)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write standup file %s: %w", path, err)
	}
	return path, nil
}
