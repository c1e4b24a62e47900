package format

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// RenderStandupHTML converts a rendered standup note to an HTML fragment
func RenderStandupHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to convert standup to HTML: %w", err)
	}
	return buf.String(), nil
}

// HTMLFileName returns the HTML companion name of a standup markdown file
func HTMLFileName(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".html"
}

// WriteStandupHTML writes the HTML rendering next to the markdown file at mdPath
func WriteStandupHTML(mdPath, date string, s Standup) (string, error) {
	body, err := RenderStandupHTML(RenderStandup(date, s))
	if err != nil {
		return "", err
	}

	path := HTMLFileName(mdPath)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write standup HTML %s: %w", path, err)
	}
	return path, nil
}
