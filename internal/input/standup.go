package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Attamusc/git-standup/internal/format"
	"gopkg.in/yaml.v3"
)

// ExampleStandup returns the built-in sample content used when no data file is configured
func ExampleStandup() format.Standup {
	return format.Standup{
		Yesterday: []string{
			"Reviewed open pull requests",
			"Fixed the flaky integration test",
		},
		Today: []string{
			"Finish the release notes",
		},
		Tomorrow: []string{
			"Sprint planning",
		},
		Blockers: []string{
			"Waiting on staging credentials",
		},
		Accelerators: []string{
			"Pairing session with the platform team",
		},
	}
}

// ParseStandup decodes standup sections from YAML.
// Unknown keys are rejected so that a typo does not silently drop a section.
// An empty document yields an empty Standup.
func ParseStandup(r io.Reader) (format.Standup, error) {
	var standup format.Standup

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&standup); err != nil {
		if errors.Is(err, io.EOF) {
			return format.Standup{}, nil
		}
		return format.Standup{}, fmt.Errorf("invalid standup data: %w", err)
	}

	standup.Yesterday = cleanItems(standup.Yesterday)
	standup.Today = cleanItems(standup.Today)
	standup.Tomorrow = cleanItems(standup.Tomorrow)
	standup.Blockers = cleanItems(standup.Blockers)
	standup.Accelerators = cleanItems(standup.Accelerators)

	return standup, nil
}

// LoadStandupFile reads standup sections from a YAML file
func LoadStandupFile(path string) (format.Standup, error) {
	f, err := os.Open(path)
	if err != nil {
		return format.Standup{}, fmt.Errorf("failed to open standup data: %w", err)
	}
	defer f.Close()

	standup, err := ParseStandup(f)
	if err != nil {
		return format.Standup{}, fmt.Errorf("%s: %w", path, err)
	}
	return standup, nil
}

// cleanItems trims items and drops blank ones
func cleanItems(items []string) []string {
	var cleaned []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return cleaned
}
