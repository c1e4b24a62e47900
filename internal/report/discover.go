package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsRepo reports whether dir contains a .git entry
func IsRepo(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, ".git"))
	return err == nil
}

// FindSubRepos returns the immediate subdirectories of root that contain a
// .git entry, in lexical order. Hidden directories are skipped, matching a
// shell "*/.git" glob, and nothing below the first level is visited.
func FindSubRepos(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var repos []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if IsRepo(dir) {
			repos = append(repos, dir)
		}
	}
	return repos, nil
}

// WithDir runs fn with dir as the working directory and always restores the
// previous working directory afterwards, including when fn fails or panics.
func WithDir(dir string, fn func() error) (err error) {
	orig, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to enter %s: %w", dir, err)
	}
	defer func() {
		if restoreErr := os.Chdir(orig); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore working directory %s: %w", orig, restoreErr)
		}
	}()

	return fn()
}
