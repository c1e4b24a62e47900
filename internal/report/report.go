package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// CompletionMessage is printed as the last line of every run
const CompletionMessage = "All done!"

// LogSource produces the commit log for the repository in the working directory
type LogSource interface {
	Log(ctx context.Context) (string, error)
}

// Runner prints commit logs for a directory and its immediate sub-repositories
type Runner struct {
	source LogSource
	out    io.Writer
	logger *slog.Logger

	headerColor *color.Color
	doneColor   *color.Color
}

// NewRunner creates a Runner writing to out
func NewRunner(source LogSource, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		source:      source,
		out:         out,
		logger:      logger,
		headerColor: color.New(color.FgCyan, color.Bold),
		doneColor:   color.New(color.FgGreen),
	}
}

// Run prints the log for root when it is a repository, then the log of every
// sub-repository with a non-empty log under a project header, then the
// completion line. git failures are logged and do not stop the run.
func (r *Runner) Run(ctx context.Context, root string) error {
	if IsRepo(root) {
		r.logger.Debug("Reading log for current directory", "dir", root)
		log, err := r.readLog(ctx, root)
		if err != nil {
			return err
		}
		r.printLog(log)
	}

	repos, err := FindSubRepos(root)
	if err != nil {
		return err
	}
	r.logger.Debug("Found sub-repositories", "count", len(repos))

	for _, dir := range repos {
		name, relErr := filepath.Rel(root, dir)
		if relErr != nil {
			name = filepath.Base(dir)
		}

		log, err := r.readLog(ctx, dir)
		if err != nil {
			return err
		}

		if strings.TrimSpace(log) == "" {
			r.logger.Debug("No commits, skipping", "project", name)
			continue
		}
		r.printProject(name, log)
	}

	r.doneColor.Fprintln(r.out, CompletionMessage)
	return nil
}

// readLog reads the log with dir as the working directory. Whatever text git
// produced is returned even when it failed; the error is only non-nil when
// the run was cancelled.
func (r *Runner) readLog(ctx context.Context, dir string) (string, error) {
	var log string
	err := WithDir(dir, func() error {
		var logErr error
		log, logErr = r.source.Log(ctx)
		return logErr
	})
	if err != nil {
		return log, r.handleError(ctx, dir, err)
	}
	return log, nil
}

// handleError logs per-repository failures; only cancellation aborts the run
func (r *Runner) handleError(ctx context.Context, dir string, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	r.logger.Debug("git log failed", "dir", dir, "error", err)
	return nil
}

func (r *Runner) printLog(log string) {
	fmt.Fprintln(r.out, strings.TrimRight(log, "\n"))
}

func (r *Runner) printProject(name, log string) {
	header := ">> Project: " + name
	rule := strings.Repeat("=", utf8.RuneCountInString(header))

	fmt.Fprintln(r.out, rule)
	r.headerColor.Fprintln(r.out, header)
	fmt.Fprintln(r.out, rule)
	r.printLog(log)
}
