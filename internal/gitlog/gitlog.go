package gitlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	// shortFormat is "<hash in red> - <subject>"
	shortFormat = "%Cred%h%Creset - %s"
	// verboseFormat appends "(<RFC 2822 date in green>) <author in bold blue>"
	verboseFormat = "%Cred%h%Creset - %s %Cgreen(%cD)%Creset %C(bold blue)%an%Creset"
)

// Options control a git log query
type Options struct {
	Since   string // passed to --since as-is
	Author  string // empty falls back to git config user.email
	Verbose bool
	Color   bool // force colored output even though stdout is captured
}

// CommandError is returned when git ran but exited non-zero
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// PrettyFormat returns the --pretty format string for the given verbosity
func PrettyFormat(verbose bool) string {
	if verbose {
		return verboseFormat
	}
	return shortFormat
}

// BuildLogArgs builds the git arguments for a log query.
// Values are passed as separate argv entries so no shell quoting is involved.
func BuildLogArgs(since, author string, verbose, color bool) []string {
	args := []string{
		"log",
		"--pretty=format:" + PrettyFormat(verbose),
		"--since=" + since,
		"--author=" + author,
	}
	if color {
		args = append(args, "--color=always")
	}
	return args
}

// Reporter runs git log queries for the repository in the current directory
type Reporter struct {
	runner CommandRunner
	opts   Options
	logger *slog.Logger
}

// NewReporter creates a Reporter; a nil logger discards debug output
func NewReporter(runner CommandRunner, opts Options, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reporter{
		runner: runner,
		opts:   opts,
		logger: logger,
	}
}

// Author returns the configured author filter, or the repository's
// user.email when none was given. A missing user.email yields "".
func (r *Reporter) Author(ctx context.Context) (string, error) {
	if r.opts.Author != "" {
		return r.opts.Author, nil
	}

	result, err := r.runner.Run(ctx, "git", "config", "user.email")
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		r.logger.Debug("git config user.email not set", "exit_code", result.ExitCode)
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Log runs git log in the current directory and returns its raw output,
// including any color escapes git emitted. When git exits non-zero the
// text it produced is still returned alongside a *CommandError.
func (r *Reporter) Log(ctx context.Context) (string, error) {
	author, err := r.Author(ctx)
	if err != nil {
		return "", err
	}

	args := BuildLogArgs(r.opts.Since, author, r.opts.Verbose, r.opts.Color)
	r.logger.Debug("Running git log", "since", r.opts.Since, "author", author)

	result, err := r.runner.Run(ctx, "git", args...)
	if err != nil {
		return "", err
	}

	if result.ExitCode != 0 {
		output := result.Stdout
		if strings.TrimSpace(output) == "" {
			output = result.Stderr
		}
		return output, &CommandError{
			Args:     append([]string{"git"}, args...),
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	return result.Stdout, nil
}
