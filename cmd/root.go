package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Attamusc/git-standup/internal/config"
	"github.com/Attamusc/git-standup/internal/derive"
	"github.com/Attamusc/git-standup/internal/format"
	"github.com/Attamusc/git-standup/internal/gitlog"
	"github.com/Attamusc/git-standup/internal/input"
	"github.com/Attamusc/git-standup/internal/report"
	"github.com/spf13/cobra"
)

// UsageBanner is printed to stderr when the command line cannot be parsed
const UsageBanner = "Usage: git standup [--since=<date>] [--author=<name>]"

const usageTemplate = UsageBanner + `

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`

var (
	now              = time.Now
	newCommandRunner = func() gitlog.CommandRunner { return gitlog.ExecRunner{} }
)

// UsageError marks a command line the parser rejected
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "git-standup",
		Short: "Write today's standup note and list your recent commits",
		Long: `git-standup writes standup-YYYYMMDD.md with the Yesterday, Today, Tomorrow,
Blockers and Accelerators sections, then prints your commits since the last
working day for the current repository and every repository one level below it.

Installed on the PATH it can be run as "git standup".

Examples:
  # Commits since the last working day, authored by git config user.email
  git standup

  # Explicit window and author, with commit dates and author names
  git standup --since "2 weeks ago" --author "jane@example.com" -v

  # Standup content from a YAML file, also rendered as HTML
  git standup --data standup.yaml --html`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandup(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Since, "since", "", "Show commits more recent than this date (default: last working day)")
	cmd.Flags().StringVar(&flags.Author, "author", "", "Only show commits by this author (default: git config user.email)")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show commit dates and author names, and enable debug logging")
	cmd.Flags().StringVar(&flags.DataPath, "data", "", "YAML file with standup sections (default: built-in example)")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "Directory for the standup file (default: current directory)")
	cmd.Flags().BoolVar(&flags.HTML, "html", false, "Also write an HTML rendering of the standup")
	cmd.Flags().StringVar(&flags.Color, "color", "", "Color output: 'auto', 'always' or 'never'")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.SetUsageTemplate(usageTemplate)

	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode reports err on stderr and maps it to a process exit code:
// 0 on success, 2 for usage errors and 1 for everything else.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, UsageBanner)
		return 2
	}
	return 1
}

func runStandup(cmd *cobra.Command, flags config.Flags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// Load configuration
	cfg, err := config.FromEnvAndFlags(flags, now())
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg, cmd.ErrOrStderr())
	gitColor := setupColor(cfg, out)

	standup := input.ExampleStandup()
	if cfg.DataPath != "" {
		logger.Debug("Loading standup data", "path", cfg.DataPath)
		standup, err = input.LoadStandupFile(cfg.DataPath)
		if err != nil {
			return err
		}
	}

	date := derive.RenderDate(cfg.Now)
	path, err := format.WriteStandup(cfg.OutputDir, date, standup)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Standup notes written to %s\n", path)

	if cfg.HTML {
		htmlPath, err := format.WriteStandupHTML(path, date, standup)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Standup HTML written to %s\n", htmlPath)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	since := derive.EffectiveSince(cfg.Since, cfg.Now)
	logger.Debug("Looking for commits since", "since", since)

	reporter := gitlog.NewReporter(newCommandRunner(), gitlog.Options{
		Since:   since,
		Author:  cfg.Author,
		Verbose: cfg.Verbose,
		Color:   gitColor,
	}, logger)

	return report.NewRunner(reporter, out, logger).Run(ctx, root)
}
