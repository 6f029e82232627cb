package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/fifa-results/external/resultsapi"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

const (
	SourceAPI      = "api"
	SourceUpstream = "upstream"

	defaultServiceURL = "http://localhost:8080"
)

type options struct {
	source   string
	baseURL  string
	scope    string
	timeout  time.Duration
	logLevel string
}

// NewRootCommand builds the fifactl command tree writing tables to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fifactl",
		Short:         "FIFA results rankings, head-to-head and statistics",
		Long:          "Render standings, head-to-head comparisons and match statistics from the fifa-results API or the upstream results API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", SourceAPI, "where records come from: api or upstream")
	flags.StringVar(&opts.baseURL, "url", "", "base URL of the source (defaults per source)")
	flags.StringVar(&opts.scope, "scope", "overall", "overall, a year, competition:<id> or tournament:<id>")
	flags.DurationVar(&opts.timeout, "timeout", 20*time.Second, "request timeout")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newStandingsCommand(opts),
		newHeadToHeadCommand(opts),
		newStatsCommand(opts),
		newTeamsCommand(opts),
	)
	return root
}

// Execute runs fifactl with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fifactl:", err)
		os.Exit(1)
	}
}

func newStandingsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show the ranking table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, sources, err := opts.resolve()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			result, err := usecase.NewStandingsService(sources).Standings(ctx, scope)
			if err != nil {
				return fmt.Errorf("load standings: %w", err)
			}
			return RenderStandings(cmd.OutOrStdout(), result)
		},
	}
}

func newHeadToHeadCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "h2h <player> <player>",
		Aliases: []string{"head-to-head"},
		Short:   "Compare two players",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, sources, err := opts.resolve()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			result, err := usecase.NewHeadToHeadService(sources).Compare(ctx, args[0], args[1], scope)
			if err != nil {
				return fmt.Errorf("compare players: %w", err)
			}
			return RenderHeadToHead(cmd.OutOrStdout(), result)
		},
	}
}

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show match statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, sources, err := opts.resolve()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			result, err := usecase.NewStatsService(sources).Summary(ctx, scope)
			if err != nil {
				return fmt.Errorf("load statistics: %w", err)
			}
			return RenderStats(cmd.OutOrStdout(), result)
		},
	}
}

func newTeamsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Show registered teams and how they fared",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scope, sources, err := opts.resolve()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			rows, err := usecase.NewTeamReportService(sources).Usage(ctx, scope)
			if err != nil {
				return fmt.Errorf("load teams: %w", err)
			}
			return RenderTeams(cmd.OutOrStdout(), scope, rows)
		},
	}
}

func (o *options) resolve() (match.Scope, usecase.ScopeSources, error) {
	scope, err := match.ParseScope(o.scope)
	if err != nil {
		return match.Scope{}, usecase.ScopeSources{}, err
	}

	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return match.Scope{}, usecase.ScopeSources{}, err
	}
	logger := logging.NewConsole(os.Stderr, level)

	switch strings.ToLower(strings.TrimSpace(o.source)) {
	case SourceAPI:
		baseURL := o.baseURL
		if strings.TrimSpace(baseURL) == "" {
			baseURL = defaultServiceURL
		}
		return scope, NewServiceClient(baseURL, nil).Sources(), nil
	case SourceUpstream:
		client := resultsapi.NewClient(resultsapi.ClientConfig{
			BaseURL: o.baseURL,
			Timeout: o.timeout,
			Logger:  logger,
		})
		return scope, client.Sources(), nil
	default:
		return match.Scope{}, usecase.ScopeSources{}, fmt.Errorf("unknown source %q: use %s or %s", o.source, SourceAPI, SourceUpstream)
	}
}
