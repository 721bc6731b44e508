package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/planner"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	LogLevel  string
	LogFormat string
}

var globalFlags = &GlobalFlags{}

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "Grid path planner",
	Long: `gridpath computes a distance field over an occupancy grid, walks the
greedy descent from start to destination and reduces the walk to waypoints.

Scenarios are YAML files:

  grid:
    - "......"
    - "#####."
  start: [0, 0]
  destination: [1, 5]
  algorithm: wavefront
  bound: 4
  epsilon: 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogFormat, "log-format", "text", "Log format (text|json)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(fieldCmd)
}

// newLogger builds the slog handler selected by the global flags.
func newLogger(w io.Writer, flags *GlobalFlags) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(flags.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", flags.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(flags.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid --log-format %q (text|json)", flags.LogFormat)
}

// openSession loads the scenario named by -f and starts a planning session
// logging to the command's stderr.
func openSession(cmd *cobra.Command, file string) (*planner.Session, *config.Scenario, error) {
	if file == "" {
		return nil, nil, fmt.Errorf("scenario file required (-f)")
	}
	logger, err := newLogger(cmd.ErrOrStderr(), globalFlags)
	if err != nil {
		return nil, nil, err
	}
	sc, err := config.Load(file)
	if err != nil {
		return nil, nil, err
	}
	g, err := sc.Grid()
	if err != nil {
		return nil, nil, err
	}
	opts, err := sc.Options()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, planner.WithLogger(logger))

	s, err := planner.NewSession(g, sc.StartCell(), sc.DestinationCell(), opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, sc, nil
}
