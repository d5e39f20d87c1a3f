// Package report is the offline dashboard: it loads the same sources as the
// API and prints each section as a table
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"crimemap/internal/platform/config"
	"crimemap/internal/services/api/dashboard/domain"
	dashsvc "crimemap/internal/services/api/dashboard/service"
	"crimemap/internal/services/dataset"
)

// ExitCode is the process exit status
type ExitCode int

const (
	exitCodeSuccess ExitCode = 0
	exitCodeError   ExitCode = 1
)

// flags shared by every command
type flags struct {
	historical string
	recent     string
	boundaries string

	state string
	from  int
	to    int
	top   int
}

func (f *flags) selection() domain.SelectionInput {
	return domain.SelectionInput{State: f.state, YearFrom: f.from, YearTo: f.to, Top: f.top}
}

// env is what a command runs against
type env struct {
	svc domain.ServicePort
	out io.Writer
	sel domain.SelectionInput
}

func newService(cfg config.Conf, f *flags) domain.ServicePort {
	locs := dataset.Locations{Historical: f.historical, Recent: f.recent, Boundaries: f.boundaries}
	data := dataset.New(locs.Sources(), dataset.WithSchema(dataset.SchemaFromConfig(cfg)))
	return dashsvc.New(data)
}

// Run executes the report CLI with args and returns the exit code
func Run(args []string, stdout, stderr io.Writer) ExitCode {
	cfg := config.New().Prefix("CRIMEMAP_")
	defaults := dataset.LocationsFromConfig(cfg)
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "crimemap-report",
		Short:         "Print the district crime dashboard as tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.historical, "historical", defaults.Historical, "historical incidents csv, path or http(s) url")
	pf.StringVar(&f.recent, "recent", defaults.Recent, "recent incidents csv, path or http(s) url")
	pf.StringVar(&f.boundaries, "boundaries", defaults.Boundaries, "district boundaries geojson, path or http(s) url")
	pf.StringVarP(&f.state, "state", "s", "", "state to report on, empty for all")
	pf.IntVar(&f.from, "from", 0, "first year, 0 for the earliest in the data")
	pf.IntVar(&f.to, "to", 0, "last year, 0 for the latest in the data")
	pf.IntVarP(&f.top, "top", "n", 0, "number of districts to rank, 0 for the default")

	run := func(fn func(context.Context, env) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return fn(ctx, env{svc: newService(cfg, f), out: cmd.OutOrStdout(), sel: f.selection()})
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{Use: "summary", Short: "Headline metrics and category breakdown", RunE: run(summary)},
		&cobra.Command{Use: "top", Short: "Districts and states with the most incidents", RunE: run(top)},
		&cobra.Command{Use: "trend", Short: "Yearly totals and growth rate", RunE: run(trend)},
		&cobra.Command{Use: "options", Short: "Selectable states and year bounds", RunE: run(options)},
		&cobra.Command{Use: "collisions", Short: "District names joined to more than one state", RunE: run(collisions)},
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitCodeError
	}
	return exitCodeSuccess
}

// Main runs the CLI against the process streams
func Main() {
	os.Exit(int(Run(os.Args[1:], os.Stdout, os.Stderr)))
}
