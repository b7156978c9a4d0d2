// Command boasemc drives the type analyser over a YAML program fixture: it
// loads the fixture, runs the analyser, reports every diagnostic, and exits
// non-zero if any error was logged.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/boasemc/internal/analyzer"
	"github.com/funvibe/boasemc/internal/config"
	"github.com/funvibe/boasemc/internal/diagnostics"
	"github.com/funvibe/boasemc/internal/fixture"
	"github.com/funvibe/boasemc/internal/ops"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "boasemc",
		Short:         "Type analyser for the accepted Python subset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured diagnostic output")

	root.AddCommand(newAnalyzeCmd(&noColor))
	root.AddCommand(newVersionCmd())
	return root
}

func newAnalyzeCmd(noColor *bool) *cobra.Command {
	var overlayPath string

	cmd := &cobra.Command{
		Use:   "analyze <fixture.yaml>",
		Short: "Run the type analyser over a program fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args[0], overlayPath, *noColor)
		},
	}
	cmd.Flags().StringVar(&overlayPath, "support-overlay", "", "YAML file overriding which operations are VM-supported")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the analyser version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Version)
			return nil
		},
	}
}

func runAnalyze(path, overlayPath string, noColor bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	f, err := fixture.Load(data)
	if err != nil {
		return err
	}

	registry := ops.NewDefaultRegistry()
	if overlayPath != "" {
		overlayData, err := os.ReadFile(overlayPath)
		if err != nil {
			return fmt.Errorf("reading support overlay: %w", err)
		}
		if err := ops.OverlayFromYAML(registry, overlayData); err != nil {
			return err
		}
	}

	a := analyzer.New(f.Table, registry)
	fatal := a.Analyze(f.Module)

	var out *os.File = os.Stdout
	reporter := diagnostics.NewReporter(out)
	if noColor {
		reporter = diagnostics.NewPlainReporter(out)
	}
	reporter.Report(a.Sink())

	if fatal != nil {
		fmt.Fprintf(os.Stderr, "aborted: %s\n", fatal.Error())
		return fatal
	}
	if a.Sink().HasErrors() {
		return fmt.Errorf("analysis failed")
	}
	return nil
}
