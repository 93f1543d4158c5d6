package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage"
	"github.com/3-lines-studio/multipage/internal/adapters/cli"
)

var version = "dev"

type globalFlags struct {
	root    string
	verbose bool
}

func main() {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "multipage",
		Short: "Multi-page routing for bundled web projects",
		Long: `multipage maps URL routes to entry files.

It serves pages during development, wraps script entries in an HTML
template and moves built pages to the path their route implies.

Examples:
  multipage init mysite
  multipage dev
  multipage routes
  multipage relocate dist`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.root, "root", "r", ".", "Project root containing pages.config.{json,yaml,yml}")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(
		devCmd(flags),
		relocateCmd(flags),
		routesCmd(flags),
		checkCmd(flags),
		initCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		cli.NewOutput().PrintError("%s", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadPlugin(flags *globalFlags, logger *slog.Logger, opts ...multipage.Option) (*multipage.Plugin, error) {
	opts = append([]multipage.Option{
		multipage.WithRoot(flags.root),
		multipage.WithLogger(logger),
	}, opts...)

	p, err := multipage.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	return p, nil
}
