package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/multipage"
	"github.com/3-lines-studio/multipage/internal/adapters/cli"
	"github.com/3-lines-studio/multipage/internal/adapters/env"
	"github.com/3-lines-studio/multipage/internal/adapters/fs"
	"github.com/3-lines-studio/multipage/internal/adapters/watch"
	"github.com/3-lines-studio/multipage/internal/core"
)

func devCmd(flags *globalFlags) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server.

Page routes are answered from the page configuration, other requests
are served from the project root. Changes to the configuration file
start a new session; changes to templates are picked up on the next
request.

Examples:
  multipage dev
  multipage dev --port=8080
  multipage dev --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := env.Load()
			if host != "" {
				settings.Host = host
			}
			if port > 0 {
				settings.Port = port
			}
			settings.Verbose = settings.Verbose || flags.verbose
			return runDev(cmd.Context(), flags, settings)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default MULTIPAGE_HOST or localhost)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default MULTIPAGE_PORT or 5173)")

	return cmd
}

func runDev(ctx context.Context, flags *globalFlags, settings env.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(settings.Verbose)
	output := cli.NewOutput()

	cache, err := fs.NewCachingFileSystem(fs.NewOSFileSystem(), fs.DefaultCacheSize)
	if err != nil {
		return err
	}

	opts := []multipage.Option{
		multipage.WithFileSystem(cache),
		multipage.WithDev(settings.Dev),
	}
	plugin, err := loadPlugin(flags, logger, opts...)
	if err != nil {
		return err
	}

	server := multipage.NewDevServer(plugin, prometheus.NewRegistry(), logger)

	watcher, err := watch.New(plugin.Root(), func(p string) {
		onDevChange(server, cache, flags, logger, output, opts, p)
	}, logger)
	if err != nil {
		return fmt.Errorf("watch %s: %w", plugin.Root(), err)
	}
	defer func() { _ = watcher.Close() }()
	go watcher.Run(ctx)

	httpServer := &http.Server{
		Addr:              settings.Address(),
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	output.PrintHeader("multipage dev")
	output.PrintStep("", "Serving %s on http://%s", plugin.Root(), settings.Address())
	output.PrintStep("", "%d pages, metrics at %s", len(plugin.Pages()), multipage.MetricsPath)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	output.PrintStep("", "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// onDevChange reloads the session when the configuration file changes and
// drops cached copies of any other changed file.
func onDevChange(server *multipage.DevServer, cache *fs.CachingFileSystem, flags *globalFlags, logger *slog.Logger, output *cli.Output, opts []multipage.Option, changed string) {
	cache.Invalidate(changed)

	current := server.Plugin()
	if !isConfigFile(current, changed) {
		return
	}

	next, err := loadPlugin(flags, logger, opts...)
	if err != nil {
		output.PrintError("Keeping previous pages: %v", err)
		return
	}

	cache.Purge()
	server.Swap(next)
	output.PrintSuccess("Reloaded %d pages from %s", len(next.Pages()), filepath.Base(changed))
}

func isConfigFile(p *multipage.Plugin, changed string) bool {
	if file := p.ConfigFile(); file != "" {
		return core.SlashPath(filepath.Clean(file)) == core.SlashPath(filepath.Clean(changed))
	}
	return false
}
