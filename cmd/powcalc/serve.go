// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/powcalc/powcalc/internal/issue"
	"github.com/powcalc/powcalc/internal/metrics"
	"github.com/powcalc/powcalc/internal/webserver"
	"github.com/powcalc/powcalc/pkg/types"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCommand(app *App) *cobra.Command {
	var (
		addr string
		dir  string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the WebAssembly front end and JSON API",
		Long: `Serve the browser page, powcalc.wasm and a JSON API.

Build the module first:
  GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o out/powcalc.wasm ./cmd/powcalc-wasm

then run 'powcalc serve --dir out' and open the printed URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				app.cfg.Serve.Addr = types.ListenAddr(addr)
			}
			if cmd.Flags().Changed("dir") {
				app.cfg.Serve.Dir = dir
			}
			return app.report(runServe(withContext(cmd.Context()), app))
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from serve.addr, :8080)")
	serveCmd.Flags().StringVar(&dir, "dir", "", "directory containing powcalc.wasm")
	return serveCmd
}

func runServe(ctx context.Context, app *App) error {
	if !app.flags.verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	cfg := webserver.Config{
		Addr:       app.cfg.Serve.Addr,
		Dir:        app.cfg.Serve.Dir,
		Calculator: app.calculator(m),
		Metrics:    m,
		Logger:     app.logger,
	}
	if app.cfg.Serve.Metrics {
		cfg.Gatherer = reg
	}

	srv, err := webserver.New(cfg)
	if err != nil {
		return serveError(err, app.cfg.Serve.Addr.String())
	}
	if err := srv.Start(ctx); err != nil {
		return serveError(err, app.cfg.Serve.Addr.String())
	}

	fmt.Fprintf(app.stdout, "%s %s\n", TitleStyle.Render("Power Calculator"), SubtitleStyle.Render("serving at "+srv.URL()))
	if app.cfg.Serve.Dir == "" {
		app.logger.Warn("no --dir given; the page will use the JSON API instead of WebAssembly")
	}
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Press Ctrl+C to stop"))

	select {
	case <-ctx.Done():
	case err := <-srv.Err():
		_ = srv.Stop()
		return serveError(err, srv.Address())
	}

	if err := srv.Stop(); err != nil {
		return serveError(err, srv.Address())
	}
	fmt.Fprintln(app.stdout, "Server stopped.")
	return nil
}

func serveError(err error, addr string) error {
	return issue.NewErrorContext().
		WithOperation("serve").
		WithResource(addr).
		WithIssue(issue.ServerStartFailedId).
		WithSuggestion("Pick a free port with --addr, e.g. --addr 127.0.0.1:9090").
		Wrap(err).
		BuildError()
}
