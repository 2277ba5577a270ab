package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/api"
	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/export"
	"github.com/san-kum/combviz/internal/i18n"
	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/trace"
)

func (a *app) batchCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "trace every run of a scenario file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(args[0])
			if err != nil {
				return fmt.Errorf("failed to load scenario: %w", err)
			}
			inputs := sc.Inputs(a.cfg)
			tag := i18n.Parse(a.cfg.Locale)

			start := time.Now()
			traces, err := trace.GenerateBatch(cmd.Context(), inputs, trace.WithAnnotator(i18n.NewAnnotator(tag)))
			if err != nil {
				return err
			}
			slog.Info("batch generated", "scenario", sc.Name, "runs", len(traces), "elapsed", time.Since(start))

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RUN\tSIZE\tSTEPS\tCOMPARES\tSWAPS\tPHASES\tVERIFIED")
			for i, t := range traces {
				run := sc.Runs[i]
				verified := "ok"
				if err := trace.Verify(inputs[i], t); err != nil {
					verified = err.Error()
				}
				m := metrics.Collect(t)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%.0f\t%.0f\t%s\n",
					run.Name, len(inputs[i]), len(t), m["compares"], m["swaps"], m["gap_phases"], verified)

				if outDir != "" {
					doc := export.NewDocument(inputs[i], t,
						export.WithID(uuid.NewString()),
						export.WithLocale(tag.String()),
						export.Compact(),
					)
					path := filepath.Join(outDir, run.Name+".json")
					if err := writeOut(cmd, path, func(f io.Writer) error { return export.WriteJSON(f, doc) }); err != nil {
						return err
					}
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "also write one compact JSON document per run here")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP API and websocket player",
		Long: `Start an HTTP server exposing trace generation and remote playback.

Endpoints:
  GET  /health       health check
  GET  /api/presets  list input presets
  POST /api/trace    generate a trace
  GET  /api/ws       websocket player session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := api.New(a.cfg.Addr, api.Options{Config: a.cfg, Logger: slog.Default()})
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", config.DefaultAddr, "address to listen on")
	return cmd
}
