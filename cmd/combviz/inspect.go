package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/export"
	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/trace"
	"github.com/san-kum/combviz/internal/viz"
)

func (a *app) traceCmd() *cobra.Command {
	in := &inputFlags{}
	var kinds string
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "print every step as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := viz.ParseKinds(kinds)
			if err != nil {
				return err
			}
			_, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), viz.StepTable(t, filter, viz.GetTheme(a.cfg.Theme)))
			return nil
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVar(&kinds, "kinds", "", "only list these kinds, e.g. compare,swap")
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	in := &inputFlags{}
	var step, width, height int
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "chart the array at a step and swaps per gap phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			if step < 0 {
				step = len(t) - 1
			}
			s := t.At(step)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "step %d/%d: %s\n\n", step, len(t)-1, s.Description)
			fmt.Fprintln(out, viz.PlotArray(s, width, height))

			if chart := viz.PlotSwaps(metrics.Phases(t), width, height/2+2); chart != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, chart)
			}
			return nil
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().IntVar(&step, "step", -1, "step to plot (-1 for the last)")
	cmd.Flags().IntVar(&width, "width", 80, "chart width")
	cmd.Flags().IntVar(&height, "height", 12, "chart height")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	in := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print trace metrics and gap phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "input: %s\n", viz.FormatArray(input))
			fmt.Fprintf(out, "sorted: %s\n\n", viz.FormatArray(t.Last().Array))

			values := metrics.Collect(t)
			names := make([]string, 0, len(values))
			for name := range values {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METRIC\tVALUE")
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%.4g\n", name, values[name])
			}
			fmt.Fprintf(w, "initial_inversions\t%d\n", metrics.CountInversions(input))
			fmt.Fprintln(w)

			phases := metrics.Phases(t)
			fmt.Fprintln(w, "PHASE\tGAP\tSTART\tCOMPARES\tSWAPS")
			for i, p := range phases {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", i+1, p.Gap, p.Start, p.Compares, p.Swaps)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nswaps per phase: %s\n", viz.SparklineChart(metrics.SwapSeries(phases), len(phases)))
			return nil
		},
	}
	addInputFlags(cmd, in)
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	in := &inputFlags{}
	var file string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "check a trace against an independent replay",
		Long: `verify replays a trace and checks that every step is the one Comb Sort
would take next. With --file it checks an exported JSON document instead of
generating a new trace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []float64
			var t trace.Trace
			var err error
			if file != "" {
				input, t, err = readDocument(file)
			} else {
				input, t, err = generate(cmd, a.cfg, in)
			}
			if err != nil {
				return err
			}
			if err := trace.Verify(input, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d steps, %d compares, %d swaps, sorted %s\n",
				len(t), t.Count(trace.KindCompare), t.Count(trace.KindSwap), viz.FormatArray(t.Last().Array))
			return nil
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVarP(&file, "file", "f", "", "exported JSON document to verify")
	return cmd
}

func readDocument(path string) ([]float64, trace.Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc export.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t := doc.Steps
	if doc.Delta != nil {
		t = doc.Delta.Expand()
	}
	return doc.Input, t, nil
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			return w.Flush()
		},
	}
}
