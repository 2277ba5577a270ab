package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/export"
	"github.com/san-kum/combviz/internal/i18n"
	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/player"
	"github.com/san-kum/combviz/internal/viz"
)

func (a *app) exportJSONCmd() *cobra.Command {
	in := &inputFlags{}
	var out string
	var compact, listing bool
	cmd := &cobra.Command{
		Use:   "export-json",
		Short: "export a trace to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			opts := []export.DocOption{
				export.WithID(uuid.NewString()),
				export.WithLocale(i18n.Parse(a.cfg.Locale).String()),
			}
			if compact {
				opts = append(opts, export.Compact())
			}
			if listing {
				opts = append(opts, export.WithListing())
			}
			doc := export.NewDocument(input, t, opts...)
			return writeOut(cmd, out, func(w io.Writer) error { return export.WriteJSON(w, doc) })
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "store steps as deltas instead of snapshots")
	cmd.Flags().BoolVar(&listing, "listing", false, "embed the reference listing")
	return cmd
}

func (a *app) exportCSVCmd() *cobra.Command {
	in := &inputFlags{}
	var out string
	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export a trace to CSV, one row per step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			return writeOut(cmd, out, func(w io.Writer) error { return export.WriteCSV(w, t) })
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	return cmd
}

func (a *app) exportSVGCmd() *cobra.Command {
	in := &inputFlags{}
	var out, theme string
	var step, width, height int
	var phases bool
	cmd := &cobra.Command{
		Use:   "export-svg",
		Short: "export one step as an SVG bar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("theme") {
				theme = a.cfg.Theme
			}
			th := viz.GetTheme(theme)

			var svg string
			if phases {
				svg = export.PhasesSVG(metrics.Phases(t), width, height, string(th.Primary))
				if svg == "" {
					return fmt.Errorf("trace has a single gap phase; nothing to chart")
				}
			} else {
				if step < 0 {
					step = len(t) - 1
				}
				svg = export.StepSVG(t.At(step), width, height, th)
			}
			return writeOut(cmd, out, func(w io.Writer) error {
				_, err := io.WriteString(w, svg)
				return err
			})
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	cmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	cmd.Flags().IntVar(&step, "step", -1, "step to draw (-1 for the last)")
	cmd.Flags().IntVar(&width, "width", 800, "image width")
	cmd.Flags().IntVar(&height, "height", 400, "image height")
	cmd.Flags().BoolVar(&phases, "phases", false, "chart swaps per gap phase instead of a step")
	return cmd
}

func (a *app) exportGIFCmd() *cobra.Command {
	in := &inputFlags{}
	var out, theme string
	opts := export.DefaultGIFOptions()
	cmd := &cobra.Command{
		Use:   "export-gif",
		Short: "export the whole trace as an animated GIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, t, err := generate(cmd, a.cfg, in)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("speed") {
				opts.Speed = a.cfg.Speed
			}
			if !cmd.Flags().Changed("theme") {
				theme = a.cfg.Theme
			}
			opts.Theme = viz.GetTheme(theme)
			if err := writeOut(cmd, out, func(w io.Writer) error { return export.WriteGIF(w, t, opts) }); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d frames to %s\n", len(t), out)
			}
			return nil
		},
	}
	addInputFlags(cmd, in)
	cmd.Flags().StringVarP(&out, "out", "o", "combsort.gif", "output file (- for stdout)")
	cmd.Flags().StringVar(&theme, "theme", "", "colour theme")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "image width")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "image height")
	cmd.Flags().IntVar(&opts.Speed, "speed", opts.Speed, fmt.Sprintf("playback speed %d-%d", player.MinSpeed, player.MaxSpeed))
	return cmd
}

// writeOut runs write against path, or against the command's stdout when
// path is "-".
func writeOut(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" || path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
