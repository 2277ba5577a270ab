package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/player"
	"github.com/san-kum/combviz/internal/viz"
)

type playFlags struct {
	speed    int
	theme    string
	autoplay bool
}

func addPlayFlags(cmd *cobra.Command, pf *playFlags) {
	f := cmd.Flags()
	f.IntVar(&pf.speed, "speed", player.DefaultSpeed, fmt.Sprintf("playback speed %d-%d; delay is 1001-speed ms", player.MinSpeed, player.MaxSpeed))
	f.StringVar(&pf.theme, "theme", "", "colour theme")
	f.BoolVar(&pf.autoplay, "autoplay", false, "start playing immediately")
}

func (a *app) playCmd() *cobra.Command {
	in := &inputFlags{}
	pf := &playFlags{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "step through a comb sort in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd, in, pf)
		},
	}
	addInputFlags(cmd, in)
	addPlayFlags(cmd, pf)
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, in *inputFlags, pf *playFlags) error {
	cfg, err := in.resolve(cmd, a.cfg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = pf.speed
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = pf.theme
	}

	p, err := player.New(generator(cfg), cfg.Source(),
		player.WithSpeed(cfg.Speed),
		player.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	opts := []viz.ModelOption{viz.WithTheme(cfg.Theme)}
	if pf.autoplay {
		opts = append(opts, viz.WithAutoplay())
	}
	return viz.Run(p, opts...)
}
