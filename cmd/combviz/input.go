package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/i18n"
	"github.com/san-kum/combviz/internal/trace"
)

// inputFlags select the sequence to sort. Only flags the user set override
// the configuration.
type inputFlags struct {
	input  string
	preset string
	size   int
	seed   int64
	min    int
	max    int
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	f := cmd.Flags()
	f.StringVarP(&in.input, "input", "i", "", "explicit input, e.g. 5,3,8,1")
	f.StringVar(&in.preset, "preset", config.DefaultPreset, "input preset (see 'combviz presets')")
	f.IntVarP(&in.size, "size", "n", config.DefaultSize, "number of values for generated presets")
	f.Int64Var(&in.seed, "seed", 0, "random seed (0 seeds from the clock)")
	f.IntVar(&in.min, "min", config.DefaultMin, "smallest generated value")
	f.IntVar(&in.max, "max", config.DefaultMax, "generated values stay below this")
}

// resolve applies the changed input flags over base and validates the
// result. base is not modified.
func (in *inputFlags) resolve(cmd *cobra.Command, base *config.Config) (*config.Config, error) {
	cfg := *base
	flags := cmd.Flags()

	if flags.Changed("input") {
		values, err := config.ParseInput(in.input)
		if err != nil {
			return nil, err
		}
		cfg.Input = values
	}
	if flags.Changed("preset") {
		cfg.Preset = in.preset
		if !flags.Changed("input") {
			cfg.Input = nil
		}
	}
	if flags.Changed("size") {
		cfg.Size = in.size
	}
	if flags.Changed("seed") {
		cfg.Seed = in.seed
	}
	if flags.Changed("min") {
		cfg.Min = in.min
	}
	if flags.Changed("max") {
		cfg.Max = in.max
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// generator returns a trace generator annotating in the configured locale.
func generator(cfg *config.Config) func([]float64) (trace.Trace, error) {
	ann := i18n.NewAnnotator(i18n.Parse(cfg.Locale))
	return func(in []float64) (trace.Trace, error) {
		return trace.GenerateWith(in, trace.WithAnnotator(ann))
	}
}

// generate draws one input from cfg and traces it.
func generate(cmd *cobra.Command, base *config.Config, in *inputFlags) ([]float64, trace.Trace, error) {
	cfg, err := in.resolve(cmd, base)
	if err != nil {
		return nil, nil, err
	}
	input := cfg.Source()()
	t, err := generator(cfg)(input)
	if err != nil {
		return nil, nil, fmt.Errorf("generate trace: %w", err)
	}
	return input, t, nil
}
