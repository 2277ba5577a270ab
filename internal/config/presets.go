package config

import (
	"math/rand"
	"sort"
)

// Preset builds an input sequence of a recognisable shape.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// Fixed presets ignore size, min and max.
	Fixed bool `json:"fixed" yaml:"fixed"`

	build func(rng *rand.Rand, size, min, max int) []float64
}

// Build returns a new input for the preset.
func (p *Preset) Build(rng *rand.Rand, size, min, max int) []float64 {
	if max <= min {
		max = min + 1
	}
	return p.build(rng, size, min, max)
}

var Presets = map[string]*Preset{
	"random": {
		Name:        "random",
		Description: "uniform random integers in [min, max)",
		build:       randomInts,
	},
	"reversed": {
		Name:        "reversed",
		Description: "random values sorted descending",
		build: func(rng *rand.Rand, size, min, max int) []float64 {
			v := randomInts(rng, size, min, max)
			sort.Sort(sort.Reverse(sort.Float64Slice(v)))
			return v
		},
	},
	"sorted": {
		Name:        "sorted",
		Description: "random values already in order",
		build: func(rng *rand.Rand, size, min, max int) []float64 {
			v := randomInts(rng, size, min, max)
			sort.Float64s(v)
			return v
		},
	},
	"nearly_sorted": {
		Name:        "nearly_sorted",
		Description: "sorted values with a few neighbours swapped",
		build: func(rng *rand.Rand, size, min, max int) []float64 {
			v := randomInts(rng, size, min, max)
			sort.Float64s(v)
			for k := 0; k < size/5+1 && size > 1; k++ {
				i := rng.Intn(size - 1)
				v[i], v[i+1] = v[i+1], v[i]
			}
			return v
		},
	},
	"few_unique": {
		Name:        "few_unique",
		Description: "many duplicates drawn from four distinct values",
		build: func(rng *rand.Rand, size, min, max int) []float64 {
			levels := make([]float64, 4)
			for i := range levels {
				levels[i] = float64(min + (max-min)*(i+1)/5)
			}
			v := make([]float64, size)
			for i := range v {
				v[i] = levels[rng.Intn(len(levels))]
			}
			return v
		},
	},
	"example": {
		Name:        "example",
		Description: "the four values 5 3 8 1",
		Fixed:       true,
		build: func(*rand.Rand, int, int, int) []float64 {
			return []float64{5, 3, 8, 1}
		},
	},
}

func randomInts(rng *rand.Rand, size, min, max int) []float64 {
	v := make([]float64, size)
	for i := range v {
		v[i] = float64(min + rng.Intn(max-min))
	}
	return v
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListPresets returns every preset sorted by name.
func ListPresets() []*Preset {
	out := make([]*Preset, 0, len(Presets))
	for _, name := range PresetNames() {
		out = append(out, Presets[name])
	}
	return out
}
