// Package metrics observes finished traces and reduces them to numbers.
package metrics

import "github.com/san-kum/combviz/internal/trace"

// Metric accumulates a value over the steps it observes.
type Metric interface {
	Name() string
	Observe(s trace.Step)
	Value() float64
	Reset()
}

// Default returns a fresh set of the built-in metrics.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewCompares(),
		NewSwaps(),
		NewGapPhases(),
		NewFinalPasses(),
		NewSwapRatio(),
		NewInversions(),
	}
}

// Collect resets ms, feeds them every step of t and returns their values by
// name. With no metrics it uses Default.
func Collect(t trace.Trace, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range t {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Upto collects metrics over the prefix t[0..i], the view a player has
// after reaching step i.
func Upto(t trace.Trace, i int, ms ...Metric) map[string]float64 {
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	if len(t) == 0 {
		return Collect(nil, ms...)
	}
	return Collect(t[:i+1], ms...)
}
