package metrics

import "github.com/san-kum/combviz/internal/trace"

// Phase summarises the work done under one gap_update.
type Phase struct {
	Gap      int `json:"gap"`
	Start    int `json:"start"`
	Compares int `json:"compares"`
	Swaps    int `json:"swaps"`
}

// Phases splits t at its gap_update steps. Start is the index of the
// gap_update step that opens each phase.
func Phases(t trace.Trace) []Phase {
	var phases []Phase
	for i, s := range t {
		switch s.Kind {
		case trace.KindGapUpdate:
			phases = append(phases, Phase{Gap: s.Gap, Start: i})
		case trace.KindCompare:
			if len(phases) > 0 {
				phases[len(phases)-1].Compares++
			}
		case trace.KindSwap:
			if len(phases) > 0 {
				phases[len(phases)-1].Swaps++
			}
		}
	}
	return phases
}

// PhaseAt returns the index into Phases(t) of the phase containing step i,
// or -1 before the first gap_update.
func PhaseAt(phases []Phase, i int) int {
	at := -1
	for k, p := range phases {
		if p.Start > i {
			break
		}
		at = k
	}
	return at
}

// SwapSeries returns swaps per phase as float64, ready for plotting.
func SwapSeries(phases []Phase) []float64 {
	out := make([]float64, len(phases))
	for i, p := range phases {
		out[i] = float64(p.Swaps)
	}
	return out
}
