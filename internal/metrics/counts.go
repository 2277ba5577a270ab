package metrics

import "github.com/san-kum/combviz/internal/trace"

// KindCount counts steps of one kind, or every step when kind is empty.
type KindCount struct {
	name  string
	kind  trace.Kind
	count int
}

func NewSteps() *KindCount {
	return &KindCount{name: "steps"}
}

func NewCompares() *KindCount {
	return &KindCount{name: "compares", kind: trace.KindCompare}
}

func NewSwaps() *KindCount {
	return &KindCount{name: "swaps", kind: trace.KindSwap}
}

func NewGapPhases() *KindCount {
	return &KindCount{name: "gap_phases", kind: trace.KindGapUpdate}
}

func (c *KindCount) Name() string { return c.name }

func (c *KindCount) Observe(s trace.Step) {
	if c.kind == "" || s.Kind == c.kind {
		c.count++
	}
}

func (c *KindCount) Value() float64 { return float64(c.count) }

func (c *KindCount) Reset() { c.count = 0 }

// FinalPasses counts gap_update steps at gap 1, i.e. the bubble passes run
// after the gap has fully shrunk.
type FinalPasses struct {
	passes int
}

func NewFinalPasses() *FinalPasses { return &FinalPasses{} }

func (f *FinalPasses) Name() string { return "final_passes" }

func (f *FinalPasses) Observe(s trace.Step) {
	if s.Kind == trace.KindGapUpdate && s.Gap == 1 {
		f.passes++
	}
}

func (f *FinalPasses) Value() float64 { return float64(f.passes) }

func (f *FinalPasses) Reset() { f.passes = 0 }

// SwapRatio is swaps per compare. It is 0 before the first compare.
type SwapRatio struct {
	compares int
	swaps    int
}

func NewSwapRatio() *SwapRatio { return &SwapRatio{} }

func (r *SwapRatio) Name() string { return "swap_ratio" }

func (r *SwapRatio) Observe(s trace.Step) {
	switch s.Kind {
	case trace.KindCompare:
		r.compares++
	case trace.KindSwap:
		r.swaps++
	}
}

func (r *SwapRatio) Value() float64 {
	if r.compares == 0 {
		return 0
	}
	return float64(r.swaps) / float64(r.compares)
}

func (r *SwapRatio) Reset() {
	r.compares = 0
	r.swaps = 0
}
