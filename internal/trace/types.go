package trace

import (
	"math"
)

type Array []float64

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

// FirstInvalid returns the index of the first NaN or infinite value, or -1.
func (a Array) FirstInvalid() int {
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

func (a Array) Equal(other Array) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// Kind tags what a step means to a renderer.
type Kind string

const (
	KindInit      Kind = "init"
	KindGapUpdate Kind = "gap_update"
	KindCompare   Kind = "compare"
	KindSwap      Kind = "swap"
	KindComplete  Kind = "complete"
)

// Kinds lists every step kind in the order they first appear in a trace.
var Kinds = []Kind{KindInit, KindGapUpdate, KindCompare, KindSwap, KindComplete}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Step is one observable moment of the sort. Array is a full snapshot, not
// a diff. Description and SourceLine are presentation annotations only.
type Step struct {
	Array       Array  `json:"array"`
	Indices     []int  `json:"indices"`
	Gap         int    `json:"gap"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description,omitempty"`
	SourceLine  int    `json:"source_line"`
}

// Highlights reports whether position idx is one of the step's indices.
func (s Step) Highlights(idx int) bool {
	for _, i := range s.Indices {
		if i == idx {
			return true
		}
	}
	return false
}

// Trace is the ordered execution history of one sort.
type Trace []Step

func (t Trace) Len() int { return len(t) }

func (t Trace) First() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[0]
}

func (t Trace) Last() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[len(t)-1]
}

// At returns the step at i, clamped to the trace bounds.
func (t Trace) At(i int) Step {
	if len(t) == 0 {
		return Step{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	return t[i]
}

// Gaps returns the gap announced by every gap_update step, in order.
func (t Trace) Gaps() []int {
	gaps := make([]int, 0)
	for _, s := range t {
		if s.Kind == KindGapUpdate {
			gaps = append(gaps, s.Gap)
		}
	}
	return gaps
}

func (t Trace) Count(kind Kind) int {
	n := 0
	for _, s := range t {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
