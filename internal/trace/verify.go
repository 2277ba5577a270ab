package trace

import (
	"fmt"
	"sort"
)

// Verify replays t against input and reports the first broken invariant.
// It checks shape, gap progression, that every compare and swap is the one
// an in-place Comb Sort would perform next, and that the final array is a
// sorted permutation of input.
func Verify(input []float64, t Trace) error {
	n := len(input)
	if len(t) < 2 {
		return &VerifyError{Step: 0, Reason: fmt.Sprintf("trace has %d steps, need at least 2", len(t))}
	}
	for i, s := range t {
		if len(s.Array) != n {
			return &VerifyError{Step: i, Reason: fmt.Sprintf("array length %d, want %d", len(s.Array), n)}
		}
		if !s.Kind.Valid() {
			return &VerifyError{Step: i, Reason: fmt.Sprintf("unknown kind %q", s.Kind)}
		}
	}

	first := t.First()
	if first.Kind != KindInit || first.Gap != n || len(first.Indices) != 0 {
		return &VerifyError{Step: 0, Reason: "first step must be init with gap n and no indices"}
	}
	if !first.Array.Equal(input) {
		return &VerifyError{Step: 0, Reason: "init array differs from input"}
	}

	r := replay{a: Array(input).Clone(), n: n, gap: n, swapped: true, inPhase: false}
	for i := 1; i < len(t)-1; i++ {
		if err := r.apply(t[i], t[i-1]); err != nil {
			return &VerifyError{Step: i, Reason: err.Error()}
		}
	}

	last := t.Last()
	idx := len(t) - 1
	if last.Kind != KindComplete {
		return &VerifyError{Step: idx, Reason: "last step must be complete"}
	}
	if err := r.finish(); err != nil {
		return &VerifyError{Step: idx, Reason: err.Error()}
	}
	if last.Gap != 1 {
		return &VerifyError{Step: idx, Reason: fmt.Sprintf("complete gap %d, want 1", last.Gap)}
	}
	if len(last.Indices) != n {
		return &VerifyError{Step: idx, Reason: "complete must highlight every position"}
	}
	for k, v := range last.Indices {
		if v != k {
			return &VerifyError{Step: idx, Reason: "complete indices must be 0..n-1"}
		}
	}
	if !last.Array.Equal(r.a) {
		return &VerifyError{Step: idx, Reason: "complete array differs from replayed array"}
	}
	if !last.Array.IsSorted() {
		return &VerifyError{Step: idx, Reason: "final array is not sorted"}
	}
	if !isPermutation(input, last.Array) {
		return &VerifyError{Step: idx, Reason: "final array is not a permutation of the input"}
	}
	return nil
}

type replay struct {
	a       Array
	n       int
	gap     int
	swapped bool
	inPhase bool
	next    int // next left index to compare in the current phase
	pending bool
	pi, pj  int
}

func (r *replay) apply(s, prev Step) error {
	if r.pending && s.Kind != KindSwap {
		return fmt.Errorf("out-of-order pair [%d %d] was never swapped", r.pi, r.pj)
	}

	switch s.Kind {
	case KindGapUpdate:
		if err := r.endPhase(); err != nil {
			return err
		}
		if r.gap == 1 && !r.swapped {
			return fmt.Errorf("gap_update after a clean gap-1 pass")
		}
		want := NextGap(r.gap)
		if s.Gap != want {
			return fmt.Errorf("gap %d, want %d", s.Gap, want)
		}
		if len(s.Indices) != 0 {
			return fmt.Errorf("gap_update must not highlight indices")
		}
		r.gap, r.swapped, r.inPhase, r.next = s.Gap, false, true, 0

	case KindCompare:
		if !r.inPhase {
			return fmt.Errorf("compare before any gap_update")
		}
		if s.Gap != r.gap {
			return fmt.Errorf("compare gap %d inside gap %d phase", s.Gap, r.gap)
		}
		if len(s.Indices) != 2 || s.Indices[0] != r.next || s.Indices[1] != r.next+r.gap {
			return fmt.Errorf("compare indices %v, want [%d %d]", s.Indices, r.next, r.next+r.gap)
		}
		r.pending, r.pi, r.pj = r.a[r.next] > r.a[r.next+r.gap], r.next, r.next+r.gap
		r.next++

	case KindSwap:
		if prev.Kind != KindCompare || !r.pending {
			return fmt.Errorf("swap without an out-of-order compare before it")
		}
		if s.Gap != r.gap {
			return fmt.Errorf("swap gap %d inside gap %d phase", s.Gap, r.gap)
		}
		if len(s.Indices) != 2 || s.Indices[0] != r.pi || s.Indices[1] != r.pj {
			return fmt.Errorf("swap indices %v, want [%d %d]", s.Indices, r.pi, r.pj)
		}
		r.a[r.pi], r.a[r.pj] = r.a[r.pj], r.a[r.pi]
		r.swapped, r.pending = true, false

	default:
		return fmt.Errorf("unexpected %s step inside the trace", s.Kind)
	}

	if !s.Array.Equal(r.a) {
		return fmt.Errorf("array %v, replay expects %v", s.Array, r.a)
	}
	return nil
}

func (r *replay) endPhase() error {
	if !r.inPhase {
		return nil
	}
	if r.pending {
		return fmt.Errorf("out-of-order pair [%d %d] was never swapped", r.pi, r.pj)
	}
	if want := r.n - r.gap; r.next != want {
		return fmt.Errorf("gap %d phase made %d compares, want %d", r.gap, r.next, want)
	}
	return nil
}

func (r *replay) finish() error {
	if !r.inPhase {
		return fmt.Errorf("complete without any gap_update")
	}
	if err := r.endPhase(); err != nil {
		return err
	}
	if r.gap != 1 || r.swapped {
		return fmt.Errorf("complete before a clean gap-1 pass")
	}
	return nil
}

func isPermutation(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]float64(nil), a...)
	y := append([]float64(nil), b...)
	sort.Float64s(x)
	sort.Float64s(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
