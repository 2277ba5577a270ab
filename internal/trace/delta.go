package trace

import "encoding/json"

// DeltaStep holds the algorithmic fields of one step without its snapshot.
type DeltaStep struct {
	Kind        Kind   `json:"kind"`
	Gap         int    `json:"gap"`
	Indices     []int  `json:"indices"`
	Description string `json:"description,omitempty"`
	SourceLine  int    `json:"source_line"`
}

// Delta is a compact trace: the initial array plus the positions each step
// touched. Only swap steps mutate the array, so snapshots can be rebuilt by
// replaying swaps from the start.
type Delta struct {
	Initial Array       `json:"initial"`
	Steps   []DeltaStep `json:"steps"`

	// checkpoints[k] is the array after step k*checkpointEvery. Built once
	// by Compact or UnmarshalJSON and read-only afterwards.
	checkpoints []Array
}

const checkpointEvery = 64

// Compact converts a full trace into its delta form.
func Compact(t Trace) *Delta {
	d := &Delta{Steps: make([]DeltaStep, len(t))}
	if len(t) == 0 {
		return d
	}
	d.Initial = t[0].Array.Clone()
	for i, s := range t {
		d.Steps[i] = DeltaStep{
			Kind:        s.Kind,
			Gap:         s.Gap,
			Indices:     append([]int(nil), s.Indices...),
			Description: s.Description,
			SourceLine:  s.SourceLine,
		}
	}
	d.index()
	return d
}

// UnmarshalJSON decodes a delta and builds its checkpoints, so At is safe
// for concurrent use afterwards.
func (d *Delta) UnmarshalJSON(b []byte) error {
	type plain Delta
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Delta(v)
	d.index()
	return nil
}

func (d *Delta) index() {
	var checkpoints []Array
	a := d.Initial.Clone()
	for i, s := range d.Steps {
		s.apply(a)
		if i%checkpointEvery == 0 {
			checkpoints = append(checkpoints, a.Clone())
		}
	}
	d.checkpoints = checkpoints
}

// apply performs the step's swap on a, ignoring out of range indices.
func (s DeltaStep) apply(a Array) {
	if s.Kind != KindSwap || len(s.Indices) != 2 {
		return
	}
	i, j := s.Indices[0], s.Indices[1]
	if i < 0 || j < 0 || i >= len(a) || j >= len(a) {
		return
	}
	a[i], a[j] = a[j], a[i]
}

func (d *Delta) Len() int { return len(d.Steps) }

// At rebuilds the full step at i, clamped to the trace bounds.
func (d *Delta) At(i int) Step {
	if len(d.Steps) == 0 {
		return Step{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(d.Steps) {
		i = len(d.Steps) - 1
	}

	// A Delta built by hand has no checkpoints; replay from the start.
	base := i / checkpointEvery
	if base >= len(d.checkpoints) {
		a := d.Initial.Clone()
		for k := 0; k <= i; k++ {
			d.Steps[k].apply(a)
		}
		return d.step(i, a)
	}
	a := d.checkpoints[base].Clone()
	for k := base*checkpointEvery + 1; k <= i; k++ {
		d.Steps[k].apply(a)
	}
	return d.step(i, a)
}

// Expand rebuilds the full trace.
func (d *Delta) Expand() Trace {
	t := make(Trace, len(d.Steps))
	a := d.Initial.Clone()
	for i, s := range d.Steps {
		s.apply(a)
		t[i] = d.step(i, a.Clone())
	}
	return t
}

func (d *Delta) step(i int, a Array) Step {
	s := d.Steps[i]
	return Step{
		Array:       a,
		Indices:     append([]int{}, s.Indices...),
		Gap:         s.Gap,
		Kind:        s.Kind,
		Description: s.Description,
		SourceLine:  s.SourceLine,
	}
}
