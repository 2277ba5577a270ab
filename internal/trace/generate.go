package trace

import (
	"fmt"
	"math"
)

// ShrinkFactor divides the gap after every pass.
const ShrinkFactor = 1.3

// Annotator supplies the presentation text and listing line for a step.
// It sees the algorithmic fields only and must not depend on earlier calls.
type Annotator interface {
	Annotate(s Step) (description string, sourceLine int)
}

// AnnotatorFunc adapts a plain function to Annotator.
type AnnotatorFunc func(s Step) (string, int)

func (f AnnotatorFunc) Annotate(s Step) (string, int) { return f(s) }

type options struct {
	annotator Annotator
}

type Option func(*options)

// WithAnnotator replaces the default English annotations. A nil annotator
// leaves Description empty and SourceLine at LineFor(kind).
func WithAnnotator(a Annotator) Option {
	return func(o *options) { o.annotator = a }
}

// Generate runs Comb Sort over a copy of initial and returns every step.
func Generate(initial []float64) (Trace, error) {
	return GenerateWith(initial)
}

func GenerateWith(initial []float64, opts ...Option) (Trace, error) {
	o := options{annotator: English}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(initial); err != nil {
		return nil, err
	}

	g := &generator{
		a:         Array(initial).Clone(),
		annotator: o.annotator,
	}
	g.run()
	return g.steps, nil
}

func validate(initial []float64) error {
	if len(initial) < 2 {
		return &InputError{Length: len(initial), Index: -1, Reason: "need at least two values"}
	}
	if i := Array(initial).FirstInvalid(); i >= 0 {
		return &InputError{Length: len(initial), Index: i, Reason: "not a finite number"}
	}
	return nil
}

// NextGap shrinks gap by ShrinkFactor, never going below 1.
func NextGap(gap int) int {
	next := int(math.Floor(float64(gap) / ShrinkFactor))
	if next < 1 {
		next = 1
	}
	return next
}

type generator struct {
	a         Array
	steps     Trace
	annotator Annotator
}

func (g *generator) run() {
	n := len(g.a)
	g.emit(KindInit, n, []int{})

	gap := n
	swapped := true

	for gap != 1 || swapped {
		gap = NextGap(gap)
		g.emit(KindGapUpdate, gap, []int{})

		swapped = false
		for i := 0; i+gap < n; i++ {
			j := i + gap
			g.emit(KindCompare, gap, []int{i, j})

			if g.a[i] > g.a[j] {
				g.a[i], g.a[j] = g.a[j], g.a[i]
				swapped = true
				g.emit(KindSwap, gap, []int{i, j})
			}
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	g.emit(KindComplete, 1, all)
}

// emit appends a step owning a private copy of the working array.
func (g *generator) emit(kind Kind, gap int, indices []int) {
	s := Step{
		Array:      g.a.Clone(),
		Indices:    indices,
		Gap:        gap,
		Kind:       kind,
		SourceLine: LineFor(kind),
	}
	if g.annotator != nil {
		s.Description, s.SourceLine = g.annotator.Annotate(s)
	}
	g.steps = append(g.steps, s)
}

// EnglishMessages holds the default description format for each kind.
// The verbs consume MessageArgs in order.
var EnglishMessages = map[Kind]string{
	KindInit:      "Starting comb sort: bubble sort that compares far-apart elements first.",
	KindGapUpdate: "Gap set to %d; compare and swap elements this far apart.",
	KindCompare:   "Compare index %d and %d (gap %d).",
	KindSwap:      "Swap index %d and %d: the larger value moves right.",
	KindComplete:  "Gap reached 1 with no swaps; every element is in order.",
}

// MessageArgs returns the format arguments a description of s takes.
func MessageArgs(s Step) []any {
	i, j := 0, 0
	if len(s.Indices) >= 2 {
		i, j = s.Indices[0], s.Indices[1]
	}
	switch s.Kind {
	case KindGapUpdate:
		return []any{s.Gap}
	case KindCompare:
		return []any{i, j, s.Gap}
	case KindSwap:
		return []any{i, j}
	}
	return nil
}

// English is the default annotator.
var English Annotator = AnnotatorFunc(func(s Step) (string, int) {
	format, ok := EnglishMessages[s.Kind]
	if !ok {
		return "", LineFor(s.Kind)
	}
	return fmt.Sprintf(format, MessageArgs(s)...), LineFor(s.Kind)
})
