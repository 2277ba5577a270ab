package trace

import (
	"errors"
	"math"
	"testing"
)

func kindsOf(t Trace) []Kind {
	kinds := make([]Kind, len(t))
	for i, s := range t {
		kinds[i] = s.Kind
	}
	return kinds
}

func TestGenerateExample(t *testing.T) {
	tr, err := Generate([]float64{5, 3, 8, 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	first := tr.First()
	if first.Kind != KindInit || first.Gap != 4 || len(first.Indices) != 0 {
		t.Errorf("unexpected first step: %+v", first)
	}
	if !first.Array.Equal(Array{5, 3, 8, 1}) {
		t.Errorf("first array = %v", first.Array)
	}

	last := tr.Last()
	if last.Kind != KindComplete || last.Gap != 1 {
		t.Errorf("unexpected last step: %+v", last)
	}
	if !last.Array.Equal(Array{1, 3, 5, 8}) {
		t.Errorf("final array = %v, want [1 3 5 8]", last.Array)
	}
	for i, idx := range []int{0, 1, 2, 3} {
		if last.Indices[i] != idx {
			t.Errorf("complete indices = %v", last.Indices)
			break
		}
	}

	want := []Kind{
		KindInit,
		KindGapUpdate, KindCompare, KindSwap,
		KindGapUpdate, KindCompare, KindCompare,
		KindGapUpdate, KindCompare, KindCompare, KindCompare, KindSwap,
		KindGapUpdate, KindCompare, KindCompare, KindCompare,
		KindComplete,
	}
	got := kindsOf(tr)
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: kind %s, want %s", i, got[i], want[i])
		}
	}

	gaps := tr.Gaps()
	wantGaps := []int{3, 2, 1, 1}
	if len(gaps) != len(wantGaps) {
		t.Fatalf("gaps = %v, want %v", gaps, wantGaps)
	}
	for i := range wantGaps {
		if gaps[i] != wantGaps[i] {
			t.Errorf("gaps = %v, want %v", gaps, wantGaps)
			break
		}
	}

	swap := tr[3]
	if !swap.Array.Equal(Array{1, 3, 8, 5}) || swap.Indices[0] != 0 || swap.Indices[1] != 3 {
		t.Errorf("first swap = %+v", swap)
	}
}

func TestGenerateAlreadySorted(t *testing.T) {
	input := []float64{1, 2, 3}
	tr, err := Generate(input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if n := tr.Count(KindSwap); n != 0 {
		t.Errorf("expected no swaps, got %d", n)
	}
	if tr.Count(KindGapUpdate) == 0 || tr.Count(KindCompare) == 0 {
		t.Error("expected gap updates and compares")
	}

	gaps := tr.Gaps()
	if len(gaps) != 2 || gaps[0] != 2 || gaps[1] != 1 {
		t.Errorf("gaps = %v, want [2 1]", gaps)
	}
	if !tr.Last().Array.Equal(input) {
		t.Errorf("final array = %v, want %v", tr.Last().Array, input)
	}
	if len(tr) != 7 {
		t.Errorf("expected 7 steps, got %d", len(tr))
	}
}

func TestGenerateTwoElements(t *testing.T) {
	tr, err := Generate([]float64{2, 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := []Kind{KindInit, KindGapUpdate, KindCompare, KindSwap, KindGapUpdate, KindCompare, KindComplete}
	got := kindsOf(tr)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		index int
	}{
		{"nil", nil, -1},
		{"empty", []float64{}, -1},
		{"single", []float64{7}, -1},
		{"NaN", []float64{1, math.NaN(), 3}, 1},
		{"+Inf", []float64{math.Inf(1), 2}, 0},
		{"-Inf", []float64{1, 2, math.Inf(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Generate(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tr != nil {
				t.Error("expected nil trace on error")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected *InputError, got %T", err)
			}
			if inputErr.Index != tt.index {
				t.Errorf("index = %d, want %d", inputErr.Index, tt.index)
			}
		})
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	input := []float64{9, 4, 7, 1, 3}
	orig := append([]float64(nil), input...)

	if _, err := Generate(input); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for i := range orig {
		if input[i] != orig[i] {
			t.Fatalf("input mutated: %v, was %v", input, orig)
		}
	}
}

func TestStepsOwnTheirSnapshots(t *testing.T) {
	tr, err := Generate([]float64{4, 3, 2, 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	tr[0].Array[0] = 100
	for i := 1; i < len(tr); i++ {
		if tr[i].Array[0] == 100 {
			t.Fatalf("step %d shares its array with step 0", i)
		}
	}
}

func TestAnnotations(t *testing.T) {
	tr, err := Generate([]float64{3, 1, 2})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for i, s := range tr {
		if s.Description == "" {
			t.Errorf("step %d has no description", i)
		}
		if s.SourceLine != LineFor(s.Kind) {
			t.Errorf("step %d: source line %d, want %d", i, s.SourceLine, LineFor(s.Kind))
		}
		if s.SourceLine < 0 || s.SourceLine >= len(Listing) {
			t.Errorf("step %d: source line %d outside listing", i, s.SourceLine)
		}
	}
}

func TestNilAnnotatorKeepsAlgorithm(t *testing.T) {
	input := []float64{6, 2, 9, 2, 5}
	annotated, err := Generate(input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	bare, err := GenerateWith(input, WithAnnotator(nil))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if len(annotated) != len(bare) {
		t.Fatalf("length %d vs %d", len(annotated), len(bare))
	}
	for i := range bare {
		if bare[i].Description != "" {
			t.Errorf("step %d: expected empty description", i)
		}
		if bare[i].Kind != annotated[i].Kind || bare[i].Gap != annotated[i].Gap || !bare[i].Array.Equal(annotated[i].Array) {
			t.Errorf("step %d differs between annotators", i)
		}
	}
}

func TestNextGap(t *testing.T) {
	tests := []struct {
		gap, want int
	}{
		{14, 10},
		{10, 7},
		{7, 5},
		{5, 3},
		{4, 3},
		{3, 2},
		{2, 1},
		{1, 1},
	}

	for _, tt := range tests {
		if got := NextGap(tt.gap); got != tt.want {
			t.Errorf("NextGap(%d) = %d, want %d", tt.gap, got, tt.want)
		}
	}
}

func TestTraceAtClamps(t *testing.T) {
	tr, err := Generate([]float64{2, 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if tr.At(-5).Kind != KindInit {
		t.Error("At(-5) should clamp to first step")
	}
	if tr.At(1000).Kind != KindComplete {
		t.Error("At(1000) should clamp to last step")
	}

	var empty Trace
	if empty.At(0).Kind != "" || empty.First().Kind != "" || empty.Last().Kind != "" {
		t.Error("empty trace should return zero steps")
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := &InputError{Length: 1, Index: -1, Reason: "need at least two values"}
	expected := "trace: invalid input: length 1: need at least two values"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestFirstInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   Array
		want int
	}{
		{"empty", nil, -1},
		{"finite", Array{1, -2, 3.5}, -1},
		{"nan", Array{1, math.NaN(), math.Inf(1)}, 1},
		{"inf first", Array{math.Inf(-1), 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.FirstInvalid(); got != tt.want {
				t.Errorf("FirstInvalid() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnglishMessagesCoverKinds(t *testing.T) {
	for _, k := range Kinds {
		if EnglishMessages[k] == "" {
			t.Errorf("no english message for %s", k)
		}
	}

	desc, _ := English.Annotate(Step{Kind: KindSwap, Indices: []int{2, 5}, Gap: 3})
	if desc != "Swap index 2 and 5: the larger value moves right." {
		t.Errorf("swap text = %q", desc)
	}
	if desc, _ := English.Annotate(Step{Kind: "bogus"}); desc != "" {
		t.Errorf("unknown kind text = %q", desc)
	}
}
