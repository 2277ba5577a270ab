package trace

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeltaAcrossCheckpoints(t *testing.T) {
	input := make([]float64, 40)
	for i := range input {
		input[i] = float64((i * 37) % 41)
	}
	tr, err := Generate(input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(tr) <= checkpointEvery*2 {
		t.Fatalf("trace too short to cross checkpoints: %d", len(tr))
	}

	d := Compact(tr)
	for i := range tr {
		if diff := cmp.Diff(tr[i], d.At(i)); diff != "" {
			t.Fatalf("step %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff(tr.Last(), d.At(len(tr)+10)); diff != "" {
		t.Errorf("At past the end should clamp (-want +got):\n%s", diff)
	}
}

func TestDeltaDecodedFromJSON(t *testing.T) {
	tr, err := Generate([]float64{4, 9, 1, 7, 3})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := json.Marshal(Compact(tr))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var d Delta
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if diff := cmp.Diff(tr.Last(), d.At(d.Len()-1)); diff != "" {
		t.Errorf("last step mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactEmpty(t *testing.T) {
	d := Compact(nil)
	if d.Len() != 0 {
		t.Errorf("expected empty delta, got %d steps", d.Len())
	}
	if d.At(0).Kind != "" {
		t.Error("expected zero step from empty delta")
	}
	if len(d.Expand()) != 0 {
		t.Error("expected empty expansion")
	}
}

func TestDecodedDeltaConcurrentAt(t *testing.T) {
	input := make([]float64, 30)
	for i := range input {
		input[i] = float64((i * 11) % 31)
	}
	tr, err := Generate(input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	data, err := json.Marshal(Compact(tr))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var d Delta
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(d.checkpoints) == 0 {
		t.Fatal("decoded delta should carry checkpoints")
	}

	var wg sync.WaitGroup
	errs := make(chan int, len(tr))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < len(tr); i += 8 {
				if !d.At(i).Array.Equal(tr[i].Array) {
					errs <- i
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("step %d mismatch", i)
	}
}

func TestHandBuiltDelta(t *testing.T) {
	tr, err := Generate([]float64{3, 1, 2})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	full := Compact(tr)
	d := &Delta{Initial: full.Initial, Steps: full.Steps}

	for i := range tr {
		if diff := cmp.Diff(tr[i], d.At(i)); diff != "" {
			t.Fatalf("step %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if d.checkpoints != nil {
		t.Error("At should not build checkpoints")
	}
}

func TestDeltaIgnoresBadIndices(t *testing.T) {
	var d Delta
	raw := `{"initial":[2,1],"steps":[{"kind":"init","gap":0,"indices":[],"source_line":1},{"kind":"swap","gap":1,"indices":[0,9],"source_line":9}]}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := d.At(1).Array; !got.Equal(Array{2, 1}) {
		t.Errorf("array = %v", got)
	}
}
