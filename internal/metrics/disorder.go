package metrics

import "github.com/san-kum/combviz/internal/trace"

// Inversions reports how unsorted the most recently observed array is: the
// number of pairs i < j with a[i] > a[j]. It reaches 0 at the complete step.
type Inversions struct {
	initial int
	current int
	samples int
}

func NewInversions() *Inversions { return &Inversions{} }

func (v *Inversions) Name() string { return "inversions" }

func (v *Inversions) Observe(s trace.Step) {
	// Only swaps change the array.
	if v.samples > 0 && s.Kind != trace.KindSwap {
		v.samples++
		return
	}
	v.current = CountInversions(s.Array)
	if v.samples == 0 {
		v.initial = v.current
	}
	v.samples++
}

func (v *Inversions) Value() float64 { return float64(v.current) }

// Initial returns the inversion count of the first observed array.
func (v *Inversions) Initial() int { return v.initial }

func (v *Inversions) Reset() {
	v.initial = 0
	v.current = 0
	v.samples = 0
}

// CountInversions counts out-of-order pairs in a with a merge sort.
func CountInversions(a []float64) int {
	buf := make([]float64, len(a))
	work := append([]float64(nil), a...)
	return mergeCount(work, buf)
}

func mergeCount(a, buf []float64) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := mergeCount(a[:mid], buf[:mid]) + mergeCount(a[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			count += mid - i
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	copy(buf[k:], a[j:n])
	copy(a, buf[:n])
	return count
}
