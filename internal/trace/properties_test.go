package trace_test

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/combviz/internal/trace"
)

func randomInput(rng *rand.Rand, n, lo, hi int) []float64 {
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(lo + rng.Intn(hi-lo))
	}
	return in
}

func reversed(n int) []float64 {
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(n - i)
	}
	return in
}

func cloneTrace(t trace.Trace) trace.Trace {
	c := make(trace.Trace, len(t))
	for i, s := range t {
		s.Array = s.Array.Clone()
		s.Indices = append([]int{}, s.Indices...)
		c[i] = s
	}
	return c
}

var _ = Describe("Generate", func() {
	rng := rand.New(rand.NewSource(42))

	cases := []struct {
		name  string
		input []float64
	}{
		{"two values", []float64{2, 1}},
		{"example", []float64{5, 3, 8, 1}},
		{"already sorted", []float64{1, 2, 3, 4, 5, 6}},
		{"reversed", reversed(14)},
		{"all equal", []float64{7, 7, 7, 7, 7}},
		{"duplicates", []float64{3, 1, 3, 1, 2, 2, 3}},
		{"negatives", []float64{-1.5, 4, -8, 0, 2.25, -1.5}},
		{"ui sized", randomInput(rng, 14, 15, 95)},
		{"large", randomInput(rng, 200, 0, 50)},
	}

	for _, tc := range cases {
		input := tc.input
		Context("with "+tc.name+" input", func() {
			var t trace.Trace

			BeforeEach(func() {
				var err error
				t, err = trace.Generate(input)
				Expect(err).NotTo(HaveOccurred())
			})

			It("passes full verification", func() {
				Expect(trace.Verify(input, t)).To(Succeed())
			})

			It("starts with init and ends with complete", func() {
				first, last := t.First(), t.Last()
				Expect(first.Kind).To(Equal(trace.KindInit))
				Expect(first.Gap).To(Equal(len(input)))
				Expect(first.Indices).To(BeEmpty())

				Expect(last.Kind).To(Equal(trace.KindComplete))
				Expect(last.Gap).To(Equal(1))
				Expect(last.Indices).To(HaveLen(len(input)))
				for i, idx := range last.Indices {
					Expect(idx).To(Equal(i))
				}
			})

			It("keeps the array length constant", func() {
				for _, s := range t {
					Expect(s.Array).To(HaveLen(len(input)))
				}
			})

			It("ends with a sorted permutation of the input", func() {
				final := t.Last().Array
				Expect(final.IsSorted()).To(BeTrue())

				want := append([]float64(nil), input...)
				sort.Float64s(want)
				Expect([]float64(final)).To(Equal(want))
			})

			It("shrinks the gap strictly until it reaches 1", func() {
				gaps := t.Gaps()
				Expect(gaps).NotTo(BeEmpty())
				reachedOne := false
				for i, g := range gaps {
					Expect(g).To(BeNumerically(">=", 1))
					if reachedOne {
						Expect(g).To(Equal(1))
						continue
					}
					if i > 0 {
						Expect(g).To(BeNumerically("<", gaps[i-1]))
					}
					reachedOne = g == 1
				}
				Expect(gaps[len(gaps)-1]).To(Equal(1))
			})

			It("uses one gap between gap updates", func() {
				gap := 0
				for _, s := range t {
					switch s.Kind {
					case trace.KindGapUpdate:
						gap = s.Gap
					case trace.KindCompare, trace.KindSwap:
						Expect(s.Gap).To(Equal(gap))
					}
				}
			})

			It("swaps exactly the compared pair", func() {
				for i := 1; i < len(t); i++ {
					s, prev := t[i], t[i-1]
					if s.Kind != trace.KindSwap {
						continue
					}
					Expect(prev.Kind).To(Equal(trace.KindCompare))
					Expect(s.Indices).To(Equal(prev.Indices))

					a, b := s.Indices[0], s.Indices[1]
					Expect(prev.Array[a]).To(BeNumerically(">", prev.Array[b]))
					Expect(s.Array[a]).To(Equal(prev.Array[b]))
					Expect(s.Array[b]).To(Equal(prev.Array[a]))
					for k := range s.Array {
						if k != a && k != b {
							Expect(s.Array[k]).To(Equal(prev.Array[k]))
						}
					}
				}
			})

			It("leaves the array untouched on every non-swap step", func() {
				for i := 1; i < len(t); i++ {
					if t[i].Kind == trace.KindSwap {
						continue
					}
					Expect(t[i].Array.Equal(t[i-1].Array)).To(BeTrue(), "step %d", i)
				}
			})

			It("is deterministic", func() {
				again, err := trace.Generate(input)
				Expect(err).NotTo(HaveOccurred())
				Expect(cmp.Diff(t, again)).To(BeEmpty())
			})

			It("round-trips through the delta form", func() {
				d := trace.Compact(t)
				Expect(d.Len()).To(Equal(len(t)))
				Expect(cmp.Diff(t, d.Expand())).To(BeEmpty())
				for _, i := range []int{0, len(t) / 3, len(t) / 2, len(t) - 1} {
					Expect(cmp.Diff(t[i], d.At(i))).To(BeEmpty())
				}
			})
		})
	}
})

var _ = Describe("Verify", func() {
	input := []float64{9, 2, 7, 4, 1, 8}
	var good trace.Trace

	BeforeEach(func() {
		var err error
		good, err = trace.Generate(input)
		Expect(err).NotTo(HaveOccurred())
	})

	expectBroken := func(t trace.Trace) {
		err := trace.Verify(input, t)
		Expect(err).To(HaveOccurred())
		var verr *trace.VerifyError
		Expect(errors.As(err, &verr)).To(BeTrue())
	}

	It("rejects a dropped swap", func() {
		bad := cloneTrace(good)
		for i, s := range bad {
			if s.Kind == trace.KindSwap {
				bad = append(bad[:i], bad[i+1:]...)
				break
			}
		}
		expectBroken(bad)
	})

	It("rejects a duplicated compare", func() {
		bad := cloneTrace(good)
		for i, s := range bad {
			if s.Kind == trace.KindCompare {
				dup := s
				dup.Array = s.Array.Clone()
				bad = append(bad[:i+1], append(trace.Trace{dup}, bad[i+1:]...)...)
				break
			}
		}
		expectBroken(bad)
	})

	It("rejects a wrong gap", func() {
		bad := cloneTrace(good)
		for i, s := range bad {
			if s.Kind == trace.KindGapUpdate {
				bad[i].Gap = s.Gap + 1
				break
			}
		}
		expectBroken(bad)
	})

	It("rejects a tampered snapshot", func() {
		bad := cloneTrace(good)
		bad[len(bad)/2].Array[0] = 1000
		expectBroken(bad)
	})

	It("rejects a trace that stops before the clean pass", func() {
		bad := cloneTrace(good)
		lastGap := 0
		for i, s := range bad {
			if s.Kind == trace.KindGapUpdate {
				lastGap = i
			}
		}
		bad = append(bad[:lastGap], bad[len(bad)-1])
		expectBroken(bad)
	})

	It("rejects a mismatched input", func() {
		Expect(trace.Verify([]float64{1, 2, 3, 4, 5, 6}, good)).NotTo(Succeed())
	})

	It("rejects a trace that is too short", func() {
		Expect(trace.Verify(input, good[:1])).NotTo(Succeed())
	})
})
