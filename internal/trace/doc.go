// Package trace generates step-by-step execution traces of Comb Sort.
//
// A trace is the complete execution history of one sort, recorded as an
// ordered list of [Step] values:
//
//   - [Generate]: runs Comb Sort and returns the full [Trace]
//   - [Step]: immutable snapshot of the working array at one event
//   - [Annotator]: fills the human-readable description and listing line
//   - [Delta]: compact form that rebuilds snapshots on demand
//   - [Verify]: checks a trace against the execution invariants
//
// # Example
//
//	t, err := trace.Generate([]float64{5, 3, 8, 1})
//	if err != nil {
//		return err
//	}
//	last := t.Last() // kind complete, array [1 3 5 8]
//
// # Thread Safety
//
// Generation shares no state between calls, so any number of generations
// may run in parallel. A returned Trace is never mutated by this package;
// callers that only read it may share it freely.
package trace
