package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/combviz/internal/trace"
)

// WriteCSV writes one row per step: step, kind, gap, i, j and then one
// column per array position. i and j are empty unless the step has a pair.
func WriteCSV(w io.Writer, t trace.Trace) error {
	cw := csv.NewWriter(w)

	n := len(t.First().Array)
	header := []string{"step", "kind", "gap", "i", "j"}
	for k := 0; k < n; k++ {
		header = append(header, fmt.Sprintf("x%d", k))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for idx, s := range t {
		row[0] = strconv.Itoa(idx)
		row[1] = string(s.Kind)
		row[2] = strconv.Itoa(s.Gap)
		row[3], row[4] = "", ""
		if len(s.Indices) == 2 {
			row[3] = strconv.Itoa(s.Indices[0])
			row[4] = strconv.Itoa(s.Indices[1])
		}
		for k := 0; k < n; k++ {
			row[5+k] = strconv.FormatFloat(s.Array[k], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
