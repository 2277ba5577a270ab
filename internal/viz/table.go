package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/combviz/internal/trace"
)

// StepTable renders steps as a table. Rows are coloured by step kind. When
// kinds is non-empty only those kinds are listed; step numbers keep their
// position in the full trace.
func StepTable(t trace.Trace, kinds []trace.Kind, th Theme) string {
	keep := func(k trace.Kind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}

	var rows [][]string
	var rowKinds []trace.Kind
	for i, s := range t {
		if !keep(s.Kind) {
			continue
		}
		ij := ""
		if len(s.Indices) == 2 {
			ij = fmt.Sprintf("%d↔%d", s.Indices[0], s.Indices[1])
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			string(s.Kind),
			strconv.Itoa(s.Gap),
			ij,
			FormatArray(s.Array),
			s.Description,
		})
		rowKinds = append(rowKinds, s.Kind)
	}

	headerStyle := lipgloss.NewStyle().Foreground(th.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.Muted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(rowKinds) {
				return cellStyle
			}
			switch rowKinds[row] {
			case trace.KindCompare:
				return cellStyle.Foreground(th.Compare)
			case trace.KindSwap:
				return cellStyle.Foreground(th.Swap)
			case trace.KindComplete:
				return cellStyle.Foreground(th.Complete)
			case trace.KindGapUpdate:
				return cellStyle.Foreground(th.Primary).Bold(true)
			}
			return cellStyle.Foreground(th.Muted)
		}).
		Headers("#", "KIND", "GAP", "PAIR", "ARRAY", "DESCRIPTION").
		Rows(rows...)

	return tbl.String()
}

// FormatArray prints values space separated in brackets.
func FormatArray(a trace.Array) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParseKinds parses a comma separated kind filter.
func ParseKinds(s string) ([]trace.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []trace.Kind
	for _, part := range strings.Split(s, ",") {
		k := trace.Kind(strings.TrimSpace(part))
		if !k.Valid() {
			return nil, fmt.Errorf("unknown step kind %q", part)
		}
		out = append(out, k)
	}
	return out, nil
}
