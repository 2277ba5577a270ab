package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/combviz/internal/trace"
)

const (
	maxBarWidth = 5
	barSpacing  = 1
)

// Bounds returns the value range bars are scaled against. The floor is 0
// unless the array holds negative values.
func Bounds(a trace.Array) (lo, hi float64) {
	if len(a) == 0 {
		return 0, 1
	}
	lo, hi = 0, a[0]
	for _, v := range a {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// barHeight scales v into [1, height] rows.
func barHeight(v, lo, hi float64, height int) int {
	h := int((v-lo)/(hi-lo)*float64(height) + 0.5)
	if h < 1 {
		h = 1
	}
	if h > height {
		h = height
	}
	return h
}

// RenderBars draws s as a bar chart of at most width columns and height
// rows, followed by a value row and the gap arc. Arrays too wide for one
// column per bar fall back to a Braille canvas.
func RenderBars(s trace.Step, th Theme, width, height int) string {
	n := len(s.Array)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if n*(1+barSpacing)-barSpacing > width {
		return renderDense(s, th, width, height)
	}

	bw := (width + barSpacing) / n
	bw -= barSpacing
	if bw > maxBarWidth {
		bw = maxBarWidth
	}
	if bw < 1 {
		bw = 1
	}

	lo, hi := Bounds(s.Array)
	heights := make([]int, n)
	styles := make([]lipgloss.Style, n)
	for i, v := range s.Array {
		heights[i] = barHeight(v, lo, hi, height)
		styles[i] = lipgloss.NewStyle().Foreground(th.RoleColor(Highlight(s, i)))
	}

	sp := strings.Repeat(" ", barSpacing)
	blank := strings.Repeat(" ", bw)
	block := strings.Repeat("█", bw)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i := range s.Array {
			if i > 0 {
				b.WriteString(sp)
			}
			if heights[i] >= row {
				b.WriteString(styles[i].Render(block))
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(valueRow(s, th, bw))
	b.WriteString("\n")
	b.WriteString(GapArc(s, th, bw+barSpacing, bw))
	return b.String()
}

func valueRow(s trace.Step, th Theme, bw int) string {
	var b strings.Builder
	for i, v := range s.Array {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", barSpacing))
		}
		label := strconv.FormatFloat(v, 'g', -1, 64)
		if len(label) > bw {
			label = strings.Repeat("·", bw)
		}
		label = fmt.Sprintf("%*s", bw, label)
		style := lipgloss.NewStyle().Foreground(th.Muted)
		if Highlight(s, i) != RoleNeutral {
			style = style.Foreground(th.Text).Bold(true)
		}
		b.WriteString(style.Render(label))
	}
	return b.String()
}

// GapArc draws a dashed bracket joining the two highlighted bars of a
// compare or swap step. pitch is the column distance between bar starts.
// Other steps get an empty line.
func GapArc(s trace.Step, th Theme, pitch, bw int) string {
	if len(s.Indices) != 2 || (s.Kind != trace.KindCompare && s.Kind != trace.KindSwap) {
		return ""
	}
	i, j := s.Indices[0], s.Indices[1]
	if j < i {
		i, j = j, i
	}
	start := i*pitch + bw/2
	end := j*pitch + bw/2
	if end <= start {
		return ""
	}

	inner := end - start - 1
	label := fmt.Sprintf(" gap %d ", s.Gap)
	var mid string
	if inner >= len(label)+2 {
		left := (inner - len(label)) / 2
		mid = strings.Repeat("╌", left) + label + strings.Repeat("╌", inner-left-len(label))
	} else {
		mid = strings.Repeat("╌", inner)
	}

	color := th.Compare
	if s.Kind == trace.KindSwap {
		color = th.Swap
	}
	arc := lipgloss.NewStyle().Foreground(color).Render("└" + mid + "┘")
	return strings.Repeat(" ", start) + arc
}

func renderDense(s trace.Step, th Theme, width, height int) string {
	c := NewCanvas(width, height)
	lo, hi := Bounds(s.Array)
	cols := c.Bars(s.Array, lo, hi)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(th.Neutral).Render(strings.TrimRight(c.String(), "\n")))
	b.WriteString("\n")

	marks := []rune(strings.Repeat(" ", width))
	mark := '^'
	switch s.Kind {
	case trace.KindSwap:
		mark = '*'
	case trace.KindComplete:
		mark = '='
	}
	for i := range s.Array {
		if Highlight(s, i) == RoleNeutral {
			continue
		}
		if col := cols[i] / 2; col < width {
			marks[col] = mark
		}
	}
	b.WriteString(lipgloss.NewStyle().Foreground(th.RoleColor(Highlight(s, firstHighlighted(s)))).Render(string(marks)))
	return b.String()
}

func firstHighlighted(s trace.Step) int {
	if len(s.Indices) > 0 {
		return s.Indices[0]
	}
	return 0
}
