package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/trace"
	"github.com/san-kum/combviz/internal/viz"
)

// StepSVG draws one step as a bar chart in th's colours, with the gap arc
// dashed under a compared or swapped pair.
func StepSVG(s trace.Step, width, height int, th viz.Theme) string {
	n := len(s.Array)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, th.Background))

	if n == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	pad := float64(width) * 0.04
	arcSpace := float64(height) * 0.12
	plotW := float64(width) - 2*pad
	plotH := float64(height) - 2*pad - arcSpace
	slot := plotW / float64(n)
	barW := slot * 0.8
	lo, hi := viz.Bounds(s.Array)
	base := pad + plotH

	sb.WriteString("<g>\n")
	for i, v := range s.Array {
		h := (v - lo) / (hi - lo) * plotH
		if h < 1 {
			h = 1
		}
		x := pad + float64(i)*slot + (slot-barW)/2
		fill := th.RoleColor(viz.Highlight(s, i))
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>
`, x, base-h, barW, h, barW*0.15, fill))
	}
	sb.WriteString("</g>\n")

	if len(s.Indices) == 2 && (s.Kind == trace.KindCompare || s.Kind == trace.KindSwap) {
		x1 := pad + (float64(s.Indices[0])+0.5)*slot
		x2 := pad + (float64(s.Indices[1])+0.5)*slot
		y := base + arcSpace*0.5
		stroke := th.Compare
		if s.Kind == trace.KindSwap {
			stroke = th.Swap
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" stroke-dasharray="6 4" d="M%.1f,%.1f Q%.1f,%.1f %.1f,%.1f"/>
`, stroke, x1, base+2, (x1+x2)/2, y+arcSpace*0.4, x2, base+2))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.0f">%s gap=%d</text>
`, pad, pad*0.8, th.Muted, pad*0.6+6, s.Kind, s.Gap))
	sb.WriteString("</svg>")
	return sb.String()
}

// PhasesSVG draws swaps per gap phase as a polyline.
func PhasesSVG(phases []metrics.Phase, width, height int, strokeColor string) string {
	if len(phases) < 2 {
		return ""
	}

	maxY := 0.0
	for _, p := range phases {
		if float64(p.Swaps) > maxY {
			maxY = float64(p.Swaps)
		}
	}
	if maxY == 0 {
		maxY = 1
	}
	// Add padding
	maxY *= 1.1
	rangeX := float64(len(phases) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range phases {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - float64(p.Swaps)/maxY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
