package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/combviz/internal/metrics"
	"github.com/san-kum/combviz/internal/trace"
)

// PlotArray charts the array of s as a line, index on the x axis.
func PlotArray(s trace.Step, width, height int) string {
	if len(s.Array) == 0 {
		return ""
	}
	series := s.Array
	if len(series) == 1 {
		series = trace.Array{series[0], series[0]}
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("%s  gap %d", s.Kind, s.Gap)),
	)
}

// PlotSwaps charts swaps per gap phase. It needs at least two phases.
func PlotSwaps(phases []metrics.Phase, width, height int) string {
	if len(phases) < 2 {
		return ""
	}
	return asciigraph.Plot(metrics.SwapSeries(phases),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("swaps per gap phase"),
	)
}
