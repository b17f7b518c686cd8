package renderer

import "github.com/guptarohit/asciigraph"

// Chart renders the portfolio monthly cash-flow series as a terminal
// line chart, x being the 0-based month index. It is meant to be
// printed raw, not through the markdown renderer.
func Chart(series []float64) string {
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("Portfolio Cash Flow"),
	)
}
