package plot

import (
	"github.com/guptarohit/asciigraph"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 10
)

// ASCII plots data against its sample index.
func ASCII(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// ASCIIMany overlays several series in one graph, one colour each.
func ASCIIMany(series [][]float64, caption string, width, height int) string {
	if len(series) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{
		asciigraph.Blue, asciigraph.Red, asciigraph.Green,
		asciigraph.Yellow, asciigraph.Magenta, asciigraph.Cyan,
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	}
	if len(series) > 1 {
		sc := make([]asciigraph.AnsiColor, len(series))
		for i := range sc {
			sc[i] = colors[i%len(colors)]
		}
		opts = append(opts, asciigraph.SeriesColors(sc...))
	}
	return asciigraph.PlotMany(series, opts...)
}
