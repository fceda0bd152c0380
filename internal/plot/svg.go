package plot

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/kinelab/internal/formula"
)

const (
	panelMargin = 50.0
	tickCount   = 5
)

var strokeColors = []string{"#1f77b4", "#d62728", "#2ca02c", "#ff7f0e", "#9467bd", "#17becf"}

type Point struct {
	X, Y float64
}

type panel struct {
	title, xLabel, yLabel string
	series                [][]Point
	labels                []string
}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func boundsOf(series [][]Point) bounds {
	b := bounds{minX: 0, maxX: 1, minY: 0, maxY: 1}
	first := true
	for _, pts := range series {
		for _, p := range pts {
			if first {
				b = bounds{p.X, p.X, p.Y, p.Y}
				first = false
				continue
			}
			b.minX = min(b.minX, p.X)
			b.maxX = max(b.maxX, p.X)
			b.minY = min(b.minY, p.Y)
			b.maxY = max(b.maxY, p.Y)
		}
	}
	if b.maxX == b.minX {
		b.maxX = b.minX + 1
	}
	if b.maxY == b.minY {
		b.maxY = b.minY + 1
	}
	return b
}

// writePanel draws one framed chart whose top-left corner is at (ox, oy).
func writePanel(sb *strings.Builder, p panel, ox, oy, w, h float64) {
	b := boundsOf(p.series)
	plotW := w - 2*panelMargin
	plotH := h - 2*panelMargin
	px := func(x float64) float64 { return ox + panelMargin + (x-b.minX)/(b.maxX-b.minX)*plotW }
	py := func(y float64) float64 { return oy + h - panelMargin - (y-b.minY)/(b.maxY-b.minY)*plotH }

	fmt.Fprintf(sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>
`, ox+panelMargin, oy+panelMargin, plotW, plotH)

	for i := 0; i <= tickCount; i++ {
		fx := b.minX + float64(i)*(b.maxX-b.minX)/tickCount
		fy := b.minY + float64(i)*(b.maxY-b.minY)/tickCount
		fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dddddd"/>
`, px(fx), oy+panelMargin, px(fx), oy+h-panelMargin)
		fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dddddd"/>
`, ox+panelMargin, py(fy), ox+w-panelMargin, py(fy))
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="10" text-anchor="middle">%.2f</text>
`, px(fx), oy+h-panelMargin+14, fx)
		fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="10" text-anchor="end">%.2f</text>
`, ox+panelMargin-4, py(fy)+3, fy)
	}

	for si, pts := range p.series {
		if len(pts) == 0 {
			continue
		}
		color := strokeColors[si%len(strokeColors)]
		fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="2" d="M`, color)
		for i, pt := range pts {
			if i == 0 {
				fmt.Fprintf(sb, "%.1f,%.1f", px(pt.X), py(pt.Y))
			} else {
				fmt.Fprintf(sb, " L%.1f,%.1f", px(pt.X), py(pt.Y))
			}
		}
		sb.WriteString("\"/>\n")

		if si < len(p.labels) {
			fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="12" fill="%s">%s</text>
`, ox+w-panelMargin-110, oy+panelMargin+16+float64(si)*14, color, p.labels[si])
		}
	}

	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="14" font-weight="bold" text-anchor="middle">%s</text>
`, ox+w/2, oy+panelMargin-12, p.title)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle">%s</text>
`, ox+w/2, oy+h-12, p.xLabel)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" transform="rotate(-90 %.1f %.1f)">%s</text>
`, ox+14, oy+h/2, ox+14, oy+h/2, p.yLabel)
}

func document(width, height int, body func(sb *strings.Builder)) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height)
	body(&sb)
	sb.WriteString("</svg>\n")
	return sb.String()
}

func zip(xs, ys []float64) []Point {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}

// MotionSVG draws position and velocity against time in two panels.
func MotionSVG(time, position, velocity []float64, width, height int) string {
	if len(time) < 2 {
		return ""
	}
	half := float64(width) / 2
	return document(width, height, func(sb *strings.Builder) {
		writePanel(sb, panel{
			title: "Position vs Time", xLabel: "Time (s)", yLabel: "Position (m)",
			series: [][]Point{zip(time, position)}, labels: []string{"Position"},
		}, 0, 0, half, float64(height))
		writePanel(sb, panel{
			title: "Velocity vs Time", xLabel: "Time (s)", yLabel: "Velocity (m/s)",
			series: [][]Point{zip(time, velocity)}, labels: []string{"Velocity"},
		}, half, 0, half, float64(height))
	})
}

// TrajectorySVG draws the flight path of each trajectory, sampled n times.
func TrajectorySVG(trajectories []formula.Trajectory, n, width, height int) string {
	if len(trajectories) == 0 {
		return ""
	}
	series := make([][]Point, len(trajectories))
	labels := make([]string, len(trajectories))
	for i, tr := range trajectories {
		for _, p := range tr.Path(n) {
			series[i] = append(series[i], Point{p.X, p.Y})
		}
		labels[i] = fmt.Sprintf("%.0f° @ %.1f m/s", tr.AngleDeg, tr.Speed)
	}
	return document(width, height, func(sb *strings.Builder) {
		writePanel(sb, panel{
			title: "Projectile Trajectory", xLabel: "Distance (m)", yLabel: "Height (m)",
			series: series, labels: labels,
		}, 0, 0, float64(width), float64(height))
	})
}

func WriteFile(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
