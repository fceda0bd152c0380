// Package report prints labelled calculation results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/kinelab/internal/formula"
)

// Basic holds the inputs and results of the velocity/acceleration/force demo.
type Basic struct {
	Distance, Time, Velocity float64
	V0, V1, AccelTime, Accel float64
	Mass, Force              float64
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w, Rule("="))
	fmt.Fprintln(w, Title.Render(title))
	fmt.Fprintln(w, Rule("="))
}

func footer(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule("="))
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "   %s %s\n", Label.Render(label+":"), Value.Render(value))
}

func WriteBasic(w io.Writer, b Basic) {
	header(w, "Basic Physics Calculator")

	fmt.Fprintln(w)
	fmt.Fprintln(w, Section.Render("1. Velocity Calculation:"))
	line(w, "Distance", fmt.Sprintf("%g m", b.Distance))
	line(w, "Time", fmt.Sprintf("%g s", b.Time))
	line(w, "Velocity", fmt.Sprintf("%g m/s", b.Velocity))

	fmt.Fprintln(w)
	fmt.Fprintln(w, Section.Render("2. Acceleration Calculation:"))
	line(w, "Initial velocity", fmt.Sprintf("%g m/s", b.V0))
	line(w, "Final velocity", fmt.Sprintf("%g m/s", b.V1))
	line(w, "Time", fmt.Sprintf("%g s", b.AccelTime))
	line(w, "Acceleration", fmt.Sprintf("%g m/s²", b.Accel))

	fmt.Fprintln(w)
	fmt.Fprintln(w, Section.Render("3. Force Calculation:"))
	line(w, "Mass", fmt.Sprintf("%g kg", b.Mass))
	line(w, "Acceleration", fmt.Sprintf("%g m/s²", b.Accel))
	line(w, "Force", fmt.Sprintf("%g N", b.Force))

	footer(w)
}

func WriteProjectiles(w io.Writer, trs []formula.Trajectory) {
	header(w, "Projectile Motion Calculator")

	for _, tr := range trs {
		fmt.Fprintln(w)
		fmt.Fprintln(w, Section.Render(fmt.Sprintf("Launch Angle: %g°", tr.AngleDeg)))
		fmt.Fprintln(w, Rule("-"))
		line(w, "Initial velocity", fmt.Sprintf("%g m/s", tr.Speed))
		line(w, "Horizontal velocity", fmt.Sprintf("%.2f m/s", tr.VX))
		line(w, "Vertical velocity", fmt.Sprintf("%.2f m/s", tr.VY))
		line(w, "Time of flight", fmt.Sprintf("%.2f s", tr.TimeOfFlight))
		line(w, "Maximum height", fmt.Sprintf("%.2f m", tr.MaxHeight))
		line(w, "Range", fmt.Sprintf("%.2f m", tr.Range))
		if tr.TimeOfFlight < 0 {
			fmt.Fprintln(w, Hint.Render("   launch points below the horizon; time of flight is negative"))
		}
	}

	footer(w)
}

// Analysis is the summary of a differentiated position series.
type Analysis struct {
	Source    string
	Synthetic bool
	Samples   int
	Position  formula.Stats
	Velocity  formula.Stats
}

func writeStats(w io.Writer, title string, s formula.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Section.Render(title))
	for _, k := range []string{"mean", "std", "min", "max"} {
		line(w, capitalize(k), fmt.Sprintf("%.2f", s.Map()[k]))
	}
}

func WriteAnalysis(w io.Writer, a Analysis) {
	header(w, "Data Analysis and Visualization")

	src := a.Source
	if a.Synthetic {
		src += " (generated)"
	}
	line(w, "Source", src)
	line(w, "Samples", fmt.Sprintf("%d", a.Samples))

	writeStats(w, "Position Statistics:", a.Position)
	writeStats(w, "Velocity Statistics:", a.Velocity)

	footer(w)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
