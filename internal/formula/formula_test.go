package formula_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/kinelab/internal/formula"
)

var _ = Describe("Velocity", func() {
	It("is zero for zero distance", func() {
		for _, t := range []float64{0.5, 1, 7, -3} {
			v, err := formula.Velocity(0, t)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeZero())
		}
	})

	It("divides distance by time", func() {
		v, err := formula.Velocity(100, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("==", 20))
	})

	It("rejects a zero interval", func() {
		_, err := formula.Velocity(100, 0)
		Expect(err).To(MatchError(formula.ErrZeroTime))
	})
})

var _ = Describe("Acceleration", func() {
	It("is zero without a velocity change", func() {
		a, err := formula.Acceleration(12.5, 12.5, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(BeZero())
	})

	It("averages the velocity change", func() {
		a, err := formula.Acceleration(0, 20, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(BeNumerically("==", 5))
	})

	It("rejects a zero interval", func() {
		_, err := formula.Acceleration(0, 20, 0)
		Expect(err).To(MatchError(formula.ErrZeroTime))
	})
})

var _ = Describe("Force", func() {
	It("is mass times acceleration", func() {
		Expect(formula.Force(10, 5)).To(Equal(50.0))
		m, a := 2.5, -9.81
		Expect(formula.Force(m, a)).To(Equal(m * a))
		Expect(formula.Force(0, 1e9)).To(BeZero())
	})
})

var _ = Describe("Projectile", func() {
	It("matches the 45 degree reference launch", func() {
		tr := formula.Projectile(20, 45)
		Expect(tr.TimeOfFlight).To(BeNumerically("~", 2.884, 1e-2))
		Expect(tr.MaxHeight).To(BeNumerically("~", 10.19, 1e-2))
		Expect(tr.Range).To(BeNumerically("~", 40.77, 1e-2))
		Expect(tr.Gravity).To(Equal(formula.StandardGravity))
	})

	It("has no horizontal travel at 90 degrees", func() {
		tr := formula.Projectile(30, 90)
		Expect(tr.VX).To(BeNumerically("~", 0, 1e-9))
		Expect(tr.Range).To(BeNumerically("~", 0, 1e-9))
		Expect(tr.VY).To(BeNumerically("~", 30, 1e-9))
	})

	It("reports the named result record", func() {
		m := formula.Projectile(20, 30).Map()
		Expect(m).To(HaveLen(5))
		Expect(m).To(HaveKey("v_x"))
		Expect(m).To(HaveKey("v_y"))
		Expect(m).To(HaveKey("time_of_flight"))
		Expect(m).To(HaveKey("max_height"))
		Expect(m).To(HaveKey("range"))
		Expect(m["v_y"]).To(BeNumerically("~", 10, 1e-9))
	})

	It("gives complementary angles the same range", func() {
		a := formula.Projectile(25, 30)
		b := formula.Projectile(25, 60)
		Expect(a.Range).To(BeNumerically("~", b.Range, 1e-9))
	})

	It("leaves negative angles unguarded", func() {
		tr := formula.Projectile(20, -30)
		Expect(tr.TimeOfFlight).To(BeNumerically("<", 0))
	})

	Context("with custom gravity", func() {
		It("scales with 1/g", func() {
			earth := formula.Projectile(20, 45)
			moon, err := formula.ProjectileWithGravity(20, 45, 1.62)
			Expect(err).NotTo(HaveOccurred())
			Expect(moon.Range).To(BeNumerically("~", earth.Range*formula.StandardGravity/1.62, 1e-9))
		})

		It("rejects non-positive gravity", func() {
			_, err := formula.ProjectileWithGravity(20, 45, 0)
			Expect(err).To(MatchError(formula.ErrNonPositiveGravity))
			_, err = formula.ProjectileWithGravity(20, 45, -9.81)
			Expect(err).To(MatchError(formula.ErrNonPositiveGravity))
		})
	})

	Describe("Path", func() {
		It("starts at the origin and lands at the range", func() {
			tr := formula.Projectile(20, 45)
			path := tr.Path(50)
			Expect(path).To(HaveLen(50))
			Expect(path[0].X).To(BeZero())
			Expect(path[0].Y).To(BeZero())
			Expect(path[49].X).To(BeNumerically("~", tr.Range, 1e-9))
			Expect(path[49].Y).To(BeZero())

			peak := 0.0
			for _, p := range path {
				peak = math.Max(peak, p.Y)
			}
			Expect(peak).To(BeNumerically("<=", tr.MaxHeight+1e-9))
			Expect(peak).To(BeNumerically("~", tr.MaxHeight, 0.05))
		})

		It("collapses to the launch point when never airborne", func() {
			Expect(formula.Projectile(20, -10).Path(20)).To(HaveLen(1))
		})
	})
})

var _ = Describe("NumericalVelocity", func() {
	It("recovers a constant slope", func() {
		time := formula.Linspace(0, 10, 25)
		pos := make([]float64, len(time))
		for i, t := range time {
			pos[i] = 3.5 * t
		}

		v, err := formula.NumericalVelocity(time, pos)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(HaveLen(len(time)))
		for _, x := range v {
			Expect(x).To(BeNumerically("~", 3.5, 1e-9))
		}
	})

	It("rejects mismatched lengths", func() {
		_, err := formula.NumericalVelocity([]float64{0, 1, 2}, []float64{0, 1})
		Expect(err).To(MatchError(formula.ErrLengthMismatch))
	})

	It("rejects a single sample", func() {
		_, err := formula.NumericalVelocity([]float64{0}, []float64{1})
		Expect(err).To(MatchError(formula.ErrTooFewSamples))
	})

	It("rejects repeated timestamps", func() {
		_, err := formula.NumericalVelocity([]float64{0, 1, 1}, []float64{0, 1, 2})
		Expect(err).To(MatchError(formula.ErrZeroTime))
	})

	It("rejects timestamps that double back over an interior sample", func() {
		v, err := formula.NumericalVelocity([]float64{0, 1, 0}, []float64{0, 1, 2})
		Expect(err).To(MatchError(formula.ErrZeroTime))
		Expect(v).To(BeNil())
	})
})

var _ = Describe("Describe", func() {
	It("summarises a sample", func() {
		s, err := formula.Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Mean).To(BeNumerically("~", 5, 1e-12))
		Expect(s.Std).To(BeNumerically("~", 2, 1e-12))
		Expect(s.Min).To(Equal(2.0))
		Expect(s.Max).To(Equal(9.0))
		Expect(s.Map()).To(HaveLen(4))
	})

	It("rejects an empty sample", func() {
		_, err := formula.Describe(nil)
		Expect(err).To(MatchError(formula.ErrEmptySample))
	})
})
