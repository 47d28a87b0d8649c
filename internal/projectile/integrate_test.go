package projectile_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/sim"
)

const g = physics.StandardGravity

func launch() projectile.Config {
	return projectile.Config{X0: 0, Y0: 1, VX0: 2 * g, VY0: g, Drag: 0.43, Dt: 0.1}
}

var _ = Describe("Integrate", func() {
	DescribeTable("trajectory shape",
		func(cfg projectile.Config) {
			traj, err := projectile.Integrate(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj).NotTo(BeEmpty())

			By("starting at the launch state")
			Expect(traj[0]).To(Equal(sim.Point{X: cfg.X0, Y: cfg.Y0, VX: cfg.VX0, VY: cfg.VY0, T: 0}))

			By("advancing time by dt per sample")
			for i := 1; i < len(traj); i++ {
				Expect(traj[i].T - traj[i-1].T).To(BeNumerically("~", cfg.Dt, 1e-9))
			}

			By("ending with the first sample below ground")
			Expect(traj.Impact().Y).To(BeNumerically("<", 0))
			for _, p := range traj[:len(traj)-1] {
				Expect(p.Y).To(BeNumerically(">=", 0))
			}
		},
		Entry("default launch, explicit", launch()),
		Entry("default launch, improved", func() projectile.Config {
			c := launch()
			c.Method = projectile.SemiImplicitEuler
			return c
		}()),
		Entry("vacuum", projectile.Config{Y0: 1, VX0: 2 * g, VY0: g, Dt: 0.1}),
		Entry("downward throw", projectile.Config{X0: -3, Y0: 20, VX0: -4, VY0: -15, Drag: 1.2, Dt: 0.01}),
		Entry("heavy drag", projectile.Config{Y0: 2, VX0: 50, VY0: 50, Drag: 25, Dt: 0.001}),
		Entry("launch from ground at rest", projectile.Config{Dt: 0.5}),
	)

	It("stays within O(dt) of the vacuum parabola with explicit Euler", func() {
		cfg := projectile.Config{X0: 0, Y0: 1, VX0: 19.614, VY0: 9.807, Drag: 0, Dt: 0.1}

		traj, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())

		for _, p := range traj {
			wantX := cfg.VX0 * p.T
			wantY := cfg.Y0 + cfg.VY0*p.T - 4.9035*p.T*p.T
			Expect(p.X).To(BeNumerically("~", wantX, 1e-9))
			// explicit Euler lags the parabola by exactly g*dt*t/2
			Expect(math.Abs(p.Y - wantY)).To(BeNumerically("<=", 0.5*g*cfg.Dt*p.T+1e-9))
		}
	})

	It("tracks the vacuum parabola exactly with improved Euler", func() {
		cfg := projectile.Config{Y0: 1, VX0: 19.614, VY0: 9.807, Dt: 0.1, Method: projectile.SemiImplicitEuler}

		traj, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())

		for _, p := range traj {
			want := physics.VacuumState(cfg.Launch(), p.T, g)
			Expect(p.Y).To(BeNumerically("~", want.Y, 1e-9))
			Expect(p.VY).To(BeNumerically("~", want.VY, 1e-9))
		}
	})

	It("distinguishes the two methods under drag", func() {
		explicit := launch()
		improved := launch()
		improved.Method = projectile.SemiImplicitEuler

		a, err := projectile.Integrate(explicit)
		Expect(err).NotTo(HaveOccurred())
		b, err := projectile.Integrate(improved)
		Expect(err).NotTo(HaveOccurred())

		maxDiff := 0.0
		for i := 0; i < len(a) && i < len(b); i++ {
			maxDiff = math.Max(maxDiff, math.Abs(a[i].Y-b[i].Y))
			maxDiff = math.Max(maxDiff, math.Abs(a[i].X-b[i].X))
		}
		Expect(maxDiff).To(BeNumerically(">", 1e-6))
	})

	It("is bit-for-bit repeatable", func() {
		cfg := launch()
		cfg.Method = projectile.SemiImplicitEuler

		first, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())
		second, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("returns a trajectory the caller owns", func() {
		cfg := launch()
		first, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())
		first[0].X = 1e6

		second, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(second[0].X).To(Equal(0.0))
	})

	It("falls strictly after the first two samples when dropped", func() {
		cfg := projectile.Config{Y0: 5, Dt: 0.1}

		traj, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(traj)).To(BeNumerically(">", 2))

		Expect(traj[1].Y).To(Equal(traj[0].Y))
		for i := 2; i < len(traj); i++ {
			Expect(traj[i].Y).To(BeNumerically("<", traj[i-1].Y))
			Expect(traj[i].X).To(Equal(0.0))
		}
		Expect(traj.Impact().Y).To(BeNumerically("<", 0))
	})

	It("terminates quickly for a near-zero upward launch from the ground", func() {
		cfg := projectile.Config{VY0: 0.01, Dt: 1.0}

		traj, err := projectile.Integrate(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj).To(HaveLen(3))
		Expect(traj[1].Y).To(BeNumerically("~", 0.01, 1e-12))
		Expect(traj[2].Y).To(BeNumerically("<", 0))
	})

	DescribeTable("rejects invalid configurations",
		func(mutate func(*projectile.Config)) {
			cfg := launch()
			mutate(&cfg)

			traj, err := projectile.Integrate(cfg)
			Expect(err).To(MatchError(projectile.ErrInvalidConfiguration))
			Expect(traj).To(BeNil())
		},
		Entry("zero dt", func(c *projectile.Config) { c.Dt = 0 }),
		Entry("negative dt", func(c *projectile.Config) { c.Dt = -0.1 }),
		Entry("negative drag", func(c *projectile.Config) { c.Drag = -0.01 }),
		Entry("launch below ground", func(c *projectile.Config) { c.Y0 = -1 }),
		Entry("NaN velocity", func(c *projectile.Config) { c.VX0 = math.NaN() }),
		Entry("infinite position", func(c *projectile.Config) { c.X0 = math.Inf(-1) }),
		Entry("infinite dt", func(c *projectile.Config) { c.Dt = math.Inf(1) }),
		Entry("negative step cap", func(c *projectile.Config) { c.MaxSteps = -5 }),
		Entry("unknown method", func(c *projectile.Config) { c.Method = projectile.Method(7) }),
	)

	It("fails with a divergence error when the step cap is hit", func() {
		cfg := launch()
		cfg.MaxSteps = 3

		traj, err := projectile.Integrate(cfg)
		Expect(err).To(MatchError(projectile.ErrSimulationDivergence))
		Expect(traj).To(BeNil())

		var simErr *sim.SimError
		Expect(err).To(BeAssignableToTypeOf(simErr))
	})
})

var _ = Describe("Run", func() {
	It("reports metrics alongside the trajectory", func() {
		m := &maxHeight{}
		res, err := projectile.Run(context.Background(), launch(), m)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKeyWithValue("max_height", res.Trajectory.Apex().Y))
		Expect(res.StepsTaken).To(Equal(len(res.Trajectory) - 1))
	})

	It("honours cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := projectile.Run(ctx, launch())
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Trace", func() {
	It("notifies the observer of every sample in order", func() {
		rec := &recorder{}
		res, err := projectile.Trace(context.Background(), launch(), rec)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.points).To(Equal([]sim.Point(res.Trajectory)))
	})

	It("does not notify on invalid configurations", func() {
		bad := launch()
		bad.Drag = -1

		rec := &recorder{}
		_, err := projectile.Trace(context.Background(), bad, rec)
		Expect(err).To(MatchError(projectile.ErrInvalidConfiguration))
		Expect(rec.points).To(BeEmpty())
	})
})

var _ = Describe("Sweep", func() {
	It("matches individual runs in input order", func() {
		cfgs := []projectile.Config{launch(), launch(), launch()}
		cfgs[1].Dt = 0.05
		cfgs[2].Method = projectile.SemiImplicitEuler

		got, err := projectile.Sweep(context.Background(), cfgs)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(3))

		for i, cfg := range cfgs {
			want, err := projectile.Integrate(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(got[i]).To(Equal(want))
		}
	})

	It("fails when any configuration is invalid", func() {
		bad := launch()
		bad.Dt = 0

		_, err := projectile.Sweep(context.Background(), []projectile.Config{launch(), bad})
		Expect(err).To(MatchError(projectile.ErrInvalidConfiguration))
	})
})

type maxHeight struct{ y float64 }

func (m *maxHeight) Name() string { return "max_height" }
func (m *maxHeight) Observe(p sim.Point) {
	if p.Y > m.y {
		m.y = p.Y
	}
}
func (m *maxHeight) Value() float64 { return m.y }
func (m *maxHeight) Reset()         { m.y = math.Inf(-1) }

type recorder struct{ points []sim.Point }

func (r *recorder) OnStep(p sim.Point) { r.points = append(r.points, p) }
