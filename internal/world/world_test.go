package world_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/world"
)

var _ = Describe("World", func() {
	var (
		arena  physics.Arena
		params physics.Params
	)

	BeforeEach(func() {
		arena = physics.Arena{Width: 800, Height: 600}
		params = physics.DefaultParams()
	})

	newWorld := func(maxBodies int) *world.World {
		w, err := world.New(arena, params, maxBodies)
		Expect(err).NotTo(HaveOccurred())
		return w
	}

	Describe("construction", func() {
		It("rejects invalid parameters", func() {
			bad := params
			bad.Restitution = 1.5
			_, err := world.New(arena, bad, 10)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-positive capacity", func() {
			_, err := world.New(arena, params, 0)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a degenerate arena", func() {
			_, err := world.New(physics.Arena{Width: 0, Height: 600}, params, 10)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("population management", func() {
		It("never exceeds capacity and evicts oldest first", func() {
			w := newWorld(3)

			// Tag spawn order through the radius.
			for r := 1.0; r <= 5.0; r++ {
				Expect(w.Spawn(400, 300, r, 0, 0)).To(Succeed())
				Expect(w.Len()).To(BeNumerically("<=", 3))
			}

			radii := []float64{}
			for _, b := range w.Snapshot() {
				radii = append(radii, b.R)
			}
			// Survivors are the suffix of the spawn sequence, in order.
			Expect(radii).To(Equal([]float64{3, 4, 5}))
		})

		It("rejects a spawn with invalid radius and keeps the population intact", func() {
			w := newWorld(3)
			Expect(w.Spawn(400, 300, 10, 0, 0)).To(Succeed())
			Expect(w.Spawn(400, 300, -1, 0, 0)).NotTo(Succeed())
			Expect(w.Spawn(400, 300, math.NaN(), 0, 0)).NotTo(Succeed())
			Expect(w.Len()).To(Equal(1))
		})

		It("clears atomically", func() {
			w := newWorld(10)
			for i := 0; i < 5; i++ {
				Expect(w.Spawn(float64(100+i*50), 300, 10, 0, 0)).To(Succeed())
			}
			w.Clear()
			Expect(w.Len()).To(BeZero())
			Expect(w.Snapshot()).To(BeEmpty())
		})

		It("keeps mass immutable across steps", func() {
			w := newWorld(5)
			Expect(w.Spawn(400, 100, 25, 40, 0)).To(Succeed())
			want := math.Pi * 25 * 25
			for i := 0; i < 100; i++ {
				w.Step(0.016)
			}
			Expect(w.Snapshot()[0].Mass).To(Equal(want))
		})
	})

	Describe("stepping", func() {
		It("ignores non-positive deltas", func() {
			w := newWorld(5)
			Expect(w.Spawn(400, 300, 10, 0, 0)).To(Succeed())
			before := w.Snapshot()[0]
			w.Step(0)
			w.Step(-0.5)
			Expect(w.Snapshot()[0]).To(Equal(before))
		})

		It("clamps oversized frame deltas to the max timestep", func() {
			params.AirDrag = 0
			w := newWorld(5)
			Expect(w.Spawn(400, 100, 10, 0, 0)).To(Succeed())

			w.Step(10) // tab stall
			got := w.Snapshot()[0].VY
			Expect(got).To(BeNumerically("~", params.Gravity*params.MaxDt, 1e-9))
		})

		It("accumulates the same velocity regardless of substep count", func() {
			params.AirDrag = 0

			single, err := world.New(arena, params, 5)
			Expect(err).NotTo(HaveOccurred())
			params.Substeps = 4
			quad, err := world.New(arena, params, 5)
			Expect(err).NotTo(HaveOccurred())

			Expect(single.Spawn(400, 100, 10, 0, 0)).To(Succeed())
			Expect(quad.Spawn(400, 100, 10, 0, 0)).To(Succeed())

			single.Step(0.016)
			quad.Step(0.016)

			Expect(quad.Snapshot()[0].VY).To(BeNumerically("~", single.Snapshot()[0].VY, 1e-9))
		})

		It("resolves overlapping bodies during a step", func() {
			params.Gravity = 0
			params.AirDrag = 0
			w := newWorld(5)
			Expect(w.Spawn(390, 300, 50, 50, 0)).To(Succeed())
			Expect(w.Spawn(460, 300, 50, -50, 0)).To(Succeed())

			w.Step(0.001)

			s := w.Snapshot()
			d := math.Hypot(s[1].X-s[0].X, s[1].Y-s[0].Y)
			Expect(d).To(BeNumerically(">=", 100-1e-6))
		})
	})

	Describe("bounce energetics", func() {
		It("peaks near r²·h on the first bounce of a dropped body", func() {
			params.AirDrag = 0
			w := newWorld(1)

			const (
				radius = 10.0
				height = 200.0
			)
			floorY := arena.Height - radius
			Expect(w.Spawn(400, floorY-height, radius, 0, 0)).To(Succeed())

			hit := false
			peakY := math.Inf(1)
			for i := 0; i < 5000; i++ {
				w.Step(0.002)
				y := w.Snapshot()[0].Y
				if !hit && y >= floorY-1e-6 {
					hit = true
				}
				if hit && y < peakY {
					peakY = y
				}
			}

			Expect(hit).To(BeTrue())
			bounceHeight := floorY - peakY
			want := params.Restitution * params.Restitution * height
			Expect(bounceHeight).To(BeNumerically("~", want, height*0.08))
		})
	})

	Describe("resize", func() {
		It("confines bodies to the new arena on the next step", func() {
			w := newWorld(5)
			Expect(w.Spawn(700, 300, 10, 0, 0)).To(Succeed())

			w.Resize(400, 300)
			w.Step(0.016)

			b := w.Snapshot()[0]
			Expect(b.X).To(BeNumerically("<=", 400-b.R))
			Expect(b.Y).To(BeNumerically("<=", 300-b.R))
		})

		It("ignores degenerate dimensions", func() {
			w := newWorld(5)
			w.Resize(0, -10)
			Expect(w.Arena()).To(Equal(arena))
		})
	})
})
