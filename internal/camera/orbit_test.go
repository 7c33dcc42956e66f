package camera_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
)

const tol = 1e-9

func expectVec(got, want vmath.Vec3) {
	GinkgoHelper()
	Expect(got.ApproxEqual(want, tol)).To(BeTrue(), "got %v, want %v", got, want)
}

var _ = Describe("OrbitCamera", func() {
	var (
		cfg config.CameraConfig
		cam *camera.OrbitCamera
	)

	BeforeEach(func() {
		cfg = config.DefaultCamera()
		var err error
		cam, err = camera.New(vmath.New(10, 0, 0), vmath.Zero, cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("derives the spherical offset from eye and target", func() {
			Expect(cam.Distance()).To(BeNumerically("~", 10, tol))
			Expect(cam.Azimuth()).To(BeNumerically("~", 0, tol))
			Expect(cam.Elevation()).To(BeNumerically("~", 0, tol))
			expectVec(cam.Eye(), vmath.New(10, 0, 0))
			Expect(cam.Up()).To(Equal(vmath.New(0, 1, 0)))
		})

		It("round-trips an arbitrary eye", func() {
			eye := vmath.New(3, 4, -5)
			target := vmath.New(1, 1, 1)
			c, err := camera.New(eye, target, cfg)
			Expect(err).NotTo(HaveOccurred())
			expectVec(c.Eye(), eye)
			Expect(c.Distance()).To(BeNumerically("~", eye.Distance(target), tol))
		})

		It("clamps an eye directly above the target", func() {
			c, err := camera.New(vmath.New(0, 10, 0), vmath.Zero, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Elevation()).To(Equal(camera.MaxElevation))
			Expect(c.Eye().Distance(c.Target())).To(BeNumerically("~", 10, tol))
		})

		It("rejects an eye sitting on the target", func() {
			_, err := camera.New(vmath.New(1, 2, 3), vmath.New(1, 2, 3), cfg)
			Expect(err).To(MatchError(dynamo.ErrNonPositiveDistance))
		})
	})

	Describe("Zoom", func() {
		It("moves the eye toward the target", func() {
			Expect(cam.Zoom(3)).To(Succeed())
			Expect(cam.Distance()).To(BeNumerically("~", 7, tol))
			expectVec(cam.Eye(), vmath.New(7, 0, 0))
		})

		It("moves away on negative delta", func() {
			Expect(cam.Zoom(-5)).To(Succeed())
			Expect(cam.Distance()).To(BeNumerically("~", 15, tol))
		})

		It("clamps at the floor and reports it", func() {
			err := cam.Zoom(25)
			Expect(err).To(MatchError(dynamo.ErrNonPositiveDistance))

			var ce *dynamo.CameraError
			Expect(err).To(BeAssignableToTypeOf(ce))
			Expect(cam.Distance()).To(Equal(cfg.MinDistance))
			Expect(cam.Eye().Distance(cam.Target())).To(BeNumerically("~", cfg.MinDistance, tol))
		})

		It("keeps the camera usable after clamping", func() {
			_ = cam.Zoom(100)
			Expect(cam.Zoom(-2)).To(Succeed())
			Expect(cam.Distance()).To(BeNumerically("~", cfg.MinDistance+2, tol))
		})

		It("pushes the eye out when the floor is raised", func() {
			cam.SetMinDistance(20)
			Expect(cam.Distance()).To(Equal(20.0))
			cam.SetMinDistance(-1)
			Expect(cam.MinDistance()).To(Equal(20.0))
		})
	})

	Describe("Pan", func() {
		It("moves along the heading", func() {
			cam.Pan(2, 0, false)
			expectVec(cam.Target(), vmath.New(2, 0, 0))
		})

		It("moves sideways a quarter turn from the heading", func() {
			cam.Pan(2, 0, true)
			expectVec(cam.Target(), vmath.New(0, 0, 2))
		})

		It("moves vertically by dy", func() {
			cam.Pan(0, 1.5, true)
			expectVec(cam.Target(), vmath.New(0, 1.5, 0))
		})

		It("preserves the eye offset", func() {
			cam.Rotate(0.7, 0.3)
			offset := cam.Eye().Sub(cam.Target())
			eye0, target0 := cam.Eye(), cam.Target()

			cam.Pan(3.25, -1.5, false)
			cam.Pan(-0.75, 0.5, true)

			expectVec(cam.Eye().Sub(cam.Target()), offset)
			expectVec(cam.Eye().Sub(eye0), cam.Target().Sub(target0))
			Expect(cam.Eye().Distance(cam.Target())).To(BeNumerically("~", cam.Distance(), tol))
		})
	})

	Describe("Rotate", func() {
		It("follows the spherical parametrization", func() {
			cam.Rotate(0.4, 0.2)
			d, az, el := cam.Distance(), cam.Azimuth(), cam.Elevation()
			want := vmath.New(d*math.Cos(el)*math.Cos(az), d*math.Sin(el), d*math.Cos(el)*math.Sin(az))
			expectVec(cam.Eye(), want)
		})

		It("turns the azimuth unconditionally", func() {
			cam.Rotate(math.Pi/2, 0)
			expectVec(cam.Eye(), vmath.New(0, 0, 10))
			cam.Rotate(4*math.Pi, 10)
			Expect(cam.Azimuth()).To(BeNumerically("~", math.Pi/2+4*math.Pi, tol))
		})

		It("pins the elevation when rotating up by π in small steps", func() {
			for i := 0; i < 100; i++ {
				cam.Rotate(0, math.Pi/100)
				Expect(cam.Elevation()).To(BeNumerically("<=", camera.MaxElevation))
			}
			Expect(cam.Elevation()).To(Equal(math.Pi/2 - 0.05))
		})

		It("pins the elevation on a single large rotation", func() {
			cam.Rotate(0, math.Pi)
			Expect(cam.Elevation()).To(Equal(camera.MaxElevation))
			cam.Rotate(0, -2*math.Pi)
			Expect(cam.Elevation()).To(Equal(-math.Pi/2 + 0.05))
		})

		It("recomputes the eye after pinning", func() {
			cam.Rotate(0, math.Pi)
			Expect(cam.Eye().Y).To(BeNumerically("~", 10*math.Sin(camera.MaxElevation), tol))
			Expect(cam.Eye().Distance(cam.Target())).To(BeNumerically("~", 10, tol))
		})

		It("allows moving back down from the pin", func() {
			cam.Rotate(0, math.Pi)
			cam.Rotate(0, -0.5)
			Expect(cam.Elevation()).To(BeNumerically("~", camera.MaxElevation-0.5, tol))
		})
	})

	Describe("projection", func() {
		It("puts the target in the middle of the viewport", func() {
			x, y, ok := cam.Project(cam.Target(), 200, 100)
			Expect(ok).To(BeTrue())
			Expect(x).To(BeNumerically("~", 100, 1e-6))
			Expect(y).To(BeNumerically("~", 50, 1e-6))
		})

		It("draws points above the target higher on screen", func() {
			_, y, ok := cam.Project(vmath.New(0, 1, 0), 200, 200)
			Expect(ok).To(BeTrue())
			Expect(y).To(BeNumerically("<", 100))
		})

		It("rejects points behind the eye", func() {
			_, _, ok := cam.Project(vmath.New(20, 0, 0), 200, 200)
			Expect(ok).To(BeFalse())
		})

		It("maps the eye to the view-space origin", func() {
			eye := cam.Eye()
			v := cam.View().Mul4x1([4]float64{eye.X, eye.Y, eye.Z, 1})
			Expect(v.Vec3().Len()).To(BeNumerically("~", 0, 1e-9))
		})

		It("shrinks projected radius with distance", func() {
			near := cam.ProjectRadius(vmath.Zero, 1, 600)
			Expect(cam.Zoom(-10)).To(Succeed())
			far := cam.ProjectRadius(vmath.Zero, 1, 600)
			Expect(far).To(BeNumerically("~", near/2, 1e-9))
		})
	})
})

var _ = Describe("speed modes", func() {
	var cam *camera.OrbitCamera

	BeforeEach(func() {
		var err error
		cam, err = camera.New(vmath.New(10, 0, 0), vmath.Zero, config.DefaultCamera())
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts at the base speed", func() {
		Expect(cam.Speed()).To(Equal(config.DefaultCameraSpeed))
		Expect(cam.Mode()).To(Equal(camera.Normal))
	})

	It("boosts and restores", func() {
		cam.SetSpeedMode(camera.Boost)
		Expect(cam.Speed()).To(BeNumerically("~", 2.0, tol))
		Expect(cam.Mode().String()).To(Equal("boost"))

		cam.SetSpeedMode(camera.Boost)
		Expect(cam.Speed()).To(BeNumerically("~", 2.0, tol), "boost must not stack")

		cam.SetSpeedMode(camera.Normal)
		Expect(cam.Speed()).To(Equal(config.DefaultCameraSpeed))
	})

	It("slows and restores", func() {
		cam.SetSpeedMode(camera.Slow)
		Expect(cam.Speed()).To(BeNumerically("~", 0.1, tol))
		cam.SetSpeedMode(camera.Normal)
		Expect(cam.Speed()).To(Equal(config.DefaultCameraSpeed))
	})

	It("ignores a direct switch between boost and slow", func() {
		cam.SetSpeedMode(camera.Boost)
		cam.SetSpeedMode(camera.Slow)
		Expect(cam.Mode()).To(Equal(camera.Boost))
		Expect(cam.Speed()).To(BeNumerically("~", 2.0, tol))
	})

	DescribeTable("ApplyModifiers over a key sequence",
		func(frames [][2]bool, wantMode camera.SpeedMode, wantSpeed float64) {
			for _, f := range frames {
				cam.ApplyModifiers(f[0], f[1])
			}
			Expect(cam.Mode()).To(Equal(wantMode))
			Expect(cam.Speed()).To(BeNumerically("~", wantSpeed, tol))
		},
		Entry("no keys", [][2]bool{{false, false}}, camera.Normal, 0.5),
		Entry("boost held", [][2]bool{{true, false}, {true, false}}, camera.Boost, 2.0),
		Entry("boost released", [][2]bool{{true, false}, {false, false}}, camera.Normal, 0.5),
		Entry("slow pressed while boosting", [][2]bool{{true, false}, {true, true}}, camera.Boost, 2.0),
		Entry("boost released while slow held", [][2]bool{{true, false}, {true, true}, {false, true}}, camera.Slow, 0.1),
		Entry("both pressed together", [][2]bool{{true, true}}, camera.Boost, 2.0),
	)
})
