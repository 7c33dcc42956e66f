package camera_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
)

var _ = Describe("Apply", func() {
	var cam *camera.OrbitCamera

	BeforeEach(func() {
		var err error
		cam, err = camera.New(vmath.New(10, 0, 0), vmath.Zero, config.DefaultCamera())
		Expect(err).NotTo(HaveOccurred())
	})

	It("does nothing for an idle frame", func() {
		Expect(cam.Apply(camera.Input{})).To(Succeed())
		expectVec(cam.Eye(), vmath.New(10, 0, 0))
		expectVec(cam.Target(), vmath.Zero)
	})

	It("zooms by the wheel amount", func() {
		Expect(cam.Apply(camera.Input{Wheel: 2})).To(Succeed())
		Expect(cam.Distance()).To(BeNumerically("~", 8, tol))
	})

	It("scales mouse deltas into rotation", func() {
		Expect(cam.Apply(camera.Input{MouseDX: 50, MouseDY: 10})).To(Succeed())
		Expect(cam.Azimuth()).To(BeNumerically("~", 0.5, tol))
		Expect(cam.Elevation()).To(BeNumerically("~", 0.1, tol))
	})

	It("moves at the boosted speed while boost is held", func() {
		Expect(cam.Apply(camera.Input{Back: true, Boost: true})).To(Succeed())
		expectVec(cam.Target(), vmath.New(2, 0, 0))

		Expect(cam.Apply(camera.Input{Back: true})).To(Succeed())
		Expect(cam.Mode()).To(Equal(camera.Normal))
		expectVec(cam.Target(), vmath.New(2.5, 0, 0))
	})

	It("cancels opposite moves", func() {
		Expect(cam.Apply(camera.Input{Forward: true, Back: true, Rise: true, Sink: true})).To(Succeed())
		expectVec(cam.Target(), vmath.Zero)
	})

	It("finishes the frame after a clamped zoom", func() {
		err := cam.Apply(camera.Input{Wheel: 100, Rise: true})
		Expect(errors.Is(err, dynamo.ErrNonPositiveDistance)).To(BeTrue())
		Expect(cam.Distance()).To(Equal(cam.MinDistance()))
		Expect(cam.Target().Y).To(BeNumerically("~", 0.5, tol))
	})
})
