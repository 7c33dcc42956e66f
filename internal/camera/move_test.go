package camera_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/spaceengine/internal/camera"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/vmath"
)

var _ = Describe("Move", func() {
	var cam *camera.OrbitCamera

	BeforeEach(func() {
		var err error
		cam, err = camera.New(vmath.New(10, 0, 0), vmath.Zero, config.DefaultCamera())
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("translates the target by one speed step",
		func(d camera.Direction, want vmath.Vec3) {
			offset := cam.Eye().Sub(cam.Target())
			cam.Move(d)
			expectVec(cam.Target(), want)
			expectVec(cam.Eye().Sub(cam.Target()), offset)
		},
		Entry("forward", camera.Forward, vmath.New(-0.5, 0, 0)),
		Entry("back", camera.Back, vmath.New(0.5, 0, 0)),
		Entry("left", camera.Left, vmath.New(0, 0, 0.5)),
		Entry("right", camera.Right, vmath.New(0, 0, -0.5)),
		Entry("rise", camera.Rise, vmath.New(0, 0.5, 0)),
		Entry("sink", camera.Sink, vmath.New(0, -0.5, 0)),
	)

	It("uses the boosted speed", func() {
		cam.SetSpeedMode(camera.Boost)
		cam.Move(camera.Back)
		expectVec(cam.Target(), vmath.New(2, 0, 0))
	})
})
