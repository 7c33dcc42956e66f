package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/spaceengine/internal/dynamo"
	"github.com/san-kum/spaceengine/internal/vmath"
	"gopkg.in/yaml.v3"
)

const (
	DefaultG     = 6.67e-11
	DefaultScale = 250000000.0
	DefaultAU    = 1.496e11

	DefaultDt            = 1000.0
	DefaultStepsPerFrame = 1

	DefaultCameraSpeed        = 0.5
	DefaultCameraAcceleration = 1.5
	DefaultCameraSlowdown     = 0.4
	DefaultAngleSpeed         = math.Pi / 50
	DefaultMinDistance        = 0.1
	DefaultFovy               = 45.0

	DefaultWidth        = 800
	DefaultHeight       = 800
	DefaultFPS          = 60
	DefaultSphereRings  = 32
	DefaultSphereSlices = 32

	DefaultScene = "earth"
)

// Constants is built once at startup and passed by pointer to every
// component that needs it. Nothing mutates it after Validate succeeds.
type Constants struct {
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Window  WindowConfig  `yaml:"window"`
	Scene   string        `yaml:"scene"`
}

type PhysicsConfig struct {
	G             float64 `yaml:"g"`
	Scale         float64 `yaml:"scale"`
	AU            float64 `yaml:"au"`
	Dt            float64 `yaml:"dt"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
	Workers       int     `yaml:"workers"`
}

type CameraConfig struct {
	Speed        float64    `yaml:"speed"`
	Acceleration float64    `yaml:"acceleration"`
	Slowdown     float64    `yaml:"slowdown"`
	AngleSpeed   float64    `yaml:"angle_speed"`
	MinDistance  float64    `yaml:"min_distance"`
	Fovy         float64    `yaml:"fovy"`
	Eye          [3]float64 `yaml:"eye"`
	Target       [3]float64 `yaml:"target"`
}

type WindowConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	FPS          int `yaml:"fps"`
	SphereRings  int `yaml:"sphere_rings"`
	SphereSlices int `yaml:"sphere_slices"`
}

func Default() *Constants {
	return &Constants{
		Physics: PhysicsConfig{
			G:             DefaultG,
			Scale:         DefaultScale,
			AU:            DefaultAU,
			Dt:            DefaultDt,
			StepsPerFrame: DefaultStepsPerFrame,
		},
		Camera: DefaultCamera(),
		Window: WindowConfig{
			Width:        DefaultWidth,
			Height:       DefaultHeight,
			FPS:          DefaultFPS,
			SphereRings:  DefaultSphereRings,
			SphereSlices: DefaultSphereSlices,
		},
		Scene: DefaultScene,
	}
}

// DefaultCamera looks at the origin. Eye is left zero so each scene's own
// viewpoint applies; see EyeFor.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		Speed:        DefaultCameraSpeed,
		Acceleration: DefaultCameraAcceleration,
		Slowdown:     DefaultCameraSlowdown,
		AngleSpeed:   DefaultAngleSpeed,
		MinDistance:  DefaultMinDistance,
		Fovy:         DefaultFovy,
	}
}

// Load overlays the YAML file at path onto the defaults.
func Load(path string) (*Constants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Constants) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders cfg as YAML.
func (c *Constants) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Constants) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"physics.g", c.Physics.G},
		{"physics.scale", c.Physics.Scale},
		{"physics.au", c.Physics.AU},
		{"physics.dt", c.Physics.Dt},
		{"camera.speed", c.Camera.Speed},
		{"camera.angle_speed", c.Camera.AngleSpeed},
		{"camera.min_distance", c.Camera.MinDistance},
		{"camera.fovy", c.Camera.Fovy},
	}
	for _, p := range positive {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", dynamo.ErrInvalidConfig, p.name, p.val)
		}
	}
	if c.Camera.Acceleration < 0 || c.Camera.Slowdown < 0 {
		return fmt.Errorf("%w: camera speed modifiers must be non-negative", dynamo.ErrInvalidConfig)
	}
	if c.Camera.Slowdown >= c.Camera.Speed {
		return fmt.Errorf("%w: camera.slowdown %g would stop the camera (speed %g)", dynamo.ErrInvalidConfig, c.Camera.Slowdown, c.Camera.Speed)
	}
	if c.Physics.StepsPerFrame < 1 {
		return fmt.Errorf("%w: physics.steps_per_frame must be at least 1", dynamo.ErrInvalidConfig)
	}
	if c.Physics.Workers < 0 {
		return fmt.Errorf("%w: physics.workers must be non-negative", dynamo.ErrInvalidConfig)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FPS <= 0 {
		return fmt.Errorf("%w: window size and fps must be positive", dynamo.ErrInvalidConfig)
	}
	if c.Window.SphereRings < 3 || c.Window.SphereSlices < 3 {
		return fmt.Errorf("%w: sphere tessellation needs at least 3 rings and slices", dynamo.ErrInvalidConfig)
	}
	if c.Camera.Eye != ([3]float64{}) && c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("%w: camera.eye and camera.target coincide", dynamo.ErrInvalidConfig)
	}
	if _, ok := Scenes[c.Scene]; !ok {
		return fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownScene, c.Scene, ListScenes())
	}
	return nil
}

// EyeFor returns the configured eye, or the scene's suggested one when the
// configuration leaves it unset.
func (c *Constants) EyeFor(s Scene) vmath.Vec3 {
	if c.Camera.Eye != ([3]float64{}) {
		return vmath.New(c.Camera.Eye[0], c.Camera.Eye[1], c.Camera.Eye[2])
	}
	return vmath.New(s.Eye[0], s.Eye[1], s.Eye[2])
}

func (c *Constants) TargetVec() vmath.Vec3 {
	return vmath.New(c.Camera.Target[0], c.Camera.Target[1], c.Camera.Target[2])
}
