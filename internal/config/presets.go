package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/spaceengine/internal/dynamo"
)

// BodySpec places a body on the +x axis at Distance astronomical units with
// its initial Speed (m/s) along +z, so every scene orbits in the xz plane
// with +y up.
type BodySpec struct {
	Name     string
	Mass     float64 // kg
	Radius   float64 // m
	Distance float64 // AU
	Speed    float64 // m/s
	Color    string  // hex
}

type Scene struct {
	Name        string
	Description string
	Eye         [3]float64 // scene units
	Bodies      []BodySpec
}

var (
	sun     = BodySpec{Name: "Sun", Mass: 1.9885e30, Radius: 6.96e8, Color: "#fdb813"}
	mercury = BodySpec{Name: "Mercury", Mass: 3.3011e23, Radius: 2.4397e6, Distance: 0.387, Speed: 47360, Color: "#8c8c8c"}
	venus   = BodySpec{Name: "Venus", Mass: 4.8675e24, Radius: 6.0518e6, Distance: 0.723, Speed: 35020, Color: "#e6c229"}
	earth   = BodySpec{Name: "Earth", Mass: 5.9726e24, Radius: 6.371e6, Distance: 1.0, Speed: 29780, Color: "#2e86de"}
	mars    = BodySpec{Name: "Mars", Mass: 6.4171e23, Radius: 3.3895e6, Distance: 1.524, Speed: 24070, Color: "#c1440e"}
	jupiter = BodySpec{Name: "Jupiter", Mass: 1.8982e27, Radius: 6.9911e7, Distance: 5.203, Speed: 13060, Color: "#d8ca9d"}
	saturn  = BodySpec{Name: "Saturn", Mass: 5.6834e26, Radius: 5.8232e7, Distance: 9.537, Speed: 9680, Color: "#e3d3a3"}
	uranus  = BodySpec{Name: "Uranus", Mass: 8.6810e25, Radius: 2.5362e7, Distance: 19.19, Speed: 6800, Color: "#7fdbff"}
	neptune = BodySpec{Name: "Neptune", Mass: 1.02413e26, Radius: 2.4622e7, Distance: 30.07, Speed: 5430, Color: "#3f54ba"}
)

var Scenes = map[string]Scene{
	"earth": {
		Name:        "earth",
		Description: "Sun and Earth, the two-body case",
		Eye:         [3]float64{0, 400, 900},
		Bodies:      []BodySpec{sun, earth},
	},
	"inner": {
		Name:        "inner",
		Description: "Sun with Mercury, Venus, Earth and Mars",
		Eye:         [3]float64{0, 600, 1400},
		Bodies:      []BodySpec{sun, mercury, venus, earth, mars},
	},
	"solar": {
		Name:        "solar",
		Description: "Sun and the eight planets",
		Eye:         [3]float64{0, 8000, 20000},
		Bodies:      []BodySpec{sun, mercury, venus, earth, mars, jupiter, saturn, uranus, neptune},
	},
	"binary": {
		Name:        "binary",
		Description: "two solar-mass stars on a circular mutual orbit",
		Eye:         [3]float64{0, 300, 700},
		Bodies: []BodySpec{
			{Name: "Alpha", Mass: 1.9885e30, Radius: 6.96e8, Distance: -0.5, Speed: -21055, Color: "#ffd27f"},
			{Name: "Beta", Mass: 1.9885e30, Radius: 6.96e8, Distance: 0.5, Speed: 21055, Color: "#9bb0ff"},
		},
	},
}

func GetScene(name string) (Scene, error) {
	s, ok := Scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q (available: %v)", dynamo.ErrUnknownScene, name, ListScenes())
	}
	return s, nil
}

// ListScenes returns the scene names sorted.
func ListScenes() []string {
	names := make([]string, 0, len(Scenes))
	for name := range Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
