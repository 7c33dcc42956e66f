package export

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/spaceengine/internal/viz"
	"github.com/san-kum/spaceengine/internal/vmath"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(4, 2)
	c.Paint(0, 0, "#ff0000")
	c.Set(7, 7)

	svg := CanvasToSVG(c, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("malformed document: %q", svg)
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("painted dot lost its ink")
	}
	if !strings.Contains(svg, `fill="`+defaultInk+`"`) {
		t.Error("uninked dot should use the default ink")
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Error("size should be sub-pixels times scale")
	}
}

func TestTracksToSVG(t *testing.T) {
	red := colorful.Color{R: 1}
	tracks := []Track{
		{Name: "Earth", Color: red, Points: []vmath.Vec3{vmath.New(1, 0, 0), vmath.New(0, 0, 1), vmath.New(-1, 0, 0)}},
		{Name: "single", Color: red, Points: []vmath.Vec3{vmath.Zero}},
	}

	svg := TracksToSVG(tracks, 200, 100)
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Errorf("paths = %d, want 1", got)
	}
	if !strings.Contains(svg, ">Earth</text>") {
		t.Error("missing label")
	}
	if strings.Contains(svg, "single") {
		t.Error("one-point track should be skipped")
	}
	if !strings.Contains(svg, "M") || strings.Contains(svg, "NaN") {
		t.Errorf("bad path data: %q", svg)
	}
}

func TestTracksToSVGEmpty(t *testing.T) {
	if TracksToSVG(nil, 10, 10) != "" {
		t.Error("no tracks should give empty output")
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`a<b & "c"`); got != "a&lt;b &amp; &quot;c&quot;" {
		t.Errorf("escape = %q", got)
	}
}
